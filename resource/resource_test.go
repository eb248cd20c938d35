package resource

import (
	"errors"
	"testing"

	"github.com/32bitkid/vdb/pixel"
)

func TestParseRaw(t *testing.T) {
	raw := []byte{
		0x02, 0x00, // width
		0x01, 0x00, // height
		0x10, 0x00, // depth
		0x01, 0x00, // flags
		0x00, 0xF8, // red
		0xE0, 0x07, // lime
	}

	img, err := Parse(raw, pixel.Depth16)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 2 || img.Height != 1 || !img.Transparent {
		t.Fatalf("unexpected image %+v", img)
	}
	if img.Pix[0] != 0xF800 || img.Pix[1] != 0x07E0 {
		t.Fatalf("unexpected pixels %#x", img.Pix)
	}

	img24, err := Parse(raw, pixel.Depth24)
	if err != nil {
		t.Fatal(err)
	}
	if img24.Pix[0] != 0xFF0000 || img24.Pix[1] != 0x00FF00 {
		t.Fatalf("unexpected converted pixels %#x", img24.Pix)
	}
}

func TestParseErrors(t *testing.T) {
	type parseTestCase struct {
		raw      []byte
		expected error
	}
	cases := []parseTestCase{
		{[]byte{0x01, 0x00}, ErrBadHeader},
		{[]byte{0x01, 0x00, 0x01, 0x00, 0x0C, 0x00, 0x00, 0x00, 0x00}, ErrDepth},
		{[]byte{0x02, 0x00, 0x02, 0x00, 0x08, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03}, ErrShortData},
	}
	for i, tCase := range cases {
		if _, err := Parse(tCase.raw, pixel.Depth16); !errors.Is(err, tCase.expected) {
			t.Errorf("%d: expected(%v) != actual(%v)", i, tCase.expected, err)
		}
	}
}

func TestEncodeParse(t *testing.T) {
	pix := []pixel.Color{0x123456, 0xABCDEF, 0x000000, 0xFFFFFF, 0x00FF00, 0x808080}
	for _, d := range []pixel.Depth{pixel.Depth8, pixel.Depth16, pixel.Depth24} {
		native := make([]pixel.Color, len(pix))
		for i, c := range pix {
			native[i] = d.Pack(pixel.Depth24.RGB(c))
		}

		raw, err := Encode(3, 2, d, false, native)
		if err != nil {
			t.Fatal(err)
		}
		if len(raw) != headerSize+6*d.Bytes() {
			t.Fatalf("%v: unexpected size %d", d, len(raw))
		}

		img, err := Parse(raw, d)
		if err != nil {
			t.Fatal(err)
		}
		for i, c := range img.Pix {
			if c != native[i] {
				t.Errorf("%v: %d: expected(%#x) != actual(%#x)", d, i, native[i], c)
			}
		}
	}

	if _, err := Encode(2, 2, pixel.Depth16, false, make([]pixel.Color, 3)); !errors.Is(err, ErrShortData) {
		t.Errorf("expected ErrShortData, got %v", err)
	}
}

func TestStore(t *testing.T) {
	s := NewStore(pixel.Depth16)

	if _, err := s.Open("U:/missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	raw, err := Encode(1, 1, pixel.Depth24, true, []pixel.Color{0x0000FF})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Create("U:/dot", raw); err != nil {
		t.Fatal(err)
	}
	if err := s.Create("U:/bad", raw[:9]); !errors.Is(err, ErrShortData) {
		t.Fatalf("expected ErrShortData, got %v", err)
	}

	h, err := s.Header("U:/dot")
	if err != nil {
		t.Fatal(err)
	}
	if h.Depth != 24 || !h.Transparent() {
		t.Errorf("unexpected header %+v", h)
	}

	img, err := s.Open("U:/dot")
	if err != nil {
		t.Fatal(err)
	}
	if img.Pix[0] != 0x001F {
		t.Errorf("unexpected pixel %#x", img.Pix[0])
	}
	again, _ := s.Open("U:/dot")
	if again != img {
		t.Error("expected the cached image")
	}

	s.Remove("U:/dot")
	if _, err := s.Open("U:/dot"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after Remove, got %v", err)
	}
}

package font

import (
	"errors"
	"testing"

	"golang.org/x/image/font/basicfont"
)

// Two characters: 0 is a 3x2 "L", 1 is a 10x1 bar.
var testFont = []byte{
	0x00, 0x00, // reserved
	0x02, 0x00, // characters
	0x09, 0x00, // line height
	0x0A, 0x00, // offset of char 0
	0x0E, 0x00, // offset of char 1

	0x03, 0x02, 0x80, 0xE0,
	0x0A, 0x01, 0xFF, 0xC0,
}

func TestParse(t *testing.T) {
	f, err := Parse(testFont)
	if err != nil {
		t.Fatal(err)
	}
	if f.LineHeight() != 9 || f.Len() != 2 {
		t.Fatalf("unexpected font %d/%d", f.LineHeight(), f.Len())
	}

	l, ok := f.Glyph(0)
	if !ok {
		t.Fatal("expected glyph 0")
	}
	if l.String() != "█  \n███\n" {
		t.Fatalf("unexpected glyph:\n%s", l)
	}

	bar, _ := f.Glyph(1)
	if bar.Stride() != 2 || len(bar.Bitmap) != 2 {
		t.Fatalf("unexpected stride %d", bar.Stride())
	}
	for x := 0; x < 10; x++ {
		if !bar.Bit(x, 0) {
			t.Errorf("bit %d not set", x)
		}
	}

	if _, ok := f.Glyph('x'); ok {
		t.Error("unexpected glyph")
	}
}

func TestParseCorrupt(t *testing.T) {
	bad := append([]byte(nil), testFont...)
	bad[8] = 0x40
	if _, err := Parse(bad); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if _, err := Parse(testFont[:15]); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if _, err := Parse(testFont[:3]); err == nil {
		t.Fatal("expected an error")
	}
}

func TestFromFace(t *testing.T) {
	face := basicfont.Face7x13
	f := FromFace(face)
	if f.LineHeight() != face.Height {
		t.Fatalf("unexpected line height %d", f.LineHeight())
	}

	a, ok := f.Glyph('A')
	if !ok {
		t.Fatal("expected glyph for 'A'")
	}
	if a.Width != face.Width || a.Height != face.Height {
		t.Fatalf("unexpected size %dx%d", a.Width, a.Height)
	}
	set := 0
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.Bit(x, y) {
				set++
			}
		}
	}
	if set == 0 {
		t.Fatal("'A' has no coverage")
	}

	space, _ := f.Glyph(' ')
	for _, b := range space.Bitmap {
		if b != 0 {
			t.Fatalf("space has coverage:\n%s", space)
		}
	}
}

func TestGlyphEmpty(t *testing.T) {
	if !(Glyph{}).Empty() {
		t.Error("zero glyph should be empty")
	}
	if !(Glyph{Width: 3, Height: 0, Bitmap: []byte{0}}).Empty() {
		t.Error("zero height glyph should be empty")
	}
	if (Glyph{Width: 1, Height: 1, Bitmap: []byte{0x80}}).Empty() {
		t.Error("glyph should not be empty")
	}
}

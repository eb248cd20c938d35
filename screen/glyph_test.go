package screen

import (
	"math/rand"
	"testing"

	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/font"
	"github.com/32bitkid/vdb/pixel"
)

// referenceGlyph draws g pixel by pixel using direct bit addressing.
func referenceGlyph(w *Window, pos area.Point, mask area.Area, g font.Glyph, c pixel.Color, opa pixel.Opacity) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := area.Point{X: pos.X + x, Y: pos.Y + y}
			if !g.Bit(x, y) || !mask.Contains(p) || !w.Area().Contains(p) {
				continue
			}
			w.Set(p.X, p.Y, w.Depth.Mix(c, w.At(p.X, p.Y), opa))
		}
	}
}

func randomGlyph(rnd *rand.Rand, width, height int) font.Glyph {
	g := font.Glyph{Width: width, Height: height}
	g.Bitmap = make([]byte, g.Stride()*height)
	rnd.Read(g.Bitmap)
	return g
}

func TestGlyphMatchesReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	win := area.Area{X1: 0, Y1: 10, X2: 47, Y2: 33}

	for i := 0; i < 400; i++ {
		g := randomGlyph(rnd, rnd.Intn(20)+1, rnd.Intn(12)+1)
		pos := area.Point{X: rnd.Intn(60) - 10, Y: rnd.Intn(40) - 5}
		mask := randomArea(rnd, 56)
		opa := pixel.Cover
		if i%3 == 0 {
			opa = pixel.Opacity(rnd.Intn(256))
		}

		actual, expected := newTestWindow(win), newTestWindow(win)
		actual.DrawGlyph(pos, mask, g, 0xF0E0D0, opa)
		referenceGlyph(expected, pos, mask, g, 0xF0E0D0, opa)

		for j, c := range actual.Pix() {
			if c != expected.Pix()[j] {
				t.Fatalf("%d: glyph %dx%d at %v mask %v differs at index %d: %#x != %#x\n%s",
					i, g.Width, g.Height, pos, mask, j, expected.Pix()[j], c, g)
			}
		}
	}
}

func TestGlyphLeadingBitsClipped(t *testing.T) {
	// 12 columns, stride 2. Every row is 1010 1010 1010 (padding 0000).
	g := font.Glyph{Width: 12, Height: 3, Bitmap: []byte{
		0xAA, 0xA0,
		0xAA, 0xA0,
		0xAA, 0xA0,
	}}
	w := newTestWindow(area.New(0, 0, 16, 4))

	// Mask starts at column 3 of the glyph, which is an unset bit.
	w.DrawGlyph(area.Point{X: 0, Y: 0}, area.Area{X1: 3, Y1: 0, X2: 15, Y2: 3}, g, 0xFFFFFF, pixel.Cover)

	for y := 0; y < 3; y++ {
		for x := 0; x < 16; x++ {
			expected := bg
			if x >= 3 && x < 12 && x%2 == 0 {
				expected = 0xFFFFFF
			}
			if c := w.At(x, y); c != expected {
				t.Fatalf("(%d,%d): expected(%#x) != actual(%#x)", x, y, expected, c)
			}
		}
	}
}

func TestGlyphFullCoverageEqualsFill(t *testing.T) {
	g := font.Glyph{Width: 11, Height: 7}
	g.Bitmap = make([]byte, g.Stride()*g.Height)
	for y := 0; y < g.Height; y++ {
		g.Bitmap[y*2], g.Bitmap[y*2+1] = 0xFF, 0xE0
	}

	win := area.New(0, 0, 20, 20)
	masks := []area.Area{
		area.New(0, 0, 20, 20),
		area.New(6, 4, 3, 9),
		area.New(0, 0, 5, 5),
		area.New(12, 8, 8, 2),
	}
	pos := area.Point{X: 3, Y: 2}

	for _, mask := range masks {
		glyphWin, fillWin := newTestWindow(win), newTestWindow(win)
		glyphWin.DrawGlyph(pos, mask, g, 0x336699, pixel.Cover)
		fillWin.Fill(area.New(pos.X, pos.Y, g.Width, g.Height), mask, 0x336699, pixel.Cover)
		for i, c := range glyphWin.Pix() {
			if c != fillWin.Pix()[i] {
				t.Fatalf("mask %v: index %d: %#x != %#x", mask, i, fillWin.Pix()[i], c)
			}
		}
	}
}

func TestGlyphInvalid(t *testing.T) {
	if debugChecks {
		t.Skip("contract violations panic in debug builds")
	}

	w := newTestWindow(area.New(0, 0, 8, 8))
	before := snapshot(w)
	mask := w.Area()

	w.DrawGlyph(area.Point{}, mask, font.Glyph{}, 0xFFFFFF, pixel.Cover)
	w.DrawGlyph(area.Point{}, mask, font.Glyph{Width: 4, Height: 4}, 0xFFFFFF, pixel.Cover)
	w.DrawGlyph(area.Point{}, mask, font.Glyph{Width: 9, Height: 4, Bitmap: []byte{0xFF, 0xFF}}, 0xFFFFFF, pixel.Cover)
	assertUnchanged(t, w, before)
}

func BenchmarkGlyph(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	g := randomGlyph(rnd, 8, 13)
	w := newTestWindow(area.New(0, 0, 320, 24))
	mask := w.Area()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.DrawGlyph(area.Point{X: (i * 8) % 312, Y: 4}, mask, g, 0xFFFFFF, pixel.Cover)
	}
}

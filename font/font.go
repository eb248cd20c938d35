// Package font holds 1-bit glyph bitmaps and the fonts that supply them to
// the compositing core.
package font

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font/basicfont"
)

// Glyph is a packed coverage bitmap: rows are stored MSB-first and padded
// to whole bytes.
type Glyph struct {
	Width  int
	Height int
	Bitmap []byte
}

// Stride is the number of bytes per bitmap row.
func (g Glyph) Stride() int {
	return (g.Width + 7) >> 3
}

// Empty reports whether the glyph has nothing to draw.
func (g Glyph) Empty() bool {
	return g.Bitmap == nil || g.Width <= 0 || g.Height <= 0
}

// Bit reports whether the pixel at (x, y) is covered.
func (g Glyph) Bit(x, y int) bool {
	return g.Bitmap[y*g.Stride()+x>>3]&(0x80>>uint(x&7)) != 0
}

func (g Glyph) String() string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Bit(x, y) {
				sb.WriteRune('█')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Font looks up glyphs by rune. Missing glyphs report false.
type Font interface {
	Glyph(r rune) (Glyph, bool)
	LineHeight() int
}

// Bitmap is an in-memory Font.
type Bitmap struct {
	lineHeight int
	glyphs     map[rune]Glyph
}

func NewBitmap(lineHeight int) *Bitmap {
	return &Bitmap{
		lineHeight: lineHeight,
		glyphs:     make(map[rune]Glyph),
	}
}

func (f *Bitmap) LineHeight() int { return f.lineHeight }

func (f *Bitmap) Glyph(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Set adds or replaces the glyph for r.
func (f *Bitmap) Set(r rune, g Glyph) {
	f.glyphs[r] = g
}

// Len is the number of glyphs in the font.
func (f *Bitmap) Len() int { return len(f.glyphs) }

var ErrCorrupt = errors.New("font: corrupt font data")

// Parse reads a packed font table: a little-endian header
// {reserved [2]byte, characters uint16, lineHeight uint16}, one uint16
// offset per character, and at each offset {width, height uint8} followed by
// the glyph's packed rows. Character i is stored as rune i.
func Parse(b []byte) (*Bitmap, error) {
	r := bytes.NewReader(b)

	type fontHeader struct {
		_          [2]uint8
		Characters uint16
		LineHeight uint16
	}
	var h fontHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("font: header: %w", err)
	}

	type characterHeader struct {
		Width  uint8
		Height uint8
	}

	pointers := make([]uint16, h.Characters)
	if err := binary.Read(r, binary.LittleEndian, &pointers); err != nil {
		return nil, fmt.Errorf("font: offsets: %w", err)
	}

	font := NewBitmap(int(h.LineHeight))
	for i, offset := range pointers {
		if int(offset) >= len(b) {
			return nil, fmt.Errorf("%w: character %d at offset %d", ErrCorrupt, i, offset)
		}
		if _, err := r.Seek(int64(offset), 0); err != nil {
			return nil, err
		}

		var ch characterHeader
		if err := binary.Read(r, binary.LittleEndian, &ch); err != nil {
			return nil, fmt.Errorf("%w: character %d: %v", ErrCorrupt, i, err)
		}

		bitmapLength := ((int(ch.Width) + 7) >> 3) * int(ch.Height)
		bitmap := make([]uint8, bitmapLength)
		if err := binary.Read(r, binary.LittleEndian, &bitmap); err != nil {
			return nil, fmt.Errorf("%w: character %d: %v", ErrCorrupt, i, err)
		}

		font.Set(rune(i), Glyph{
			Width:  int(ch.Width),
			Height: int(ch.Height),
			Bitmap: bitmap,
		})
	}

	return font, nil
}

// FromFace packs every glyph of a fixed-size x/image face. Mask pixels with
// at least half coverage are set.
func FromFace(face *basicfont.Face) *Bitmap {
	font := NewBitmap(face.Height)
	origin := face.Mask.Bounds().Min
	for _, rr := range face.Ranges {
		for r := rr.Low; r < rr.High; r++ {
			y0 := origin.Y + (int(r-rr.Low)+rr.Offset)*face.Height
			font.Set(r, pack(face.Mask, image.Rect(origin.X, y0, origin.X+face.Width, y0+face.Height)))
		}
	}
	return font
}

func pack(m image.Image, r image.Rectangle) Glyph {
	g := Glyph{Width: r.Dx(), Height: r.Dy()}
	stride := g.Stride()
	g.Bitmap = make([]byte, stride*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if _, _, _, a := m.At(r.Min.X+x, r.Min.Y+y).RGBA(); a >= 0x8000 {
				g.Bitmap[y*stride+x>>3] |= 0x80 >> uint(x&7)
			}
		}
	}
	return g
}

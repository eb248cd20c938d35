package screen

import (
	"bytes"

	"github.com/32bitkid/bitreader"

	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/font"
	"github.com/32bitkid/vdb/pixel"
)

// DrawGlyph paints the covered pixels of g, with its top-left corner at
// pos, in color c. Uncovered pixels are left alone. An empty glyph draws
// nothing.
func (w *Window) DrawGlyph(pos area.Point, mask area.Area, g font.Glyph, c pixel.Color, opa pixel.Opacity) {
	if g.Empty() || opa == pixel.Transp {
		return
	}
	stride := g.Stride()
	if len(g.Bitmap) < stride*g.Height {
		invalid("glyph bitmap too short", "size", len(g.Bitmap), "want", stride*g.Height)
		return
	}

	if !area.New(pos.X, pos.Y, g.Width, g.Height).On(mask) {
		return
	}
	m, ok := w.clip(mask)
	if !ok {
		return
	}

	// Visible part of the glyph, in glyph coordinates. End bounds are
	// exclusive.
	colStart, colEnd := max(0, m.X1-pos.X), min(g.Width, m.X2-pos.X+1)
	rowStart, rowEnd := max(0, m.Y1-pos.Y), min(g.Height, m.Y2-pos.Y+1)
	if colStart >= colEnd || rowStart >= rowEnd {
		return
	}

	// Each row skips the clipped leading bits, reads the visible ones and
	// then skips the clipped trailing bits plus the byte padding, so the
	// next row starts byte aligned.
	lead := uint(colStart)
	trail := uint(stride<<3 - colEnd)
	br := bitreader.NewReader(bytes.NewReader(g.Bitmap[rowStart*stride : rowEnd*stride]))

	for row := rowStart; row < rowEnd; row++ {
		if err := skipBits(br, lead); err != nil {
			invalid("glyph bitmap truncated", "row", row, "err", err)
			return
		}

		dst := w.span(pos.Y+row, pos.X+colStart, pos.X+colEnd-1)
		for i := range dst {
			set, err := br.Read1()
			if err != nil {
				invalid("glyph bitmap truncated", "row", row, "err", err)
				return
			}
			if !set {
				continue
			}
			if opa == pixel.Cover {
				dst[i] = c
			} else {
				dst[i] = w.Depth.Mix(c, dst[i], opa)
			}
		}

		if row+1 < rowEnd {
			if err := skipBits(br, trail); err != nil {
				invalid("glyph bitmap truncated", "row", row, "err", err)
				return
			}
		}
	}
}

func skipBits(br bitreader.BitReader, n uint) error {
	for n > 0 {
		k := min(n, 32)
		if err := br.Skip(k); err != nil {
			return err
		}
		n -= k
	}
	return nil
}

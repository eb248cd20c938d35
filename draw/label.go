package draw

import (
	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/font"
	"github.com/32bitkid/vdb/pixel"
	"github.com/32bitkid/vdb/screen"
)

type LabelStyle struct {
	Font        font.Font
	Color       pixel.Color
	LetterSpace int
	LineSpace   int
}

// Label writes text starting at the top-left corner of coords. Letters are
// clipped to coords as well as to mask. Runes without a glyph are skipped.
func Label(w *screen.Window, coords, mask area.Area, st LabelStyle, opa pixel.Opacity, text string) {
	if st.Font == nil {
		return
	}
	m, ok := area.Intersect(coords, mask)
	if !ok {
		return
	}

	pos := coords.Min()
	lineHeight := st.Font.LineHeight() + st.LineSpace
	for _, r := range text {
		if r == '\n' {
			pos.X = coords.X1
			pos.Y += lineHeight
			if pos.Y > m.Y2 {
				return
			}
			continue
		}
		g, ok := st.Font.Glyph(r)
		if !ok {
			continue
		}
		w.DrawGlyph(pos, m, g, st.Color, opa)
		pos.X += g.Width + st.LetterSpace
	}
}

// TextSize measures text as Label would lay it out.
func TextSize(st LabelStyle, text string) (width, height int) {
	if st.Font == nil || text == "" {
		return 0, 0
	}
	line, lines := 0, 1
	for _, r := range text {
		if r == '\n' {
			width = max(width, line)
			line = 0
			lines++
			continue
		}
		if g, ok := st.Font.Glyph(r); ok {
			if line > 0 {
				line += st.LetterSpace
			}
			line += g.Width
		}
	}
	width = max(width, line)
	height = lines*st.Font.LineHeight() + (lines-1)*st.LineSpace
	return width, height
}

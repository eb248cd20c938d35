// Package draw renders rectangles, labels and images on top of the
// compositing core. Every function draws only inside mask.
package draw

import (
	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/pixel"
	"github.com/32bitkid/vdb/screen"
)

// RectStyle describes a rectangle. The body runs from Main at the top row
// to Grad at the bottom row.
type RectStyle struct {
	Main pixel.Color
	Grad pixel.Color

	BorderColor pixel.Color
	BorderWidth int
	BorderOpa   pixel.Opacity

	// Empty skips the body and draws only the border.
	Empty bool
}

// Rect draws a rectangle covering coords.
func Rect(w *screen.Window, coords, mask area.Area, st RectStyle, opa pixel.Opacity) {
	if coords.Empty() || !coords.On(mask) {
		return
	}
	if !st.Empty {
		rectBody(w, coords, mask, st, opa)
	}
	if st.BorderWidth > 0 && st.BorderOpa != pixel.Transp {
		rectBorder(w, coords, mask, st, opa.Scale(st.BorderOpa))
	}
}

func rectBody(w *screen.Window, coords, mask area.Area, st RectStyle, opa pixel.Opacity) {
	if st.Main == st.Grad {
		w.Fill(coords, mask, st.Main, opa)
		return
	}

	visible, ok := area.Intersect(coords, mask)
	if !ok {
		return
	}
	span := coords.Height() - 1
	for y := visible.Y1; y <= visible.Y2; y++ {
		c := st.Main
		if span > 0 {
			mix := pixel.Opacity(((y-coords.Y1)*255 + span/2) / span)
			c = w.Depth.Mix(st.Grad, st.Main, mix)
		}
		w.Fill(area.Area{X1: coords.X1, Y1: y, X2: coords.X2, Y2: y}, mask, c, opa)
	}
}

func rectBorder(w *screen.Window, coords, mask area.Area, st RectStyle, opa pixel.Opacity) {
	bw := min(st.BorderWidth, (coords.Width()+1)/2, (coords.Height()+1)/2)
	c := st.BorderColor

	// Strips must not overlap, or partially opaque borders would be
	// mixed twice.
	top := area.Area{X1: coords.X1, Y1: coords.Y1, X2: coords.X2, Y2: coords.Y1 + bw - 1}
	bottom := area.Area{X1: coords.X1, Y1: max(coords.Y2-bw+1, top.Y2+1), X2: coords.X2, Y2: coords.Y2}
	left := area.Area{X1: coords.X1, Y1: top.Y2 + 1, X2: coords.X1 + bw - 1, Y2: bottom.Y1 - 1}
	right := area.Area{X1: max(coords.X2-bw+1, left.X2+1), Y1: left.Y1, X2: coords.X2, Y2: left.Y2}

	for _, strip := range []area.Area{top, bottom, left, right} {
		if !strip.Empty() {
			w.Fill(strip, mask, c, opa)
		}
	}
}

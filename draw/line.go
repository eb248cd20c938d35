package draw

import (
	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/pixel"
	"github.com/32bitkid/vdb/screen"
)

type LineStyle struct {
	Color pixel.Color
	Width int
}

// Line draws from p1 to p2, both ends included. Thick lines are drawn as a
// span of Width pixels across the major axis at every step, so no pixel is
// written twice.
func Line(w *screen.Window, p1, p2 area.Point, mask area.Area, st LineStyle, opa pixel.Opacity) {
	if st.Width <= 0 || opa == pixel.Transp {
		return
	}
	lo := (st.Width - 1) / 2
	hi := st.Width - 1 - lo

	switch {
	case p1.Y == p2.Y:
		x1, x2 := min(p1.X, p2.X), max(p1.X, p2.X)
		w.Fill(area.Area{X1: x1, Y1: p1.Y - lo, X2: x2, Y2: p1.Y + hi}, mask, st.Color, opa)
		return
	case p1.X == p2.X:
		y1, y2 := min(p1.Y, p2.Y), max(p1.Y, p2.Y)
		w.Fill(area.Area{X1: p1.X - lo, Y1: y1, X2: p1.X + hi, Y2: y2}, mask, st.Color, opa)
		return
	}

	// bresenham
	x, y := p1.X, p1.Y
	dx, dy := p2.X-x, p2.Y-y
	stepX, stepY := sign(dx), sign(dy)
	dx, dy = abs(dx)<<1, abs(dy)<<1

	if dx > dy {
		plot := func(x, y int) {
			w.Fill(area.Area{X1: x, Y1: y - lo, X2: x, Y2: y + hi}, mask, st.Color, opa)
		}
		plot(x, y)
		fraction := dy - (dx >> 1)
		for x != p2.X {
			if fraction >= 0 {
				y += stepY
				fraction -= dx
			}
			x += stepX
			fraction += dy
			plot(x, y)
		}
		return
	}

	plot := func(x, y int) {
		w.Fill(area.Area{X1: x - lo, Y1: y, X2: x + hi, Y2: y}, mask, st.Color, opa)
	}
	plot(x, y)
	fraction := dx - (dy >> 1)
	for y != p2.Y {
		if fraction >= 0 {
			x += stepX
			fraction -= dy
		}
		y += stepY
		fraction += dx
		plot(x, y)
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package screen

import (
	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/pixel"
)

// Fill paints c over the part of a that lies inside mask.
func (w *Window) Fill(a, mask area.Area, c pixel.Color, opa pixel.Opacity) {
	res, ok := area.Intersect(a, mask)
	if !ok {
		return
	}
	if res, ok = w.clip(res); !ok || opa == pixel.Transp {
		return
	}

	if opa == pixel.Cover {
		for y := res.Y1; y <= res.Y2; y++ {
			row := w.span(y, res.X1, res.X2)
			for i := range row {
				row[i] = c
			}
		}
		return
	}

	for y := res.Y1; y <= res.Y2; y++ {
		row := w.span(y, res.X1, res.X2)
		for i := range row {
			row[i] = w.Depth.Mix(c, row[i], opa)
		}
	}
}

package screen

import (
	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/pixel"
)

// Map is a read-only rectangle of native colors, row-major with Width
// pixels per row.
type Map struct {
	Width  int
	Height int
	Pix    []pixel.Color
}

// MapOptions selects how DrawMap composes a map onto the window.
type MapOptions struct {
	// Opacity of the map over the window. Transp draws nothing.
	Opacity pixel.Opacity
	// Transparent skips map pixels equal to the window's Key.
	Transparent bool
	// Upscale repeats every map pixel as a 2x2 block.
	Upscale bool
	// Tint is mixed into every drawn map pixel by TintOpacity before the
	// result is composed onto the window.
	Tint        pixel.Color
	TintOpacity pixel.Opacity
}

// DrawMap composes m onto the part of a inside mask. a is the destination
// area with its top-left corner at the map's first pixel; when upscaling,
// destination pixel (x, y) shows map pixel ((x-a.X1)>>1, (y-a.Y1)>>1).
// Destination pixels beyond the map's extent are not drawn.
func (w *Window) DrawMap(a, mask area.Area, m Map, o MapOptions) {
	if m.Width <= 0 || m.Height <= 0 || o.Opacity == pixel.Transp {
		return
	}
	if len(m.Pix) < m.Width*m.Height {
		invalid("pixel map too short", "size", len(m.Pix), "want", m.Width*m.Height)
		return
	}

	var shift uint
	if o.Upscale {
		shift = 1
	}

	dst, ok := area.Intersect(a, area.New(a.X1, a.Y1, m.Width<<shift, m.Height<<shift))
	if !ok {
		return
	}
	if dst, ok = area.Intersect(dst, mask); !ok {
		return
	}
	if dst, ok = w.clip(dst); !ok {
		return
	}

	if o.Opacity == pixel.Cover && !o.Transparent && !o.Upscale && o.TintOpacity == pixel.Transp {
		w.copyMap(a, dst, m)
		return
	}

	p := newMapPipeline(w, o)
	for y := dst.Y1; y <= dst.Y2; y++ {
		sy := (y - a.Y1) >> shift
		src := m.Pix[sy*m.Width : (sy+1)*m.Width]
		row := w.span(y, dst.X1, dst.X2)
		sx0 := dst.X1 - a.X1
		for i := range row {
			p.compose(&row[i], src[(sx0+i)>>shift])
		}
	}
}

// copyMap is the opaque, untinted, native-size case: plain row copies.
func (w *Window) copyMap(a, dst area.Area, m Map) {
	n := dst.Width()
	for y := dst.Y1; y <= dst.Y2; y++ {
		off := (y-a.Y1)*m.Width + dst.X1 - a.X1
		copy(w.span(y, dst.X1, dst.X2), m.Pix[off:off+n])
	}
}

// mapPipeline runs the per-pixel stages of DrawMap in order: key filter,
// tint, then composition onto the window.
type mapPipeline struct {
	key   keyFilter
	tint  tinter
	write composer
}

func newMapPipeline(w *Window, o MapOptions) *mapPipeline {
	return &mapPipeline{
		key:   keyFilter{enabled: o.Transparent, key: w.Key},
		tint:  tinter{depth: w.Depth, color: o.Tint, opa: o.TintOpacity},
		write: composer{depth: w.Depth, opa: o.Opacity},
	}
}

func (p *mapPipeline) compose(dst *pixel.Color, src pixel.Color) {
	if !p.key.pass(src) {
		return
	}
	p.write.compose(dst, p.tint.apply(src))
}

type keyFilter struct {
	enabled bool
	key     pixel.Color
}

func (k keyFilter) pass(c pixel.Color) bool {
	return !k.enabled || c != k.key
}

// tinter remembers the last source color it mixed, so runs of equal pixels
// (and every upscaled 2x2 block) are mixed once.
type tinter struct {
	depth pixel.Depth
	color pixel.Color
	opa   pixel.Opacity

	primed bool
	last   pixel.Color
	out    pixel.Color
}

func (t *tinter) apply(c pixel.Color) pixel.Color {
	if t.opa == pixel.Transp {
		return c
	}
	if !t.primed || c != t.last {
		t.primed, t.last = true, c
		t.out = t.depth.Mix(t.color, c, t.opa)
	}
	return t.out
}

type composer struct {
	depth pixel.Depth
	opa   pixel.Opacity
}

func (s composer) compose(dst *pixel.Color, c pixel.Color) {
	if s.opa == pixel.Cover {
		*dst = c
		return
	}
	*dst = s.depth.Mix(c, *dst, s.opa)
}

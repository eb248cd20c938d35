package screen

import (
	"errors"
	"fmt"

	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/pixel"
)

// ErrCapacity is returned when a placement needs more pixels than the
// window was allocated with.
var ErrCapacity = errors.New("screen: placement exceeds window capacity")

// Window is the frame window: a fixed pixel buffer that stands in for the
// part of the display currently being rendered. Its placement is set by the
// refresh scheduler before each batch of draw calls.
type Window struct {
	Depth pixel.Depth
	// Key is the transparency key: map pixels equal to it are skipped when
	// transparency is requested.
	Key pixel.Color

	area area.Area
	pix  []pixel.Color
}

// NewWindow allocates a window for up to capacity pixels. It starts out
// unplaced.
func NewWindow(capacity int, depth pixel.Depth, key pixel.Color) *Window {
	return &Window{
		Depth: depth,
		Key:   key,
		area:  area.Area{X1: 0, Y1: 0, X2: -1, Y2: -1},
		pix:   make([]pixel.Color, capacity),
	}
}

// Cap is the number of pixels the window can hold.
func (w *Window) Cap() int { return len(w.pix) }

// Area is the window's current absolute placement.
func (w *Window) Area() area.Area { return w.area }

// Stride is the number of pixels per window row.
func (w *Window) Stride() int { return w.area.Width() }

// Place moves the window over a. The buffer is not cleared.
func (w *Window) Place(a area.Area) error {
	if a.Empty() {
		return fmt.Errorf("screen: empty placement %v", a)
	}
	if a.Size() > len(w.pix) {
		return fmt.Errorf("%w: %v needs %d, have %d", ErrCapacity, a, a.Size(), len(w.pix))
	}
	w.area = a
	return nil
}

// Pix returns the placed pixels, row-major with Stride pixels per row.
func (w *Window) Pix() []pixel.Color {
	return w.pix[:w.area.Size()]
}

// Clear sets every placed pixel to c.
func (w *Window) Clear(c pixel.Color) {
	pix := w.Pix()
	for i := range pix {
		pix[i] = c
	}
}

// At returns the pixel at absolute coordinates, which must be inside the
// placement.
func (w *Window) At(x, y int) pixel.Color {
	return w.span(y, x, x)[0]
}

// Set writes the pixel at absolute coordinates, which must be inside the
// placement.
func (w *Window) Set(x, y int, c pixel.Color) {
	w.span(y, x, x)[0] = c
}

// clip limits a to the window's placement.
func (w *Window) clip(a area.Area) (area.Area, bool) {
	return area.Intersect(a, w.area)
}

// span returns the pixels x1..x2 of absolute row y. This is the one place
// where buffer bounds are checked; every loop goes through it with areas
// already clipped to the placement.
func (w *Window) span(y, x1, x2 int) []pixel.Color {
	if y < w.area.Y1 || y > w.area.Y2 || x1 < w.area.X1 || x2 > w.area.X2 || x1 > x2 {
		panic(fmt.Sprintf("screen: span y=%d x=%d..%d outside window %v", y, x1, x2, w.area))
	}
	off := (y-w.area.Y1)*w.area.Width() + x1 - w.area.X1
	return w.pix[off : off+x2-x1+1]
}

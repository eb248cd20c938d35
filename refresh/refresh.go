// Package refresh tracks the dirty parts of a display and redraws them
// through a single frame window, one band at a time.
package refresh

import (
	"errors"
	"fmt"

	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/pixel"
	"github.com/32bitkid/vdb/screen"
)

// MaxDirty is the number of dirty areas kept before the whole display is
// invalidated instead.
const MaxDirty = 32

// Flusher copies a rendered band to the display. pix holds a.Size() pixels
// row-major and is only valid for the duration of the call.
type Flusher interface {
	Flush(a area.Area, pix []pixel.Color) error
}

// FlusherFunc adapts a function to Flusher.
type FlusherFunc func(a area.Area, pix []pixel.Color) error

func (f FlusherFunc) Flush(a area.Area, pix []pixel.Color) error { return f(a, pix) }

// DrawFunc renders everything that intersects mask into w.
type DrawFunc func(w *screen.Window, mask area.Area)

type Refresher struct {
	win     *screen.Window
	display area.Area
	bg      pixel.Color
	flusher Flusher

	dirty []area.Area
}

// New creates a refresher for display. The window must hold at least one
// full display row.
func New(win *screen.Window, display area.Area, bg pixel.Color, f Flusher) (*Refresher, error) {
	if display.Empty() {
		return nil, fmt.Errorf("refresh: empty display %v", display)
	}
	if win.Cap() < display.Width() {
		return nil, fmt.Errorf("%w: %d pixels for a %d pixel row", screen.ErrCapacity, win.Cap(), display.Width())
	}
	return &Refresher{
		win:     win,
		display: display,
		bg:      bg,
		flusher: f,
		dirty:   make([]area.Area, 0, MaxDirty),
	}, nil
}

// Display is the area the refresher covers.
func (r *Refresher) Display() area.Area { return r.display }

// Dirty returns the pending areas. The slice is reused by later calls.
func (r *Refresher) Dirty() []area.Area { return r.dirty }

// Invalidate marks a as needing a redraw.
func (r *Refresher) Invalidate(a area.Area) {
	a, ok := area.Intersect(a, r.display)
	if !ok {
		return
	}
	for _, d := range r.dirty {
		if a.In(d) {
			return
		}
	}
	if len(r.dirty) == MaxDirty {
		screen.Logger().Debug("refresh: dirty list full", "area", a)
		r.dirty = append(r.dirty[:0], r.display)
		return
	}
	r.dirty = append(r.dirty, a)
}

// InvalidateAll marks the whole display.
func (r *Refresher) InvalidateAll() {
	r.dirty = append(r.dirty[:0], r.display)
}

// join merges overlapping areas while the merged box is smaller than the
// two areas drawn separately.
func (r *Refresher) join() {
	for merged := true; merged; {
		merged = false
		for i := 0; i < len(r.dirty); i++ {
			for j := i + 1; j < len(r.dirty); j++ {
				a, b := r.dirty[i], r.dirty[j]
				if !a.On(b) {
					continue
				}
				u := area.Join(a, b)
				if u.Size() >= a.Size()+b.Size() {
					continue
				}
				r.dirty[i] = u
				r.dirty = append(r.dirty[:j], r.dirty[j+1:]...)
				merged = true
				j--
			}
		}
	}
}

// Refresh redraws every dirty area and clears the list. Areas are split
// into bands of as many full rows as the window holds; each band is
// cleared to the background, drawn and flushed. A failed flush does not
// stop the remaining bands.
func (r *Refresher) Refresh(draw DrawFunc) error {
	r.join()

	var errs []error
	for _, d := range r.dirty {
		rows := r.win.Cap() / d.Width()
		for y := d.Y1; y <= d.Y2; y += rows {
			band := area.Area{X1: d.X1, Y1: y, X2: d.X2, Y2: min(y+rows-1, d.Y2)}
			if err := r.band(band, draw); err != nil {
				screen.Logger().Warn("refresh: flush failed", "band", band, "err", err)
				errs = append(errs, err)
			}
		}
	}
	r.dirty = r.dirty[:0]
	return errors.Join(errs...)
}

func (r *Refresher) band(band area.Area, draw DrawFunc) error {
	if err := r.win.Place(band); err != nil {
		return err
	}
	r.win.Clear(r.bg)
	if draw != nil {
		draw(r.win, band)
	}
	screen.Logger().Debug("refresh: band", "area", band)
	if err := r.flusher.Flush(band, r.win.Pix()); err != nil {
		return fmt.Errorf("refresh: flush %v: %w", band, err)
	}
	return nil
}

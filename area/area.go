// Package area implements inclusive pixel rectangles and the clipping
// arithmetic shared by every drawing operation.
package area

import (
	"fmt"
	"image"
)

// Point is an absolute pixel position.
type Point struct {
	X, Y int
}

// Area is an axis-aligned rectangle with inclusive bounds: the pixels
// X1..X2 and Y1..Y2 all belong to it.
type Area struct {
	X1, Y1 int
	X2, Y2 int
}

// New returns the area whose top-left corner is at (x, y) and which
// spans w x h pixels.
func New(x, y, w, h int) Area {
	return Area{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// FromRect converts a half-open image.Rectangle.
func FromRect(r image.Rectangle) Area {
	return Area{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X - 1, Y2: r.Max.Y - 1}
}

// Rect converts the area to a half-open image.Rectangle.
func (a Area) Rect() image.Rectangle {
	return image.Rect(a.X1, a.Y1, a.X2+1, a.Y2+1)
}

func (a Area) Width() int  { return a.X2 - a.X1 + 1 }
func (a Area) Height() int { return a.Y2 - a.Y1 + 1 }

// Size is the number of pixels covered, zero for inverted areas.
func (a Area) Size() int {
	if a.Empty() {
		return 0
	}
	return a.Width() * a.Height()
}

// Empty reports whether the area covers no pixel.
func (a Area) Empty() bool {
	return a.X1 > a.X2 || a.Y1 > a.Y2
}

// Min is the top-left corner.
func (a Area) Min() Point { return Point{a.X1, a.Y1} }

// Translate moves the area by (dx, dy).
func (a Area) Translate(dx, dy int) Area {
	return Area{X1: a.X1 + dx, Y1: a.Y1 + dy, X2: a.X2 + dx, Y2: a.Y2 + dy}
}

// Intersect returns the common part of a and b. The boolean is false when
// they do not overlap; the returned area must then not be used.
func Intersect(a, b Area) (Area, bool) {
	res := Area{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
	return res, !res.Empty()
}

// Join returns the bounding box of a and b.
func Join(a, b Area) Area {
	return Area{
		X1: min(a.X1, b.X1),
		Y1: min(a.Y1, b.Y1),
		X2: max(a.X2, b.X2),
		Y2: max(a.Y2, b.Y2),
	}
}

// On reports whether a and b share at least one pixel.
func (a Area) On(b Area) bool {
	_, ok := Intersect(a, b)
	return ok
}

// In reports whether a lies completely inside b.
func (a Area) In(b Area) bool {
	return a.X1 >= b.X1 && a.Y1 >= b.Y1 && a.X2 <= b.X2 && a.Y2 <= b.Y2
}

// Contains reports whether p is one of the area's pixels.
func (a Area) Contains(p Point) bool {
	return p.X >= a.X1 && p.X <= a.X2 && p.Y >= a.Y1 && p.Y <= a.Y2
}

func (a Area) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", a.X1, a.Y1, a.X2, a.Y2)
}

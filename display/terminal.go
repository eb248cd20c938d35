package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/pixel"
)

// upperHalf draws the top display row in the foreground color and the
// bottom row in the background color.
const upperHalf = '▀'

// Terminal previews a display on a tcell screen. Each cell shows two
// display rows, so bands are kept in an Image and whole cells are redrawn
// from it.
type Terminal struct {
	Screen tcell.Screen
	canvas *Image
}

// NewTerminal wraps an initialized screen.
func NewTerminal(s tcell.Screen, width, height int, d pixel.Depth) *Terminal {
	return &Terminal{Screen: s, canvas: NewImage(width, height, d)}
}

// Area is the display area in absolute coordinates.
func (t *Terminal) Area() area.Area { return t.canvas.Area() }

func (t *Terminal) Flush(a area.Area, pix []pixel.Color) error {
	if err := t.canvas.Flush(a, pix); err != nil {
		return err
	}
	rgba := t.canvas.RGBA
	bottom := rgba.Rect.Max.Y - 1
	for row := a.Y1 / 2; row <= a.Y2/2; row++ {
		for x := a.X1; x <= a.X2; x++ {
			top := rgba.RGBAAt(x, row*2)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B)))
			if y := row*2 + 1; y <= bottom {
				c := rgba.RGBAAt(x, y)
				style = style.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			}
			t.Screen.SetContent(x, row, upperHalf, nil, style)
		}
	}
	t.Screen.Show()
	return nil
}

// Package display provides flush targets for the refresh scheduler.
package display

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/pixel"
)

// ErrOutOfBounds is returned for bands that do not fit the display.
var ErrOutOfBounds = errors.New("display: band outside the display")

// Image is an in-memory display. Flushed bands are converted to RGBA.
type Image struct {
	Depth pixel.Depth
	RGBA  *image.RGBA
}

// NewImage creates a display of width x height pixels.
func NewImage(width, height int, d pixel.Depth) *Image {
	return &Image{
		Depth: d,
		RGBA:  image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Area is the display area in absolute coordinates.
func (img *Image) Area() area.Area { return area.FromRect(img.RGBA.Rect) }

func (img *Image) Flush(a area.Area, pix []pixel.Color) error {
	if !a.In(img.Area()) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, a)
	}
	if len(pix) < a.Size() {
		return fmt.Errorf("display: %d pixels for %v", len(pix), a)
	}
	i := 0
	for y := a.Y1; y <= a.Y2; y++ {
		for x := a.X1; x <= a.X2; x++ {
			img.RGBA.SetRGBA(x, y, img.Depth.Color(pix[i]))
			i++
		}
	}
	return nil
}

// SavePNG writes the display contents to path.
func (img *Image) SavePNG(path string) error {
	return savePNG(path, img.RGBA)
}

func savePNG(path string, m image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, m); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

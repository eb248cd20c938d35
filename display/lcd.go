package display

import (
	"image"
	"image/color"
)

// Stripe tints of the red, green and blue subpixels.
var subpixels = [3]color.RGBA{
	{R: 0xFF, G: 0x99, B: 0x99, A: 0xFF},
	{R: 0x99, G: 0xFF, B: 0x99, A: 0xFF},
	{R: 0x99, G: 0x99, B: 0xFF, A: 0xFF},
}

func mul(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint32(a.R) * uint32(b.R) / 0xFF),
		G: uint8(uint32(a.G) * uint32(b.G) / 0xFF),
		B: uint8(uint32(a.B) * uint32(b.B) / 0xFF),
		A: 0xFF,
	}
}

func half(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R >> 1, G: c.G >> 1, B: c.B >> 1, A: 0xFF}
}

// LCD enlarges the display by scale to look like a panel up close: each
// pixel becomes a cell of red, green and blue stripes with a darker gap on
// its right and bottom edge. Below a scale of 3 pixels are only repeated.
func (img *Image) LCD(scale int) *image.RGBA {
	scale = max(scale, 1)
	src := img.RGBA
	r := src.Rect
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx()*scale, r.Dy()*scale))

	for sy := r.Min.Y; sy < r.Max.Y; sy++ {
		for sx := r.Min.X; sx < r.Max.X; sx++ {
			c := src.RGBAAt(sx, sy)
			dx, dy := (sx-r.Min.X)*scale, (sy-r.Min.Y)*scale
			for iy := 0; iy < scale; iy++ {
				for ix := 0; ix < scale; ix++ {
					co := c
					if scale >= 3 {
						co = mul(co, subpixels[ix*3/scale])
						if ix == scale-1 || iy == scale-1 {
							co = half(co)
						}
					}
					dst.SetRGBA(dx+ix, dy+iy, co)
				}
			}
		}
	}
	return dst
}

// SaveLCD writes the LCD rendering of the display to path.
func (img *Image) SaveLCD(path string, scale int) error {
	return savePNG(path, img.LCD(scale))
}

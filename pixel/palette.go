package pixel

import (
	"fmt"
	"image/color"
	"strings"

	clr "github.com/lucasb-eyer/go-colorful"
)

// RGB24 is a depth-independent 0xRRGGBB color.
type RGB24 uint32

func (rgb24 RGB24) RGBA() (r, g, b, a uint32) {
	rb, gb, bb := (rgb24>>16)&0xFF, (rgb24>>8)&0xFF, (rgb24>>0)&0xFF

	r = uint32((rb << 8) | rb)
	g = uint32((gb << 8) | gb)
	b = uint32((bb << 8) | bb)
	a = 0xFFFF
	return
}

// In packs the color for depth d.
func (rgb24 RGB24) In(d Depth) Color {
	return d.Pack(uint8(rgb24>>16), uint8(rgb24>>8), uint8(rgb24))
}

const (
	Black   RGB24 = 0x000000
	White   RGB24 = 0xFFFFFF
	Red     RGB24 = 0xFF0000
	Lime    RGB24 = 0x00FF00
	Blue    RGB24 = 0x0000FF
	Yellow  RGB24 = 0xFFFF00
	Cyan    RGB24 = 0x00FFFF
	Magenta RGB24 = 0xFF00FF
	Gray    RGB24 = 0x808080
	Silver  RGB24 = 0xC0C0C0
	Maroon  RGB24 = 0x800000
	Olive   RGB24 = 0x808000
	Green   RGB24 = 0x008000
	Purple  RGB24 = 0x800080
	Teal    RGB24 = 0x008080
	Navy    RGB24 = 0x000080
)

// Named maps lower-case color names to their values.
var Named = map[string]RGB24{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"lime":    Lime,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"aqua":    Cyan,
	"magenta": Magenta,
	"gray":    Gray,
	"silver":  Silver,
	"maroon":  Maroon,
	"olive":   Olive,
	"green":   Green,
	"purple":  Purple,
	"teal":    Teal,
	"navy":    Navy,
}

// EGA is the 16 color EGA palette.
var EGA = color.Palette{
	RGB24(0x000000),
	RGB24(0x0000AA),
	RGB24(0x00AA00),
	RGB24(0x00AAAA),
	RGB24(0xAA0000),
	RGB24(0xAA00AA),
	RGB24(0xAA5500),
	RGB24(0xAAAAAA),

	RGB24(0x555555),
	RGB24(0x5555FF),
	RGB24(0x55FF55),
	RGB24(0x55FFFF),
	RGB24(0xFF5555),
	RGB24(0xFF55FF),
	RGB24(0xFFFF55),
	RGB24(0xFFFFFF),
}

// FromColor converts any color.Color to the native layout. Fully
// transparent colors convert to black.
func (d Depth) FromColor(c color.Color) Color {
	cf, _ := clr.MakeColor(c)
	r, g, b := cf.RGB255()
	return d.Pack(r, g, b)
}

// Color converts a native color back to an opaque color.RGBA.
func (d Depth) Color(c Color) color.RGBA {
	r, g, b := d.RGB(c)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Parse accepts a color name from Named or a #rgb / #rrggbb hex string.
func (d Depth) Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if rgb24, ok := Named[strings.ToLower(s)]; ok {
		return rgb24.In(d), nil
	}
	cf, err := clr.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := cf.Clamped().RGB255()
	return d.Pack(r, g, b), nil
}

// Lighten raises the HCL luminance of c by p.
func (d Depth) Lighten(c Color, p float64) Color {
	h, ch, l := d.hcl(c)
	return d.FromColor(clr.Hcl(h, ch, l+p).Clamped())
}

// Darken lowers the HCL luminance of c by p.
func (d Depth) Darken(c Color, p float64) Color {
	h, ch, l := d.hcl(c)
	return d.FromColor(clr.Hcl(h, ch, l-p).Clamped())
}

func (d Depth) hcl(c Color) (h, ch, l float64) {
	srcColor, _ := clr.MakeColor(d.Color(c))
	return srcColor.Hcl()
}

// Package pixel defines packed native colors, opacities and the per-channel
// blend used by the compositing core.
package pixel

import "fmt"

// Color is a packed pixel in a Depth's native layout. Two colors of the
// same depth are equal exactly when their packed values are equal.
type Color uint32

// Opacity ranges from Transp (skip) to Cover (replace).
type Opacity uint8

const (
	Transp Opacity = 0
	Opa10  Opacity = 25
	Opa20  Opacity = 51
	Opa30  Opacity = 76
	Opa40  Opacity = 102
	Opa50  Opacity = 127
	Opa60  Opacity = 153
	Opa70  Opacity = 178
	Opa80  Opacity = 204
	Opa90  Opacity = 229
	Cover  Opacity = 255
)

// Scale multiplies two opacities, rounding to nearest.
func (o Opacity) Scale(by Opacity) Opacity {
	return Opacity(div255(uint32(o) * uint32(by)))
}

// Depth selects the packed layout of a Color.
type Depth uint8

const (
	// Depth8 is RGB332.
	Depth8 Depth = 8
	// Depth16 is RGB565.
	Depth16 Depth = 16
	// Depth24 is RGB888 in the low 24 bits.
	Depth24 Depth = 24
)

func (d Depth) Valid() bool {
	switch d {
	case Depth8, Depth16, Depth24:
		return true
	}
	return false
}

// Bytes is the storage size of one pixel. 24-bit pixels occupy 4 bytes.
func (d Depth) Bytes() int {
	switch d {
	case Depth8:
		return 1
	case Depth16:
		return 2
	}
	return 4
}

func (d Depth) String() string {
	switch d {
	case Depth8:
		return "Depth(RGB332)"
	case Depth16:
		return "Depth(RGB565)"
	case Depth24:
		return "Depth(RGB888)"
	}
	return fmt.Sprintf("Depth(%d)", uint8(d))
}

// Pack truncates 8-bit channels into the native layout.
func (d Depth) Pack(r, g, b uint8) Color {
	switch d {
	case Depth8:
		return Color(uint32(r>>5)<<5 | uint32(g>>5)<<2 | uint32(b>>6))
	case Depth16:
		return Color(uint32(r>>3)<<11 | uint32(g>>2)<<5 | uint32(b>>3))
	}
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB expands c to 8-bit channels, replicating the high bits so that full
// intensity maps to 0xFF.
func (d Depth) RGB(c Color) (r, g, b uint8) {
	switch d {
	case Depth8:
		r3, g3, b2 := uint8(c>>5)&0x7, uint8(c>>2)&0x7, uint8(c)&0x3
		return r3<<5 | r3<<2 | r3>>1, g3<<5 | g3<<2 | g3>>1, b2 * 0x55
	case Depth16:
		r5, g6, b5 := uint8(c>>11)&0x1F, uint8(c>>5)&0x3F, uint8(c)&0x1F
		return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Mix interpolates fg over bg by opa/255 on every channel, rounding to the
// nearest representable value. Mix(fg, bg, Cover) == fg and
// Mix(fg, bg, Transp) == bg for every pair of colors.
func (d Depth) Mix(fg, bg Color, opa Opacity) Color {
	switch opa {
	case Cover:
		return fg
	case Transp:
		return bg
	}

	o := uint32(opa)
	f, b := uint32(fg), uint32(bg)
	switch d {
	case Depth8:
		return Color(mix(f>>5&0x7, b>>5&0x7, o)<<5 |
			mix(f>>2&0x7, b>>2&0x7, o)<<2 |
			mix(f&0x3, b&0x3, o))
	case Depth16:
		return Color(mix(f>>11&0x1F, b>>11&0x1F, o)<<11 |
			mix(f>>5&0x3F, b>>5&0x3F, o)<<5 |
			mix(f&0x1F, b&0x1F, o))
	}
	return Color(mix(f>>16&0xFF, b>>16&0xFF, o)<<16 |
		mix(f>>8&0xFF, b>>8&0xFF, o)<<8 |
		mix(f&0xFF, b&0xFF, o))
}

func mix(f, b, o uint32) uint32 {
	return div255(f*o + b*(255-o))
}

// div255 is round(x / 255) for x <= 255*255, without a division.
func div255(x uint32) uint32 {
	t := x + 128
	return (t + t>>8) >> 8
}

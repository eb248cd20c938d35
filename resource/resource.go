// Package resource stores raw images by name and turns them into pixel
// maps for the compositing core.
//
// A raw image is a little-endian header followed by Width*Height pixels:
//
//	offset | field
//	0      | width  uint16
//	2      | height uint16
//	4      | depth  uint16 (8, 16 or 24)
//	6      | flags  uint16 (bit 0: transparent)
//
// Pixels take 1, 2 or 4 bytes for depths 8, 16 and 24 respectively.
package resource

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/32bitkid/vdb/pixel"
	"github.com/32bitkid/vdb/screen"
)

var (
	ErrNotFound  = errors.New("resource: not found")
	ErrBadHeader = errors.New("resource: bad image header")
	ErrShortData = errors.New("resource: image data too short")
	ErrDepth     = errors.New("resource: unsupported color depth")
)

// FlagTransparent marks images whose key colored pixels are not drawn.
const FlagTransparent uint16 = 1 << 0

// Header is the raw image header.
type Header struct {
	Width  uint16
	Height uint16
	Depth  uint16
	Flags  uint16
}

const headerSize = 8

func (h Header) Transparent() bool { return h.Flags&FlagTransparent != 0 }

func (h Header) pixelDepth() (pixel.Depth, error) {
	d := pixel.Depth(h.Depth)
	if h.Depth > 0xFF || !d.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrDepth, h.Depth)
	}
	return d, nil
}

// Image is a raw image converted to the window's depth.
type Image struct {
	screen.Map
	Transparent bool
}

// ReadHeader parses the header at the start of b.
func ReadHeader(b []byte) (Header, error) {
	var h Header
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &h); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if _, err := h.pixelDepth(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Parse decodes a raw image and converts its pixels to depth to.
func Parse(b []byte, to pixel.Depth) (*Image, error) {
	h, err := ReadHeader(b)
	if err != nil {
		return nil, err
	}
	from, _ := h.pixelDepth()

	w, ht := int(h.Width), int(h.Height)
	need := headerSize + w*ht*from.Bytes()
	if len(b) < need {
		return nil, fmt.Errorf("%w: %dx%d at %d bits needs %d bytes, have %d",
			ErrShortData, w, ht, h.Depth, need, len(b))
	}

	data := b[headerSize:need]
	pix := make([]pixel.Color, w*ht)
	for i := range pix {
		var c pixel.Color
		switch from {
		case pixel.Depth8:
			c = pixel.Color(data[i])
		case pixel.Depth16:
			c = pixel.Color(binary.LittleEndian.Uint16(data[i*2:]))
		default:
			c = pixel.Color(binary.LittleEndian.Uint32(data[i*4:]) & 0xFFFFFF)
		}
		if from != to {
			c = to.Pack(from.RGB(c))
		}
		pix[i] = c
	}

	return &Image{
		Map:         screen.Map{Width: w, Height: ht, Pix: pix},
		Transparent: h.Transparent(),
	}, nil
}

// Encode builds a raw image from pixels of depth d.
func Encode(width, height int, d pixel.Depth, transparent bool, pix []pixel.Color) ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrDepth, d)
	}
	if width < 0 || height < 0 || width > 0xFFFF || height > 0xFFFF {
		return nil, fmt.Errorf("%w: size %dx%d", ErrBadHeader, width, height)
	}
	if len(pix) < width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrShortData, len(pix), width, height)
	}

	h := Header{Width: uint16(width), Height: uint16(height), Depth: uint16(d)}
	if transparent {
		h.Flags |= FlagTransparent
	}

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+width*height*d.Bytes()))
	if err := binary.Write(buf, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	for _, c := range pix[:width*height] {
		var err error
		switch d {
		case pixel.Depth8:
			err = buf.WriteByte(uint8(c))
		case pixel.Depth16:
			err = binary.Write(buf, binary.LittleEndian, uint16(c))
		default:
			err = binary.Write(buf, binary.LittleEndian, uint32(c))
		}
		if err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

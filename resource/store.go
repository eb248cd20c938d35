package resource

import (
	"fmt"

	"github.com/32bitkid/vdb/pixel"
	"github.com/32bitkid/vdb/screen"
)

// Store is an in-memory file system of raw images, addressed by names such
// as "U:/logo". Opened images are converted once and cached.
type Store struct {
	depth pixel.Depth
	files map[string][]byte
	cache map[string]*Image
}

// NewStore returns a store that converts images to depth.
func NewStore(depth pixel.Depth) *Store {
	return &Store{
		depth: depth,
		files: make(map[string][]byte),
		cache: make(map[string]*Image),
	}
}

// Create stores a raw image under name, replacing any previous one.
func (s *Store) Create(name string, data []byte) error {
	h, err := ReadHeader(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	d, _ := h.pixelDepth()
	if need := headerSize + int(h.Width)*int(h.Height)*d.Bytes(); len(data) < need {
		return fmt.Errorf("%s: %w: need %d bytes, have %d", name, ErrShortData, need, len(data))
	}

	s.files[name] = append([]byte(nil), data...)
	delete(s.cache, name)
	return nil
}

// Remove deletes name from the store.
func (s *Store) Remove(name string) {
	delete(s.files, name)
	delete(s.cache, name)
}

// Header returns the header of a stored image without converting it.
func (s *Store) Header(name string) (Header, error) {
	data, ok := s.files[name]
	if !ok {
		return Header{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return ReadHeader(data)
}

// Open returns the image stored under name in the store's depth.
func (s *Store) Open(name string) (*Image, error) {
	if img, ok := s.cache[name]; ok {
		return img, nil
	}

	data, ok := s.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	img, err := Parse(data, s.depth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	screen.Logger().Debug("resource: image loaded", "name", name,
		"width", img.Width, "height", img.Height, "transparent", img.Transparent)
	s.cache[name] = img
	return img, nil
}

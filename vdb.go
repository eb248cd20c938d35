// Package vdb implements the rendering core of a small embedded display
// library: a virtual display buffer (the frame window) into which
// rectangles, glyphs and images are composited before being flushed to the
// display.
//
// The display itself is usually far too large to buffer in RAM, so a
// single window of a few display rows is reused: the refresh scheduler
// places it over each dirty band in turn, everything overlapping the band
// is drawn into it, and the band is flushed.
//
// The drawing core lives in package screen; area and pixel hold the
// geometry and color arithmetic; font, resource, draw, refresh and display
// are the collaborators around it.
package vdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/pixel"
	"github.com/32bitkid/vdb/screen"
)

// Config describes the display and the frame window.
type Config struct {
	// Width and Height of the display in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`
	// WindowSize is the frame window capacity in pixels. It must hold at
	// least one display row. Zero selects a tenth of the display.
	WindowSize int `json:"window_size"`
	// Depth is the color depth in bits: 8, 16 or 24.
	Depth int `json:"depth"`
	// TransparentKey is the color skipped by transparent images, by name
	// or as #rrggbb.
	TransparentKey string `json:"transparent_key"`
	// Background is the color each band is cleared to before drawing.
	Background string `json:"background"`
}

var ErrInvalidConfig = errors.New("vdb: invalid config")

func DefaultConfig() Config {
	return Config{
		Width:          320,
		Height:         240,
		Depth:          16,
		TransparentKey: "lime",
		Background:     "silver",
	}
}

// LoadConfig reads a JSON config. Missing fields keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("vdb: config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadConfigFile reads a JSON config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if !c.ColorDepth().Valid() {
		return fmt.Errorf("%w: depth %d", ErrInvalidConfig, c.Depth)
	}
	if size := c.windowSize(); size < c.Width {
		return fmt.Errorf("%w: window of %d pixels cannot hold a %d pixel row", ErrInvalidConfig, size, c.Width)
	}
	if _, err := c.ColorDepth().Parse(c.TransparentKey); err != nil {
		return fmt.Errorf("%w: transparent_key: %v", ErrInvalidConfig, err)
	}
	if _, err := c.ColorDepth().Parse(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) ColorDepth() pixel.Depth { return pixel.Depth(c.Depth) }

// Display is the area covered by the whole display.
func (c Config) Display() area.Area {
	return area.New(0, 0, c.Width, c.Height)
}

func (c Config) windowSize() int {
	if c.WindowSize == 0 {
		return c.Width * c.Height / 10
	}
	return c.WindowSize
}

// Colors returns the transparency key and background in native depth.
func (c Config) Colors() (key, background pixel.Color, err error) {
	d := c.ColorDepth()
	if key, err = d.Parse(c.TransparentKey); err != nil {
		return 0, 0, err
	}
	if background, err = d.Parse(c.Background); err != nil {
		return 0, 0, err
	}
	return key, background, nil
}

// NewWindow allocates the frame window described by the config.
func (c Config) NewWindow() (*screen.Window, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	key, _, err := c.Colors()
	if err != nil {
		return nil, err
	}
	return screen.NewWindow(c.windowSize(), c.ColorDepth(), key), nil
}

package vdb

import (
	"errors"
	"strings"
	"testing"

	"github.com/32bitkid/vdb/pixel"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	w, err := cfg.NewWindow()
	if err != nil {
		t.Fatal(err)
	}
	if w.Cap() != 320*24 {
		t.Errorf("unexpected capacity %d", w.Cap())
	}
	if w.Depth != pixel.Depth16 || w.Key != pixel.Lime.In(pixel.Depth16) {
		t.Errorf("unexpected window %v / %#x", w.Depth, w.Key)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`{
		"width": 128, "height": 64, "window_size": 1280,
		"depth": 24, "transparent_key": "#ff00ff"
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 128 || cfg.Height != 64 || cfg.Background != "silver" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	key, bg, err := cfg.Colors()
	if err != nil {
		t.Fatal(err)
	}
	if key != 0xFF00FF || bg != 0xC0C0C0 {
		t.Errorf("unexpected colors %#x / %#x", key, bg)
	}
	if d := cfg.Display(); d.Width() != 128 || d.Height() != 64 {
		t.Errorf("unexpected display %v", d)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []string{
		`{"depth": 12}`,
		`{"width": 0}`,
		`{"window_size": 100}`,
		`{"transparent_key": "nope"}`,
		`{"background": "#12"}`,
		`{"colour": "red"}`,
		`{`,
	}
	for i, in := range cases {
		if _, err := LoadConfig(strings.NewReader(in)); err == nil {
			t.Errorf("%d: expected an error for %s", i, in)
		}
	}

	_, err := LoadConfig(strings.NewReader(`{"depth": 12}`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

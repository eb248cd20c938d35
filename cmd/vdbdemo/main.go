// Command vdbdemo renders a small scene through the frame window, either to
// a PNG file or to the terminal.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/32bitkid/vdb"
	"github.com/32bitkid/vdb/display"
	"github.com/32bitkid/vdb/refresh"
	"github.com/32bitkid/vdb/screen"
)

func main() {
	var (
		config  = flag.String("config", "", "JSON config file")
		output  = flag.String("o", "vdbdemo.png", "output file")
		term    = flag.Bool("term", false, "show the scene in the terminal")
		lcd     = flag.Int("lcd", 0, "save an LCD-style enlargement at this scale")
		verbose = flag.Bool("v", false, "log refresh diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		screen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := vdb.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = vdb.LoadConfigFile(*config); err != nil {
			log.Fatalf("vdbdemo: %v", err)
		}
	}

	sc, err := newScene(cfg)
	if err != nil {
		log.Fatalf("vdbdemo: %v", err)
	}

	if *term {
		err = runTerminal(cfg, sc)
	} else {
		err = writePNG(cfg, sc, *output, *lcd)
	}
	if err != nil {
		log.Fatalf("vdbdemo: %v", err)
	}
}

func newRefresher(cfg vdb.Config, f refresh.Flusher) (*refresh.Refresher, error) {
	win, err := cfg.NewWindow()
	if err != nil {
		return nil, err
	}
	_, bg, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	return refresh.New(win, cfg.Display(), bg, f)
}

func writePNG(cfg vdb.Config, sc *scene, path string, lcd int) error {
	img := display.NewImage(cfg.Width, cfg.Height, cfg.ColorDepth())
	r, err := newRefresher(cfg, img)
	if err != nil {
		return err
	}
	r.InvalidateAll()
	if err := r.Refresh(sc.draw); err != nil {
		return err
	}
	save := img.SavePNG
	if lcd > 0 {
		save = func(path string) error { return img.SaveLCD(path, lcd) }
	}
	if err := save(path); err != nil {
		return err
	}
	log.Printf("scene saved to %s (%dx%d)", path, cfg.Width, cfg.Height)
	return nil
}

func runTerminal(cfg vdb.Config, sc *scene) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.HideCursor()

	r, err := newRefresher(cfg, display.NewTerminal(s, cfg.Width, cfg.Height, cfg.ColorDepth()))
	if err != nil {
		return err
	}
	r.InvalidateAll()
	if err := r.Refresh(sc.draw); err != nil {
		return err
	}

	for {
		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey, nil:
			return nil
		}
	}
}

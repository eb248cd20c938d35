package main

import (
	"golang.org/x/image/font/basicfont"

	"github.com/32bitkid/vdb"
	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/draw"
	"github.com/32bitkid/vdb/font"
	"github.com/32bitkid/vdb/pixel"
	"github.com/32bitkid/vdb/resource"
	"github.com/32bitkid/vdb/screen"
)

const (
	spriteName = "U:/sprite"
	iconName   = "U:/icon"
)

// arrow is drawn as an icon; '#' is set, everything else is the key.
var arrow = []string{
	"...#....",
	"...##...",
	"#######.",
	"########",
	"#######.",
	"...##...",
	"...#....",
}

type scene struct {
	depth pixel.Depth
	store *resource.Store
	font  font.Font

	panel   area.Area
	button  area.Area
	sprite  area.Point
	icon    area.Point
	overlay area.Area
}

func newScene(cfg vdb.Config) (*scene, error) {
	d := cfg.ColorDepth()
	key, _, err := cfg.Colors()
	if err != nil {
		return nil, err
	}

	store := resource.NewStore(d)
	if err := addSprite(store, d, key); err != nil {
		return nil, err
	}
	if err := addIcon(store, d, key); err != nil {
		return nil, err
	}

	w, h := cfg.Width, cfg.Height
	return &scene{
		depth:   d,
		store:   store,
		font:    font.FromFace(basicfont.Face7x13),
		panel:   area.New(w/10, h/10, w*8/10, h*8/10),
		button:  area.New(w/10+10, h/10+10, 90, 24),
		sprite:  area.Point{X: w/10 + 10, Y: h/10 + 44},
		icon:    area.Point{X: w/10 + 40, Y: h/10 + 44},
		overlay: area.New(w/2, h/2, w/2, h/3),
	}, nil
}

// addSprite stores a checkered diamond whose corners are the key color.
func addSprite(store *resource.Store, d pixel.Depth, key pixel.Color) error {
	const size = 16
	pix := make([]pixel.Color, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := abs(2*x-size+1), abs(2*y-size+1)
			switch {
			case dx+dy > size:
				pix[y*size+x] = key
			case (x/4+y/4)%2 == 0:
				pix[y*size+x] = pixel.Yellow.In(d)
			default:
				pix[y*size+x] = pixel.Purple.In(d)
			}
		}
	}
	raw, err := resource.Encode(size, size, d, true, pix)
	if err != nil {
		return err
	}
	return store.Create(spriteName, raw)
}

func addIcon(store *resource.Store, d pixel.Depth, key pixel.Color) error {
	width, height := len(arrow[0]), len(arrow)
	pix := make([]pixel.Color, 0, width*height)
	for _, row := range arrow {
		for _, c := range row {
			if c == '#' {
				pix = append(pix, pixel.White.In(d))
			} else {
				pix = append(pix, key)
			}
		}
	}
	raw, err := resource.Encode(width, height, d, true, pix)
	if err != nil {
		return err
	}
	return store.Create(iconName, raw)
}

func (sc *scene) draw(w *screen.Window, mask area.Area) {
	d := sc.depth
	body := pixel.Teal.In(d)

	draw.Rect(w, sc.panel, mask, draw.RectStyle{
		Main:        body,
		Grad:        pixel.Navy.In(d),
		BorderColor: d.Darken(body, 0.3),
		BorderWidth: 3,
		BorderOpa:   pixel.Cover,
	}, pixel.Cover)

	btn := pixel.Silver.In(d)
	draw.Rect(w, sc.button, mask, draw.RectStyle{
		Main:        d.Lighten(btn, 0.1),
		Grad:        btn,
		BorderColor: d.Darken(btn, 0.4),
		BorderWidth: 1,
		BorderOpa:   pixel.Opa70,
	}, pixel.Cover)

	label := draw.LabelStyle{Font: sc.font, Color: pixel.Black.In(d), LetterSpace: 1}
	tw, th := draw.TextSize(label, "Press me")
	text := area.New(
		sc.button.X1+(sc.button.Width()-tw)/2,
		sc.button.Y1+(sc.button.Height()-th)/2,
		tw, th,
	)
	draw.Label(w, text, mask, label, pixel.Cover, "Press me")

	rule := sc.button.Y2 + 5
	draw.Line(w, area.Point{X: sc.panel.X1 + 10, Y: rule}, area.Point{X: sc.panel.X2 - 10, Y: rule}, mask,
		draw.LineStyle{Color: d.Lighten(body, 0.2), Width: 1}, pixel.Cover)
	draw.Line(w, area.Point{X: sc.panel.X2 - 60, Y: sc.panel.Y2 - 10}, area.Point{X: sc.panel.X2 - 10, Y: sc.panel.Y1 + 40}, mask,
		draw.LineStyle{Color: pixel.White.In(d), Width: 3}, pixel.Opa70)

	sc.image(w, mask, spriteName, sc.sprite, draw.ImageStyle{})
	sc.image(w, mask, iconName, sc.icon, draw.ImageStyle{
		Upscale:    true,
		Recolor:    pixel.Red.In(d),
		RecolorOpa: pixel.Opa60,
	})

	draw.Rect(w, sc.overlay, mask, draw.RectStyle{
		Main: pixel.Maroon.In(d),
		Grad: pixel.Maroon.In(d),
	}, pixel.Opa50)
}

func (sc *scene) image(w *screen.Window, mask area.Area, name string, pos area.Point, st draw.ImageStyle) {
	img, err := sc.store.Open(name)
	if err != nil {
		screen.Logger().Warn("vdbdemo: image", "name", name, "err", err)
		return
	}
	draw.Image(w, draw.ImageSize(pos, st, img), mask, st, pixel.Cover, img)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

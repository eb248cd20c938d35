package draw

import (
	"github.com/32bitkid/vdb/area"
	"github.com/32bitkid/vdb/pixel"
	"github.com/32bitkid/vdb/resource"
	"github.com/32bitkid/vdb/screen"
)

type ImageStyle struct {
	// Upscale draws every image pixel as a 2x2 block.
	Upscale bool
	// Recolor is mixed into the image by RecolorOpa.
	Recolor    pixel.Color
	RecolorOpa pixel.Opacity
}

// Image draws img with its first pixel at the top-left corner of coords.
func Image(w *screen.Window, coords, mask area.Area, st ImageStyle, opa pixel.Opacity, img *resource.Image) {
	if img == nil {
		return
	}
	w.DrawMap(coords, mask, img.Map, screen.MapOptions{
		Opacity:     opa,
		Transparent: img.Transparent,
		Upscale:     st.Upscale,
		Tint:        st.Recolor,
		TintOpacity: st.RecolorOpa,
	})
}

// ImageFile opens name in store and draws it.
func ImageFile(w *screen.Window, coords, mask area.Area, st ImageStyle, opa pixel.Opacity, store *resource.Store, name string) error {
	img, err := store.Open(name)
	if err != nil {
		return err
	}
	Image(w, coords, mask, st, opa, img)
	return nil
}

// ImageSize is the area img covers at pos.
func ImageSize(pos area.Point, st ImageStyle, img *resource.Image) area.Area {
	w, h := img.Width, img.Height
	if st.Upscale {
		w, h = w*2, h*2
	}
	return area.New(pos.X, pos.Y, w, h)
}

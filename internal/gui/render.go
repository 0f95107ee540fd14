package gui

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/orbit"
)

var ErrAssetLoad = errors.New("gui: cannot load asset")

var (
	ColGuide  = rl.White
	ColMarker = rl.Red
	ColTrail  = rl.White
	ColText   = rl.NewColor(180, 180, 180, 255)
	ColDim    = rl.NewColor(90, 90, 90, 255)
)

// Renderer is the process-wide render context: the textures loaded once at
// startup and the sizes they are drawn at. It needs an open window and must
// be closed before the window is.
type Renderer struct {
	window config.WindowConfig
	render config.RenderConfig

	background rl.Texture2D
	planet     rl.Texture2D
	satellite  rl.Texture2D
}

func loadTexture(path string) (rl.Texture2D, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Texture2D{}, fmt.Errorf("%w: %s: %v", ErrAssetLoad, path, err)
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("%w: %s: unsupported or corrupt image", ErrAssetLoad, path)
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return tex, nil
}

// NewRenderer loads every asset named in cfg. On failure nothing stays loaded.
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	r := &Renderer{window: cfg.Window, render: cfg.Render}

	var err error
	if r.background, err = loadTexture(cfg.Render.Assets.Background); err != nil {
		return nil, err
	}
	if r.planet, err = loadTexture(cfg.Render.Assets.Planet); err != nil {
		r.Close()
		return nil, err
	}
	if r.satellite, err = loadTexture(cfg.Render.Assets.Satellite); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) Close() {
	for _, tex := range []rl.Texture2D{r.background, r.planet, r.satellite} {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
	}
	r.background, r.planet, r.satellite = rl.Texture2D{}, rl.Texture2D{}, rl.Texture2D{}
}

// drawScaled draws the whole texture stretched into dest.
func drawScaled(tex rl.Texture2D, dest rl.Rectangle) {
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	rl.DrawTexturePro(tex, src, dest, rl.NewVector2(0, 0), 0, rl.White)
}

func vec(p orbit.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

// DrawWorld draws one frame of w: background, guide line and marker while
// armed, every trail and satellite, then the planet on top.
func (r *Renderer) DrawWorld(w *orbit.World, pointer orbit.Point) {
	drawScaled(r.background, rl.NewRectangle(0, 0, float32(r.window.Width), float32(r.window.Height)))

	if marker, ok := w.Marker(); ok {
		rl.DrawLineEx(vec(marker), vec(pointer), 2, ColGuide)
		rl.DrawCircleV(vec(marker), float32(r.render.ObjSize), ColMarker)
	}

	size := float32(r.render.SatelliteSize)
	sats := w.Satellites()
	for i := range sats {
		s := &sats[i]
		if s.TrailVisible() {
			rl.DrawLineStrip(r.trailPoints(s.Trail), ColTrail)
		}
		drawScaled(r.satellite, rl.NewRectangle(float32(int(s.X)), float32(int(s.Y)), size, size))
	}

	p := w.Planet()
	rad := float32(p.Radius)
	drawScaled(r.planet, rl.NewRectangle(float32(p.X)-rad, float32(p.Y)-rad, 2*rad, 2*rad))
}

// trailPoints shifts the trail so it runs through the sprite rather than its
// top-left corner.
func (r *Renderer) trailPoints(trail []orbit.Point) []rl.Vector2 {
	off := float32(r.render.TrailOffset)
	pts := make([]rl.Vector2, len(trail))
	for i, pt := range trail {
		pts[i] = rl.NewVector2(float32(pt.X)+off, float32(pt.Y)+off)
	}
	return pts
}

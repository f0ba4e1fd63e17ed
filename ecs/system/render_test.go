package system

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/render"
)

func TestRenderDrawsInLayerOrder(t *testing.T) {
	w := ecs.NewWorld()
	textures := render.NewTextures()
	sprite := func(e ecs.Entity, name string, wd, ht, layer int) {
		mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Texture: textures.Load(name, wd, ht, color.RGBA{A: 255}, 0)})
		mustAdd(t, w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer})
	}

	ground := addGround(t, w, 0, -50, 336, 112)
	sprite(ground, "ground", 336, 112, 3)

	tube := addTube(t, w, 0, 300, 250, tubeWidth, 125)
	o, _ := ecs.Get(w, tube, component.ObstacleComponent.Kind())
	o.Top = textures.Load("tube_top", 52, 320, color.RGBA{A: 255}, 0)
	o.Bottom = textures.Load("tube_bottom", 52, 320, color.RGBA{A: 255}, 0)
	mustAdd(t, w, tube, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 2})

	bird := addBird(t, w, 50, 200)
	sprite(bird, "bird", 34, 24, 1)

	bg := w.CreateEntity()
	mustAdd(t, w, bg, component.BackgroundTagComponent.Kind(), &component.BackgroundTag{})
	mustAdd(t, w, bg, component.TransformComponent.Kind(), &component.Transform{})
	sprite(bg, "bg", 240, 400, 0)

	addCamera(t, w, 40)

	rec := &render.Recorder{}
	sys := NewRenderSystem()
	rec.Begin()
	sys.Draw(w, rec)
	rec.End()

	want := []string{"bg", "bird", "tube_top", "tube_bottom", "ground"}
	if got := rec.Textures(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected draw order %v, got %v", want, got)
	}
	if rec.Calls[0].X != 40 || rec.Calls[0].Y != 0 {
		t.Fatalf("expected background at camera corner (40,0), got (%v,%v)", rec.Calls[0].X, rec.Calls[0].Y)
	}
	if c := rec.Calls[2]; c.X != 300 || c.Y != 250 {
		t.Fatalf("expected top tube at (300,250), got (%v,%v)", c.X, c.Y)
	}
	if c := rec.Calls[3]; c.Y != 250-100-tubeHeight {
		t.Fatalf("expected bottom tube at y %v, got %v", 250-100-tubeHeight, c.Y)
	}
	if rec.Projection.Left() != 40 {
		t.Fatalf("expected projection left 40, got %v", rec.Projection.Left())
	}
}

func TestRenderDebugOutlines(t *testing.T) {
	w := ecs.NewWorld()
	addCamera(t, w, 0)
	addBird(t, w, 50, 200)
	addTube(t, w, 0, 300, 250, tubeWidth, 125)
	addTube(t, w, 1, 477, 250, tubeWidth, 125)

	rec := &render.Recorder{}
	sys := NewRenderSystem()
	sys.Debug = true
	sys.Draw(w, rec)

	outlines := 0
	for _, c := range rec.Calls {
		if c.Kind == "outline" {
			outlines++
		}
	}
	if outlines != 5 {
		t.Fatalf("expected 5 outlines, got %d", outlines)
	}
}

func TestRenderWithoutCamera(t *testing.T) {
	w := ecs.NewWorld()
	addBird(t, w, 50, 200)

	rec := &render.Recorder{}
	NewRenderSystem().Draw(w, rec)
	if len(rec.Calls) != 0 {
		t.Fatalf("expected no draw calls without a camera, got %d", len(rec.Calls))
	}
}

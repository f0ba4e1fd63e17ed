package system

import (
	"sort"

	"github.com/jakecoffman/cp/v2"
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/render"
)

type RenderSystem struct {
	camEntity ecs.Entity
	// Debug outlines every collision box.
	Debug bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Projection returns the camera's current orthographic projection.
func (r *RenderSystem) Projection(w *ecs.World) (render.Projection, bool) {
	if !w.IsAlive(r.camEntity) {
		r.camEntity, _ = w.First(component.CameraComponent.Kind())
	}
	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok {
		return render.Projection{}, false
	}
	t, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind())
	if !ok {
		return render.Projection{}, false
	}
	return render.Projection{X: t.X, Y: t.Y, Width: cam.ViewportWidth, Height: cam.ViewportHeight}, true
}

// Draw issues draw calls in render layer order. The caller owns Begin/End.
func (r *RenderSystem) Draw(w *ecs.World, batch render.Batch) {
	if r == nil || w == nil || batch == nil {
		return
	}
	proj, ok := r.Projection(w)
	if !ok {
		return
	}
	batch.SetProjection(proj)

	entities := w.Query(component.RenderLayerComponent.Kind(), component.TransformComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, _ := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind())
		lj, _ := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind())
		return li.Index < lj.Index
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		if o, ok := ecs.Get(w, e, component.ObstacleComponent.Kind()); ok {
			batch.Draw(o.Top, t.X, o.TopY)
			batch.Draw(o.Bottom, t.X, o.BottomY)
			continue
		}

		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Texture == nil {
			continue
		}
		if ecs.Has(w, e, component.BackgroundTagComponent.Kind()) {
			batch.Draw(s.Texture, proj.Left(), proj.Bottom())
			continue
		}
		batch.Draw(s.Texture, t.X, t.Y)
	}

	if r.Debug {
		r.drawBounds(w, batch)
	}
}

func (r *RenderSystem) drawBounds(w *ecs.World, batch render.Batch) {
	ecs.ForEach2(w, component.BoundsComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, b *component.Bounds, t *component.Transform) {
			bb := b.BB(t)
			batch.DrawOutline(bb.L, bb.B, bb.R-bb.L, bb.T-bb.B)
		})
	ecs.ForEach2(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, o *component.Obstacle, t *component.Transform) {
			for _, bb := range []cp.BB{o.TopBB(t.X), o.BottomBB(t.X)} {
				batch.DrawOutline(bb.L, bb.B, bb.R-bb.L, bb.T-bb.B)
			}
		})
}

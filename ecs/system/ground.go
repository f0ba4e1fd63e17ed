package system

import (
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

// GroundSystem leapfrogs a ground tile over its partner once its right edge
// is behind the camera, so two tiles always cover the view.
type GroundSystem struct{}

func NewGroundSystem() *GroundSystem {
	return &GroundSystem{}
}

func (s *GroundSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	left, ok := cameraLeft(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.GroundTileComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, tile *component.GroundTile, t *component.Transform) {
			if t.X+tile.Width < left {
				t.X += 2 * tile.Width
			}
		})
}

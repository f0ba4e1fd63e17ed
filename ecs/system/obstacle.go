package system

import (
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

// ObstacleSystem recycles tube pairs that scrolled fully behind the camera to
// the back of the ring, count slots further on, with a freshly rolled gap.
type ObstacleSystem struct {
	placer GapPlacer
	roll   func() float64
}

// NewObstacleSystem uses roll for values in [0, 1) fed to placer.
func NewObstacleSystem(placer GapPlacer, roll func() float64) *ObstacleSystem {
	return &ObstacleSystem{placer: placer, roll: roll}
}

func (s *ObstacleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	left, ok := cameraLeft(w)
	if !ok {
		return
	}
	count := float64(w.Count(component.ObstacleComponent.Kind()))

	ecs.ForEach2(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, o *component.Obstacle, t *component.Transform) {
			if left <= t.X+o.Width {
				return
			}
			o.Place(t, t.X+(o.Width+o.Spacing)*count, s.topY(o))
		})
}

func (s *ObstacleSystem) topY(o *component.Obstacle) float64 {
	if s.placer == nil {
		return o.TopY
	}
	roll := 0.0
	if s.roll != nil {
		roll = s.roll()
	}
	return s.placer.TopY(roll)
}

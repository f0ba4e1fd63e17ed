package system

import (
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

// ScoreSystem credits the bird once for every tube pair it fully clears.
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	bird, ok := w.First(component.BirdTagComponent.Kind())
	if !ok {
		return
	}
	bt, ok := ecs.Get(w, bird, component.TransformComponent.Kind())
	if !ok {
		return
	}
	score, ok := ecs.Get(w, bird, component.ScoreComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, o *component.Obstacle, t *component.Transform) {
			if o.Passed || bt.X <= t.X+o.Width {
				return
			}
			o.Passed = true
			score.Value++
			w.Events().Push(ecs.Event{Type: ecs.EventScore, Entity: bird, Data: score.Value})
		})
}

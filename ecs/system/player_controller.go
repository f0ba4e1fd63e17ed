package system

import (
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

// FlapSystem turns a jump trigger into an upward velocity.
type FlapSystem struct{}

func NewFlapSystem() *FlapSystem {
	return &FlapSystem{}
}

func (s *FlapSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.InputComponent.Kind(), component.FlapComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, input *component.Input, flap *component.Flap, vel *component.Velocity) {
			if !input.FlapPressed {
				return
			}
			vel.Y = flap.Impulse
			w.Events().Push(ecs.Event{Type: ecs.EventFlap, Entity: e})
		})
}

package system

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

// PhysicsSystem integrates gravity and forward movement. Gravity is applied
// once per tick while the body is above y=0, and bodies never sink below 0.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	if dt <= 0 {
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, vel *component.Velocity) {
			if g, ok := ecs.Get(w, e, component.GravityComponent.Kind()); ok && t.Y > 0 {
				vel.Vector = vel.Vector.Add(cp.Vector{Y: g.Y})
			}

			step := vel.Vector.Mult(dt)
			if m, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
				step.X += m.SpeedX * dt
			}
			t.X += step.X
			t.Y += step.Y

			if t.Y < 0 {
				t.Y = 0
			}
		})
}

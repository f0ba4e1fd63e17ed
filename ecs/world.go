package ecs

import "github.com/milk9111/flappy/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, their components, the event queue and the frame clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   EventQueue

	dt    float64
	frame uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// CreateEntity returns a new live entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Advance records the frame delta seen by systems during the next update.
func (w *World) Advance(dt float64) {
	if w == nil {
		return
	}
	w.dt = dt
	w.frame++
}

// Delta returns the seconds elapsed for the current frame.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Frame returns how many times Advance has been called.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Clear destroys every entity and drops pending events.
func (w *World) Clear() {
	if w == nil {
		return
	}
	for _, e := range w.entities.all() {
		w.DestroyEntity(e)
	}
	w.events.flush()
}

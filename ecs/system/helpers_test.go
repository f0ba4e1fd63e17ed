package system

import (
	"math"
	"testing"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

const (
	tubeWidth  = 52.0
	tubeHeight = 320.0
)

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func addBird(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.BirdTagComponent.Kind(), &component.BirdTag{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	mustAdd(t, w, e, component.BoundsComponent.Kind(), &component.Bounds{Width: 34, Height: 24})
	mustAdd(t, w, e, component.ScoreComponent.Kind(), &component.Score{})
	return e
}

// addCamera places a 240x400 camera whose left edge is at left.
func addCamera(t *testing.T, w *ecs.World, left float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
	mustAdd(t, w, e, component.CameraComponent.Kind(), &component.Camera{OffsetX: 80, ViewportWidth: 240, ViewportHeight: 400})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: left + 120, Y: 200})
	return e
}

func setCameraLeft(t *testing.T, w *ecs.World, cam ecs.Entity, left float64) {
	t.Helper()
	tr, ok := ecs.Get(w, cam, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("camera has no transform")
	}
	tr.X = left + 120
}

func addTube(t *testing.T, w *ecs.World, index int, x, topY, width, spacing float64) ecs.Entity {
	t.Helper()
	o := &component.Obstacle{Index: index, Width: width, Height: tubeHeight, Spacing: spacing, Gap: 100}
	tr := &component.Transform{}
	o.Place(tr, x, topY)

	e := w.CreateEntity()
	mustAdd(t, w, e, component.ObstacleComponent.Kind(), o)
	mustAdd(t, w, e, component.TransformComponent.Kind(), tr)
	return e
}

func addGround(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.GroundTileComponent.Kind(), &component.GroundTile{Width: width, Height: height})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	return e
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}

func eventsOf(events []ecs.Event, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, ev := range events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

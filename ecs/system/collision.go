package system

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

// HitCause tells what ended the session in an EventHit.
type HitCause string

const (
	HitTube   HitCause = "tube"
	HitGround HitCause = "ground"
)

// CollisionSystem raises at most one EventHit per frame: when the bird's box
// overlaps either tube of a pair, or when the bird is at or below the top of
// the ground.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Overlaps reports whether two boxes share interior area. Boxes that only
// touch along an edge do not overlap.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	bird, ok := w.First(component.BirdTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, bird, component.TransformComponent.Kind())
	if !ok {
		return
	}
	bounds, ok := ecs.Get(w, bird, component.BoundsComponent.Kind())
	if !ok {
		return
	}
	box := bounds.BB(t)

	if cause, hit := s.check(w, box, t.Y); hit {
		w.Events().Push(ecs.Event{Type: ecs.EventHit, Entity: bird, Data: cause})
	}
}

func (s *CollisionSystem) check(w *ecs.World, box cp.BB, birdY float64) (HitCause, bool) {
	for _, e := range w.Query(component.ObstacleComponent.Kind(), component.TransformComponent.Kind()) {
		o, _ := ecs.Get(w, e, component.ObstacleComponent.Kind())
		ot, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if Overlaps(box, o.TopBB(ot.X)) || Overlaps(box, o.BottomBB(ot.X)) {
			return HitTube, true
		}
	}

	if ground, ok := GroundLevel(w); ok && birdY <= ground {
		return HitGround, true
	}
	return "", false
}

// GroundLevel returns the y of the top of the ground: tile height plus the
// tile's vertical offset.
func GroundLevel(w *ecs.World) (float64, bool) {
	tile, ok := w.First(component.GroundTileComponent.Kind())
	if !ok {
		return 0, false
	}
	g, ok := ecs.Get(w, tile, component.GroundTileComponent.Kind())
	if !ok {
		return 0, false
	}
	t, ok := ecs.Get(w, tile, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}
	return t.Y + g.Height, true
}

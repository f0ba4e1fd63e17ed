package entity

import (
	"fmt"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/render"
)

// Playfield holds the handles of a freshly built session.
type Playfield struct {
	Background ecs.Entity
	Bird       ecs.Entity
	Camera     ecs.Entity
	Ground     [2]ecs.Entity
	Tubes      []ecs.Entity
}

// BuildPlayfield populates w with everything a play session needs.
func BuildPlayfield(w *ecs.World, spec *prefabs.GameSpec, textures *render.Textures, topY func() float64) (*Playfield, error) {
	var (
		p   Playfield
		err error
	)
	if p.Background, err = NewBackground(w, &spec.Background, textures); err != nil {
		return nil, err
	}
	if p.Bird, err = NewBird(w, &spec.Bird, textures); err != nil {
		return nil, err
	}
	if p.Camera, err = NewCamera(w, &spec.Camera); err != nil {
		return nil, err
	}
	// The first tile starts at the camera's initial left edge.
	if p.Ground, err = NewGround(w, &spec.Ground, textures, 0); err != nil {
		return nil, err
	}
	if p.Tubes, err = NewTubes(w, &spec.Tube, textures, topY); err != nil {
		return nil, err
	}
	if len(p.Tubes) != spec.Tube.Count {
		return nil, fmt.Errorf("playfield: built %d tubes, want %d", len(p.Tubes), spec.Tube.Count)
	}
	return &p, nil
}

package entity

import (
	"fmt"

	"github.com/jakecoffman/cp/v2"
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/render"
)

func NewBird(w *ecs.World, spec *prefabs.BirdSpec, textures *render.Textures) (ecs.Entity, error) {
	bird := w.CreateEntity()
	if err := ecs.Add(w, bird, component.BirdTagComponent.Kind(), &component.BirdTag{}); err != nil {
		return 0, fmt.Errorf("bird: add bird tag: %w", err)
	}
	if err := ecs.Add(w, bird, component.TransformComponent.Kind(), &component.Transform{
		X: spec.Transform.X,
		Y: spec.Transform.Y,
	}); err != nil {
		return 0, fmt.Errorf("bird: add transform: %w", err)
	}
	if err := ecs.Add(w, bird, component.VelocityComponent.Kind(), &component.Velocity{Vector: cp.Vector{}}); err != nil {
		return 0, fmt.Errorf("bird: add velocity: %w", err)
	}
	if err := ecs.Add(w, bird, component.GravityComponent.Kind(), &component.Gravity{Y: spec.Gravity}); err != nil {
		return 0, fmt.Errorf("bird: add gravity: %w", err)
	}
	if err := ecs.Add(w, bird, component.MovementComponent.Kind(), &component.Movement{SpeedX: spec.MoveSpeed}); err != nil {
		return 0, fmt.Errorf("bird: add movement: %w", err)
	}
	if err := ecs.Add(w, bird, component.FlapComponent.Kind(), &component.Flap{Impulse: spec.JumpVelocity}); err != nil {
		return 0, fmt.Errorf("bird: add flap: %w", err)
	}
	if err := ecs.Add(w, bird, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("bird: add input: %w", err)
	}
	if err := ecs.Add(w, bird, component.ScoreComponent.Kind(), &component.Score{}); err != nil {
		return 0, fmt.Errorf("bird: add score: %w", err)
	}

	// Collider defaults to the sprite size.
	width, height := spec.Collider.Width, spec.Collider.Height
	if width <= 0 {
		width = float64(spec.Sprite.Width)
	}
	if height <= 0 {
		height = float64(spec.Sprite.Height)
	}
	if err := ecs.Add(w, bird, component.BoundsComponent.Kind(), &component.Bounds{
		Width:   width,
		Height:  height,
		OffsetX: spec.Collider.OffsetX,
		OffsetY: spec.Collider.OffsetY,
	}); err != nil {
		return 0, fmt.Errorf("bird: add bounds: %w", err)
	}

	if err := ecs.Add(w, bird, component.SpriteComponent.Kind(), &component.Sprite{Texture: loadTexture(textures, spec.Sprite)}); err != nil {
		return 0, fmt.Errorf("bird: add sprite: %w", err)
	}
	if err := ecs.Add(w, bird, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("bird: add render layer: %w", err)
	}
	return bird, nil
}

package entity

import (
	"fmt"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/render"
)

// NewGround creates two adjacent ground tiles, the first starting at left.
func NewGround(w *ecs.World, spec *prefabs.GroundSpec, textures *render.Textures, left float64) ([2]ecs.Entity, error) {
	var tiles [2]ecs.Entity
	tex := loadTexture(textures, spec.Sprite)
	width := float64(spec.Sprite.Width)

	for i := range tiles {
		tile := w.CreateEntity()
		if err := ecs.Add(w, tile, component.TransformComponent.Kind(), &component.Transform{
			X: left + float64(i)*width,
			Y: spec.OffsetY,
		}); err != nil {
			return tiles, fmt.Errorf("ground: add transform: %w", err)
		}
		if err := ecs.Add(w, tile, component.GroundTileComponent.Kind(), &component.GroundTile{
			Width:  width,
			Height: float64(spec.Sprite.Height),
		}); err != nil {
			return tiles, fmt.Errorf("ground: add tile: %w", err)
		}
		if err := ecs.Add(w, tile, component.SpriteComponent.Kind(), &component.Sprite{Texture: tex}); err != nil {
			return tiles, fmt.Errorf("ground: add sprite: %w", err)
		}
		if err := ecs.Add(w, tile, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
			return tiles, fmt.Errorf("ground: add render layer: %w", err)
		}
		tiles[i] = tile
	}
	return tiles, nil
}

package entity

import (
	"fmt"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/render"
)

func NewBackground(w *ecs.World, spec *prefabs.BackgroundSpec, textures *render.Textures) (ecs.Entity, error) {
	bg := w.CreateEntity()
	if err := ecs.Add(w, bg, component.BackgroundTagComponent.Kind(), &component.BackgroundTag{}); err != nil {
		return 0, fmt.Errorf("background: add tag: %w", err)
	}
	if err := ecs.Add(w, bg, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("background: add transform: %w", err)
	}
	if err := ecs.Add(w, bg, component.SpriteComponent.Kind(), &component.Sprite{Texture: loadTexture(textures, spec.Sprite)}); err != nil {
		return 0, fmt.Errorf("background: add sprite: %w", err)
	}
	if err := ecs.Add(w, bg, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("background: add render layer: %w", err)
	}
	return bg, nil
}

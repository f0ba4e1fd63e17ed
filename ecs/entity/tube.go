package entity

import (
	"fmt"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/render"
)

// NewTubes lays out spec.Count tube pairs starting at spec.FirstX, each
// width+spacing apart. topY is called once per pair.
func NewTubes(w *ecs.World, spec *prefabs.TubeSpec, textures *render.Textures, topY func() float64) ([]ecs.Entity, error) {
	top := loadTexture(textures, spec.Top)
	bottom := loadTexture(textures, spec.Bottom)
	width := float64(spec.Top.Width)

	tubes := make([]ecs.Entity, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		x := spec.FirstX + float64(i)*(width+spec.Spacing)
		obstacle := &component.Obstacle{
			Index:   i,
			Width:   width,
			Height:  float64(spec.Top.Height),
			Spacing: spec.Spacing,
			Gap:     spec.Gap,
			Top:     top,
			Bottom:  bottom,
		}
		transform := &component.Transform{}
		obstacle.Place(transform, x, topY())

		tube := w.CreateEntity()
		if err := ecs.Add(w, tube, component.TransformComponent.Kind(), transform); err != nil {
			return nil, fmt.Errorf("tube: add transform: %w", err)
		}
		if err := ecs.Add(w, tube, component.ObstacleComponent.Kind(), obstacle); err != nil {
			return nil, fmt.Errorf("tube: add obstacle: %w", err)
		}
		if err := ecs.Add(w, tube, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
			return nil, fmt.Errorf("tube: add render layer: %w", err)
		}
		tubes = append(tubes, tube)
	}
	return tubes, nil
}

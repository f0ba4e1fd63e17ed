package entity

import (
	"fmt"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/prefabs"
)

// NewCamera places the camera so its left edge sits at x = 0.
func NewCamera(w *ecs.World, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X: spec.ViewportWidth / 2,
		Y: spec.ViewportHeight / 2,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		OffsetX:        spec.OffsetX,
		ViewportWidth:  spec.ViewportWidth,
		ViewportHeight: spec.ViewportHeight,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}

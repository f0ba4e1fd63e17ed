package system

import (
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update keeps the camera centre OffsetX ahead of the bird and vertically
// centred on the viewport.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !w.IsAlive(cs.camEntity) {
		cs.camEntity, _ = w.First(component.CameraComponent.Kind())
	}
	if !w.IsAlive(cs.targetEntity) {
		cs.targetEntity, _ = w.First(component.BirdTagComponent.Kind())
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	camTransform.X = target.X + cam.OffsetX
	camTransform.Y = cam.ViewportHeight / 2
}

// cameraLeft returns the left edge of the first camera in w.
func cameraLeft(w *ecs.World) (float64, bool) {
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return 0, false
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return 0, false
	}
	t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}
	return cam.Left(t.X), true
}

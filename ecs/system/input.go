package system

import (
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
)

// InputSource is polled once per frame for the jump trigger.
type InputSource interface {
	JustTouched() bool
}

type InputSystem struct {
	src InputSource
}

func NewInputSystem(src InputSource) *InputSystem {
	return &InputSystem{src: src}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	pressed := i.src != nil && i.src.JustTouched()

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.FlapPressed = pressed
	})
}

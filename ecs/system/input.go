package system

import (
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// InputSystem advances every entity's input source once and copies its
// values into the Input component.
type InputSystem struct {
	failed map[ecs.Entity]bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{failed: make(map[ecs.Entity]bool)}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		in.MoveX = 0
		in.Jump = false
		if in.Source == nil {
			return
		}
		if err := in.Source.Update(); err != nil {
			if !i.failed[e] {
				log.Printf("input: entity=%v source error: %v", e, err)
				i.failed[e] = true
			}
			return
		}
		delete(i.failed, e)
		in.MoveX = in.Source.Horizontal()
		in.Jump = in.Source.JumpPressed()
	})
}

package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/movement"
)

const (
	EventFlipped ecs.EventKind = "flipped"
	EventJumped  ecs.EventKind = "jumped"
	EventLanded  ecs.EventKind = "landed"
)

// FlipData is the payload of EventFlipped.
type FlipData struct {
	Facing movement.Facing
}

// MovementSystem ticks every actor's controller with its current input.
type MovementSystem struct {
	dt float64
}

func NewMovementSystem(dt float64) *MovementSystem {
	return &MovementSystem{dt: dt}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	events := w.Events()

	ecs.ForEach2(w, component.MovementComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, mv *component.Movement, in *component.Input) {
		ctrl := mv.Controller
		if ctrl == nil {
			return
		}

		facing := ctrl.Facing()
		jumped := in.Jump && ctrl.HasLanded()

		ctrl.Drive(in, m.dt)

		if f := ctrl.Facing(); f != facing {
			events.Push(ecs.Event{Kind: EventFlipped, Entity: e, Data: FlipData{Facing: f}})
		}
		if jumped {
			events.Push(ecs.Event{Kind: EventJumped, Entity: e})
		}

		g, ok := ecs.Get(w, e, component.GroundedComponent.Kind())
		if !ok {
			return
		}
		onGround := ctrl.HasLanded()
		if onGround == g.OnGround {
			g.Ticks++
			return
		}
		if onGround {
			events.Push(ecs.Event{Kind: EventLanded, Entity: e})
		}
		g.OnGround = onGround
		g.Ticks = 0
	})
}

package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// Stepper is a physics space advanced by a fixed delta.
type Stepper interface {
	Step(dt float64)
}

// PhysicsSystem steps the space and copies body positions into transforms.
type PhysicsSystem struct {
	space Stepper
	dt    float64
}

func NewPhysicsSystem(space Stepper, dt float64) *PhysicsSystem {
	return &PhysicsSystem{space: space, dt: dt}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.space == nil || w == nil {
		return
	}

	ps.space.Step(ps.dt)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}

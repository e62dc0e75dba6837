package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/prefabs"
)

var (
	defaultActorFill    = color.NRGBA{R: 0x4f, G: 0xa3, B: 0xe0, A: 0xff}
	defaultActorOutline = color.NRGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff}
)

// BuildPlayer spawns an actor from spec at spec.Transform, driven by src.
// A nil src leaves the actor idle.
func BuildPlayer(w *ecs.World, space Space, spec *prefabs.ActorSpec, src input.Source) (ecs.Entity, error) {
	if w == nil || space == nil || spec == nil {
		return 0, fmt.Errorf("build player: world, space and spec are required")
	}

	reg, err := spec.Registry()
	if err != nil {
		return 0, fmt.Errorf("build player %q: %w", spec.Name, err)
	}
	cfg, err := spec.MovementConfig(reg)
	if err != nil {
		return 0, fmt.Errorf("build player %q: %w", spec.Name, err)
	}
	layers, err := spec.ColliderLayers(reg)
	if err != nil {
		return 0, fmt.Errorf("build player %q: %w", spec.Name, err)
	}

	body, err := space.AddActor(ActorShape{
		X:          spec.Transform.X,
		Y:          spec.Transform.Y,
		Width:      spec.Collider.Width,
		Height:     spec.Collider.Height,
		Friction:   spec.Collider.Friction,
		Elasticity: spec.Collider.Elasticity,
		Layers:     layers,
	})
	if err != nil {
		return 0, fmt.Errorf("build player %q: %w", spec.Name, err)
	}

	scaleY := spec.Transform.ScaleY
	if scaleY == 0 {
		scaleY = 1
	}
	transform := &component.Transform{
		X:     spec.Transform.X,
		Y:     spec.Transform.Y,
		Scale: component.Scale{X: spec.InitialScaleX(), Y: scaleY},
	}

	ctrl, err := movement.New(body, transform, cfg)
	if err != nil {
		space.RemoveActor(body)
		return 0, fmt.Errorf("build player %q: %w", spec.Name, err)
	}

	e := ecs.CreateEntity(w)
	adds := []func() error{
		func() error { return ecs.Add(w, e, component.TransformComponent.Kind(), transform) },
		func() error {
			return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
				Body:   body,
				Width:  spec.Collider.Width,
				Height: spec.Collider.Height,
			})
		},
		func() error {
			return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: layers})
		},
		func() error { return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Source: src}) },
		func() error {
			return ecs.Add(w, e, component.MovementComponent.Kind(), &component.Movement{Controller: ctrl})
		},
		func() error { return ecs.Add(w, e, component.GroundedComponent.Kind(), &component.Grounded{}) },
		func() error {
			return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
				Fill:    spec.Render.Fill.Or(defaultActorFill),
				Outline: spec.Render.Outline.Or(defaultActorOutline),
			})
		},
		func() error {
			return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{Name: spec.Name, Layers: reg})
		},
	}
	for _, add := range adds {
		if err := add(); err != nil {
			discardActor(w, space, e, body)
			return 0, fmt.Errorf("build player %q: %w", spec.Name, err)
		}
	}
	return e, nil
}

// RemovePlayer detaches e's body from space and destroys e.
func RemovePlayer(w *ecs.World, space Space, e ecs.Entity) {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil && space != nil {
		space.RemoveActor(pb.Body)
	}
	ecs.DestroyEntity(w, e)
}

// discardActor undoes a partial BuildPlayer. body need not be attached to e
// yet, so it is removed from space directly.
func discardActor(w *ecs.World, space Space, e ecs.Entity, body component.Body) {
	space.RemoveActor(body)
	ecs.DestroyEntity(w, e)
}

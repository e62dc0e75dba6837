package entity

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/physics/grid"
)

// ActorShape is the collider of a dynamic actor. X and Y are its center.
type ActorShape struct {
	X, Y       float64
	Width      float64
	Height     float64
	Friction   float64
	Elasticity float64
	Layers     movement.Layers
}

// Space is the physics backend entities are built into.
type Space interface {
	AddActor(shape ActorShape) (component.Body, error)
	RemoveActor(body component.Body)
	AddSolid(x, y, w, h float64, layers movement.Layers) error
	Step(dt float64)
}

// Backend names accepted by NewSpace.
const (
	BackendChipmunk = "cp"
	BackendGrid     = "grid"
)

var ErrUnknownBackend = errors.New("entity: unknown physics backend")

// NewSpace creates a physics space of the named backend sized for a
// width x height world.
func NewSpace(backend string, width, height, gravity float64) (Space, error) {
	switch backend {
	case BackendChipmunk, "":
		return &chipmunkSpace{space: physics.NewSpace(gravity)}, nil
	case BackendGrid:
		return &gridSpace{space: grid.NewSpace(width, height, gravity)}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownBackend, backend)
}

type chipmunkSpace struct {
	space *physics.Space
}

func (c *chipmunkSpace) AddActor(shape ActorShape) (component.Body, error) {
	b := c.space.AddBody(physics.BodySpec{
		X:          shape.X,
		Y:          shape.Y,
		Width:      shape.Width,
		Height:     shape.Height,
		Friction:   shape.Friction,
		Elasticity: shape.Elasticity,
		Layers:     shape.Layers,
	})
	if b == nil {
		return nil, fmt.Errorf("entity: chipmunk rejected actor %+v", shape)
	}
	return b, nil
}

func (c *chipmunkSpace) RemoveActor(body component.Body) {
	if b, ok := body.(*physics.Body); ok {
		c.space.RemoveBody(b)
	}
}

func (c *chipmunkSpace) AddSolid(x, y, w, h float64, layers movement.Layers) error {
	if c.space.AddGround(x, y, w, h, layers) == nil {
		return fmt.Errorf("entity: chipmunk rejected solid at (%v, %v)", x, y)
	}
	return nil
}

func (c *chipmunkSpace) Step(dt float64) { c.space.Step(dt) }

// CP exposes the Chipmunk space for debug drawing.
func (c *chipmunkSpace) CP() *cp.Space { return c.space.Space() }

type gridSpace struct {
	space *grid.Space
}

func (g *gridSpace) AddActor(shape ActorShape) (component.Body, error) {
	b := g.space.AddBody(shape.X, shape.Y, shape.Width, shape.Height)
	if b == nil {
		return nil, fmt.Errorf("entity: grid rejected actor %+v", shape)
	}
	return b, nil
}

func (g *gridSpace) RemoveActor(body component.Body) {
	if b, ok := body.(*grid.Body); ok {
		g.space.RemoveBody(b)
	}
}

func (g *gridSpace) AddSolid(x, y, w, h float64, layers movement.Layers) error {
	if g.space.AddSolid(x, y, w, h, layers) == nil {
		return fmt.Errorf("entity: grid rejected solid at (%v, %v)", x, y)
	}
	return nil
}

func (g *gridSpace) Step(dt float64) { g.space.Step(dt) }

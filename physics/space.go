// Package physics backs movement.Body with Chipmunk2D rigid bodies.
//
// World coordinates are y-up: positive vertical velocity moves a body up
// and gravity is normally negative.
package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/movement"
)

const (
	spaceIterations = 20
	groundFriction  = 0.8
)

// Space owns the Chipmunk space and every shape added through it.
type Space struct {
	space  *cp.Space
	bodies map[*Body]struct{}
}

// NewSpace creates a space with the given vertical gravity.
func NewSpace(gravity float64) *Space {
	space := cp.NewSpace()
	space.Iterations = spaceIterations
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &Space{
		space:  space,
		bodies: make(map[*Body]struct{}),
	}
}

// Space returns the underlying Chipmunk space.
func (s *Space) Space() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

// AddGround adds a static box whose bottom-left corner is (x, y). Bodies
// touching it see its layers through TouchingLayers.
func (s *Space) AddGround(x, y, w, h float64, layers movement.Layers) *cp.Shape {
	if s == nil || s.space == nil || w <= 0 || h <= 0 {
		return nil
	}
	bb := cp.BB{L: x, B: y, R: x + w, T: y + h}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	shape.SetFriction(groundFriction)
	shape.SetElasticity(0)
	shape.SetFilter(filterFor(layers))
	s.space.AddShape(shape)
	return shape
}

// Step advances the simulation by dt seconds.
func (s *Space) Step(dt float64) {
	if s == nil || s.space == nil || dt <= 0 {
		return
	}
	s.space.Step(dt)
}

func filterFor(layers movement.Layers) cp.ShapeFilter {
	categories := uint(layers)
	if categories == 0 {
		categories = 1
	}
	return cp.ShapeFilter{Group: 0, Categories: categories, Mask: ^uint(0)}
}

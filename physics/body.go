package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/movement"
)

// BodySpec describes a dynamic box body.
type BodySpec struct {
	// X, Y is the center of the box.
	X, Y       float64
	Width      float64
	Height     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Layers     movement.Layers
}

// Body is a dynamic Chipmunk body with a single box shape. It implements
// movement.Body.
type Body struct {
	space *Space
	body  *cp.Body
	shape *cp.Shape

	width, height  float64
	rotationLocked bool
	angularDamping float64
	gravityScale   float64
}

var _ movement.Body = (*Body)(nil)

// AddBody creates a dynamic body and adds it to the space.
func (s *Space) AddBody(spec BodySpec) *Body {
	if s == nil || s.space == nil {
		return nil
	}
	width, height := spec.Width, spec.Height
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}

	body := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})
	body.SetAngle(0)
	body.SetAngularVelocity(0)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(spec.Friction)
	shape.SetElasticity(spec.Elasticity)
	shape.SetFilter(filterFor(spec.Layers))

	b := &Body{
		space:        s,
		body:         body,
		shape:        shape,
		width:        width,
		height:       height,
		gravityScale: 1,
	}
	body.UserData = b
	body.SetVelocityUpdateFunc(b.updateVelocity)

	s.space.AddBody(body)
	s.space.AddShape(shape)
	s.bodies[b] = struct{}{}
	return b
}

// RemoveBody detaches b from the space.
func (s *Space) RemoveBody(b *Body) {
	if s == nil || s.space == nil || b == nil {
		return
	}
	if _, ok := s.bodies[b]; !ok {
		return
	}
	s.space.RemoveShape(b.shape)
	s.space.RemoveBody(b.body)
	delete(s.bodies, b)
}

func (b *Body) updateVelocity(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
	cp.BodyUpdateVelocity(body, gravity.Mult(b.gravityScale), damping, dt)
	if b.angularDamping > 0 {
		body.SetAngularVelocity(body.AngularVelocity() * math.Exp(-b.angularDamping*dt))
	}
}

func (b *Body) Velocity() cp.Vector {
	return b.body.Velocity()
}

func (b *Body) SetVelocity(x, y float64) {
	b.body.SetVelocity(x, y)
}

func (b *Body) SetMass(mass float64) {
	if mass <= 0 || math.IsInf(mass, 0) {
		return
	}
	b.body.SetMass(mass)
	if !b.rotationLocked {
		b.body.SetMoment(cp.MomentForBox(mass, b.width, b.height))
	}
}

// LockRotation freezes the body's rotation by giving it an infinite moment.
func (b *Body) LockRotation(locked bool) {
	b.rotationLocked = locked
	if locked {
		b.body.SetMoment(math.Inf(1))
		b.body.SetAngle(0)
		b.body.SetAngularVelocity(0)
		return
	}
	b.body.SetMoment(cp.MomentForBox(b.body.Mass(), b.width, b.height))
}

func (b *Body) SetAngularDamping(damping float64) {
	if damping < 0 {
		damping = 0
	}
	b.angularDamping = damping
}

// SetGravityScale multiplies the space gravity for this body only.
func (b *Body) SetGravityScale(scale float64) {
	b.gravityScale = scale
}

// TouchingLayers reports whether any current contact is with a shape whose
// categories intersect mask.
func (b *Body) TouchingLayers(mask movement.Layers) bool {
	if b == nil || b.body == nil || mask.Empty() {
		return false
	}
	touching := false
	b.body.EachArbiter(func(arb *cp.Arbiter) {
		if touching {
			return
		}
		other := otherShape(arb, b.body)
		if other == nil {
			return
		}
		if uint(mask)&other.Filter.Categories != 0 {
			touching = true
		}
	})
	return touching
}

func otherShape(arb *cp.Arbiter, self *cp.Body) *cp.Shape {
	a, c := arb.Shapes()
	if a != nil && a.Body() != self {
		return a
	}
	if c != nil && c.Body() != self {
		return c
	}
	return nil
}

func (b *Body) Position() cp.Vector {
	return b.body.Position()
}

func (b *Body) SetPosition(x, y float64) {
	b.body.SetPosition(cp.Vector{X: x, Y: y})
}

// Size returns the width and height of the body's box.
func (b *Body) Size() (float64, float64) {
	return b.width, b.height
}

func (b *Body) Mass() float64 {
	return b.body.Mass()
}

func (b *Body) RotationLocked() bool {
	return b.rotationLocked
}

func (b *Body) AngularDamping() float64 {
	return b.angularDamping
}

func (b *Body) GravityScale() float64 {
	return b.gravityScale
}

func (b *Body) Angle() float64 {
	return b.body.Angle()
}

// Layers returns the collision categories of the body's own shape.
func (b *Body) Layers() movement.Layers {
	return movement.Layers(b.shape.Filter.Categories)
}

// CP returns the underlying Chipmunk body.
func (b *Body) CP() *cp.Body {
	return b.body
}

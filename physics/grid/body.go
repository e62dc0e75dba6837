package grid

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/movement"
	"github.com/solarlune/resolv"
)

// Body is a kinematic box. It implements movement.Body.
type Body struct {
	space *Space
	obj   *resolv.Object

	vel            cp.Vector
	mass           float64
	rotationLocked bool
	angularDamping float64
	gravityScale   float64
}

var _ movement.Body = (*Body)(nil)

// AddBody adds a w x h box centered on (x, y), all in world units.
func (s *Space) AddBody(x, y, w, h float64) *Body {
	if s == nil || w <= 0 || h <= 0 {
		return nil
	}
	obj := resolv.NewObject((x-w/2)*PixelsPerUnit, s.toGridY(y-h/2, h), w*PixelsPerUnit, h*PixelsPerUnit, tagBody)
	b := &Body{
		space:        s,
		obj:          obj,
		mass:         1,
		gravityScale: 1,
	}
	obj.Data = b
	s.space.Add(obj)
	s.bodies = append(s.bodies, b)
	return b
}

func (b *Body) step(gravity, dt float64) {
	b.vel.Y += gravity * b.gravityScale * dt

	if dx := b.vel.X * dt * PixelsPerUnit; dx != 0 {
		if hits := b.space.overlapping(b.obj, dx, 0, 0); len(hits) > 0 {
			dx = clampX(b.obj, dx, hits)
			b.vel.X = 0
		}
		b.obj.X += dx
	}

	if dy := -b.vel.Y * dt * PixelsPerUnit; dy != 0 {
		if hits := b.space.overlapping(b.obj, 0, dy, 0); len(hits) > 0 {
			dy = clampY(b.obj, dy, hits)
			b.vel.Y = 0
		}
		b.obj.Y += dy
	}

	b.obj.Update()
}

func clampX(obj *resolv.Object, dx float64, hits []*resolv.Object) float64 {
	right := dx > 0
	for _, o := range hits {
		if right {
			dx = math.Min(dx, o.X-(obj.X+obj.W))
		} else {
			dx = math.Max(dx, o.X+o.W-obj.X)
		}
	}
	if (right && dx < 0) || (!right && dx > 0) {
		return 0
	}
	return dx
}

func clampY(obj *resolv.Object, dy float64, hits []*resolv.Object) float64 {
	down := dy > 0
	for _, o := range hits {
		if down {
			dy = math.Min(dy, o.Y-(obj.Y+obj.H))
		} else {
			dy = math.Max(dy, o.Y+o.H-obj.Y)
		}
	}
	if (down && dy < 0) || (!down && dy > 0) {
		return 0
	}
	return dy
}

func (b *Body) Velocity() cp.Vector {
	return b.vel
}

func (b *Body) SetVelocity(x, y float64) {
	b.vel = cp.Vector{X: x, Y: y}
}

// SetMass is recorded only; the grid backend does not resolve forces.
func (b *Body) SetMass(mass float64) {
	if mass > 0 {
		b.mass = mass
	}
}

func (b *Body) LockRotation(locked bool) {
	b.rotationLocked = locked
}

func (b *Body) SetAngularDamping(damping float64) {
	b.angularDamping = damping
}

func (b *Body) SetGravityScale(scale float64) {
	b.gravityScale = scale
}

// TouchingLayers reports whether a solid in mask lies within contactProbe of
// any edge of the body.
func (b *Body) TouchingLayers(mask movement.Layers) bool {
	if b == nil || mask.Empty() {
		return false
	}
	probes := [4][2]float64{
		{0, contactProbe},
		{0, -contactProbe},
		{contactProbe, 0},
		{-contactProbe, 0},
	}
	for _, p := range probes {
		if len(b.space.overlapping(b.obj, p[0], p[1], mask)) > 0 {
			return true
		}
	}
	return false
}

// Position returns the center of the body in y-up world units.
func (b *Body) Position() cp.Vector {
	return cp.Vector{
		X: (b.obj.X + b.obj.W/2) / PixelsPerUnit,
		Y: b.space.height - (b.obj.Y+b.obj.H/2)/PixelsPerUnit,
	}
}

// Size returns the body's width and height in world units.
func (b *Body) Size() (float64, float64) {
	return b.obj.W / PixelsPerUnit, b.obj.H / PixelsPerUnit
}

func (b *Body) Mass() float64 { return b.mass }
func (b *Body) RotationLocked() bool { return b.rotationLocked }
func (b *Body) AngularDamping() float64 { return b.angularDamping }
func (b *Body) GravityScale() float64 { return b.gravityScale }

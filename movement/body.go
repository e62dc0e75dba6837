package movement

import "github.com/jakecoffman/cp"

// Body is the physics collaborator driven by a Controller. The controller
// only assigns velocity; integration and collision response stay with the
// implementation.
type Body interface {
	Velocity() cp.Vector
	SetVelocity(x, y float64)

	SetMass(mass float64)
	LockRotation(locked bool)
	SetAngularDamping(damping float64)
	SetGravityScale(scale float64)

	// TouchingLayers reports whether the body is currently in contact with
	// any collider whose category intersects mask.
	TouchingLayers(mask Layers) bool
}

// Orientation is the transform the actor is drawn with. Only the horizontal
// scale is read and written.
type Orientation interface {
	ScaleX() float64
	SetScaleX(x float64)
}

// InputSource provides per-tick movement intent.
type InputSource interface {
	// Horizontal is the horizontal axis, nominally in [-1, 1].
	Horizontal() float64
	// JumpPressed is true only on the tick the jump action began.
	JumpPressed() bool
}

// Package movement turns horizontal and jump intent into velocity for a
// side-scrolling actor and keeps its facing in step with the direction of
// travel.
package movement

import (
	"errors"
	"fmt"
)

var (
	ErrNilBody        = errors.New("movement: physics body is nil")
	ErrNilOrientation = errors.New("movement: orientation is nil")
	ErrNoGroundMask   = errors.New("movement: ground mask is empty")
)

// Facing is the logical horizontal orientation of an actor.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

func (f Facing) String() string {
	if f == FacingRight {
		return "right"
	}
	return "left"
}

// Controller computes the desired velocity of one actor each tick. It holds
// non-owning references to its body and orientation and is not safe for
// concurrent use.
type Controller struct {
	body   Body
	orient Orientation

	movementSpeed float64
	jumpImpulse   float64
	groundMask    Layers

	facingRight bool
}

// New configures body for player control and returns a controller whose
// initial facing is the sign of orient's horizontal scale.
func New(body Body, orient Orientation, cfg Config) (*Controller, error) {
	if orient == nil {
		return nil, fmt.Errorf("new controller: %w", ErrNilOrientation)
	}
	return NewWithFacing(body, orient, orient.ScaleX(), cfg)
}

// NewWithFacing is New with an explicit initial orientation sign; positive
// faces right.
func NewWithFacing(body Body, orient Orientation, sign float64, cfg Config) (*Controller, error) {
	if body == nil {
		return nil, fmt.Errorf("new controller: %w", ErrNilBody)
	}
	if orient == nil {
		return nil, fmt.Errorf("new controller: %w", ErrNilOrientation)
	}
	if cfg.GroundMask.Empty() {
		return nil, fmt.Errorf("new controller: %w", ErrNoGroundMask)
	}

	body.SetMass(bodyMass)
	body.LockRotation(true)
	body.SetAngularDamping(bodyAngularDamping)
	body.SetGravityScale(cfg.GravityScale)

	return &Controller{
		body:          body,
		orient:        orient,
		movementSpeed: cfg.MovementSpeed,
		jumpImpulse:   cfg.JumpImpulse,
		groundMask:    cfg.GroundMask,
		facingRight:   sign > 0,
	}, nil
}

// Tick applies one step of input. Both components are scaled by dt and
// assigned directly as velocity, so the displacement per tick stays
// constant only when the body integrates that velocity for a single tick.
func (c *Controller) Tick(horizontal float64, jumpPressed bool, dt float64) {
	vx := horizontal * c.movementSpeed * dt

	vy := c.body.Velocity().Y
	if jumpPressed && c.HasLanded() {
		vy = c.jumpImpulse * dt
	}

	c.body.SetVelocity(vx, vy)

	if (vx > 0 && !c.facingRight) || (vx < 0 && c.facingRight) {
		c.Flip()
	}
}

// Drive polls src and ticks the controller with its values.
func (c *Controller) Drive(src InputSource, dt float64) {
	if src == nil {
		c.Tick(0, false, dt)
		return
	}
	c.Tick(src.Horizontal(), src.JumpPressed(), dt)
}

// Flip mirrors the actor horizontally. Two flips restore the original state.
func (c *Controller) Flip() {
	c.orient.SetScaleX(-c.orient.ScaleX())
	c.facingRight = !c.facingRight
}

// HasLanded reports whether the body touches a ground layer right now.
func (c *Controller) HasLanded() bool {
	return c.body.TouchingLayers(c.groundMask)
}

func (c *Controller) FacingRight() bool {
	return c.facingRight
}

func (c *Controller) Facing() Facing {
	if c.facingRight {
		return FacingRight
	}
	return FacingLeft
}

func (c *Controller) MovementSpeed() float64 { return c.movementSpeed }
func (c *Controller) JumpImpulse() float64 { return c.jumpImpulse }
func (c *Controller) GroundMask() Layers { return c.groundMask }

// Body returns the physics body the controller drives.
func (c *Controller) Body() Body { return c.body }

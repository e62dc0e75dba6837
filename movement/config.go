package movement

const (
	DefaultMovementSpeed = 100.0
	DefaultJumpImpulse   = 500.0

	// DefaultGravityScale makes the actor fall faster than a neutral 1.0.
	DefaultGravityScale = 10.0

	bodyMass           = 1.0
	bodyAngularDamping = 0.0
)

// Config is fixed when a Controller is built and never changes afterwards.
// New uses it as given: a zero speed or impulse disables that axis. Start
// from DefaultConfig for the stock values.
type Config struct {
	// MovementSpeed scales horizontal input, in units per second.
	MovementSpeed float64
	// JumpImpulse is the vertical speed set on a grounded jump.
	JumpImpulse float64
	// GroundMask selects the layers that count as ground. Required.
	GroundMask Layers
	// GravityScale is applied to the body once at construction.
	GravityScale float64
}

// DefaultConfig returns the default speeds for the given ground mask.
func DefaultConfig(ground Layers) Config {
	return Config{
		MovementSpeed: DefaultMovementSpeed,
		JumpImpulse:   DefaultJumpImpulse,
		GroundMask:    ground,
		GravityScale:  DefaultGravityScale,
	}
}

package component

import "github.com/milk9111/platformer/movement"

// Movement owns an actor's controller. The controller is replaced, never
// reconfigured, when the actor's prefab reloads.
type Movement struct {
	Controller *movement.Controller
}

var MovementComponent = NewComponent[Movement]()

// Grounded mirrors the controller's ground query after the last tick.
type Grounded struct {
	OnGround bool
	// Ticks counts consecutive ticks in the current state.
	Ticks int
}

var GroundedComponent = NewComponent[Grounded]()

package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/movement"
)

// Body is a simulated body from either physics backend.
type Body interface {
	movement.Body
	Position() cp.Vector
}

// PhysicsBody links an entity to its simulated body.
type PhysicsBody struct {
	Body   Body
	Width  float64
	Height float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Solid is a static level rectangle. X and Y are its bottom-left corner.
type Solid struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var SolidComponent = NewComponent[Solid]()

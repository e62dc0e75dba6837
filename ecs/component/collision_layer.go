package component

import "github.com/milk9111/platformer/movement"

// CollisionLayer is the set of layers an entity's collider belongs to.
type CollisionLayer struct {
	Category movement.Layers
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()

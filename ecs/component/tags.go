package component

import "github.com/milk9111/platformer/movement"

// PlayerTag marks an actor built from a prefab. Layers is the registry the
// actor's masks were resolved with.
type PlayerTag struct {
	Name   string
	Layers *movement.LayerRegistry
}

var PlayerTagComponent = NewComponent[PlayerTag]()

package component

import "image/color"

// Sprite draws an entity's collider box.
type Sprite struct {
	Fill    color.Color
	Outline color.Color
}

var SpriteComponent = NewComponent[Sprite]()

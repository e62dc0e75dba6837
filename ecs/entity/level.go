package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/movement"
)

var layerColors = map[string]color.NRGBA{
	"ground":   {R: 0x6b, G: 0x4f, B: 0x34, A: 0xff},
	"platform": {R: 0x4c, G: 0x8a, B: 0x3f, A: 0xff},
	"hazard":   {R: 0xc0, G: 0x39, B: 0x2b, A: 0xff},
}

var defaultSolidColor = color.NRGBA{R: 0x55, G: 0x55, B: 0x5f, A: 0xff}

// BuildLevel adds every ground rectangle of lvl to space and creates one
// entity per rectangle for rendering.
func BuildLevel(w *ecs.World, space Space, lvl *levels.Level, reg *movement.LayerRegistry) error {
	if w == nil || space == nil || lvl == nil {
		return fmt.Errorf("build level: world, space and level are required")
	}

	for i, r := range lvl.Ground {
		layers, err := levels.RectLayers(reg, r)
		if err != nil {
			return fmt.Errorf("build level %q: ground %d: %w", lvl.Name, i, err)
		}
		if err := space.AddSolid(r.X, r.Y, r.W, r.H, layers); err != nil {
			return fmt.Errorf("build level %q: ground %d: %w", lvl.Name, i, err)
		}

		fill := defaultSolidColor
		if names := reg.Names(layers); len(names) > 0 {
			if c, ok := layerColors[names[0]]; ok {
				fill = c
			}
		}

		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.SolidComponent.Kind(), &component.Solid{X: r.X, Y: r.Y, Width: r.W, Height: r.H}); err != nil {
			return fmt.Errorf("build level %q: %w", lvl.Name, err)
		}
		if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: layers}); err != nil {
			return fmt.Errorf("build level %q: %w", lvl.Name, err)
		}
		if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Fill: fill}); err != nil {
			return fmt.Errorf("build level %q: %w", lvl.Name, err)
		}
	}
	return nil
}

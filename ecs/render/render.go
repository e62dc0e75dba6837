// Package render draws the ECS world with ebiten.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

var (
	background    = color.NRGBA{R: 0x1d, G: 0x20, B: 0x2b, A: 0xff}
	groundedColor = color.NRGBA{R: 0x7d, G: 0xe0, B: 0x6b, A: 0xff}
	airborneColor = color.NRGBA{R: 0xe0, G: 0x6b, B: 0x6b, A: 0xff}
)

// RenderSystem draws solids, then actors as boxes with a marker on the side
// they face.
type RenderSystem struct {
	View  *common.View
	Debug bool
}

func NewRenderSystem(view *common.View) *RenderSystem {
	if view == nil {
		view = common.NewView()
	}
	return &RenderSystem{View: view}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(background)

	ecs.ForEach2(w, component.SolidComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, s *component.Solid, sp *component.Sprite) {
		x, y, sw, sh := r.View.RectToScreen(s.X, s.Y, s.Width, s.Height)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(sw), float32(sh), sp.Fill, false)
	})

	ecs.ForEach3(w, component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, pb *component.PhysicsBody, sp *component.Sprite) {
		x, y, sw, sh := r.View.RectToScreen(t.X-pb.Width/2, t.Y-pb.Height/2, pb.Width, pb.Height)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(sw), float32(sh), sp.Fill, false)
		outline := sp.Outline
		if outline == nil {
			outline = color.White
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(sw), float32(sh), 2, outline, false)

		// eye on the facing side
		eye := float32(sw / 4)
		ex := float32(x) + float32(sw) - eye*1.5
		if t.ScaleX() < 0 {
			ex = float32(x) + eye*0.5
		}
		vector.DrawFilledRect(screen, ex, float32(y)+eye, eye, eye, outline, false)

		if !r.Debug {
			return
		}
		c := airborneColor
		if g, ok := ecs.Get(w, e, component.GroundedComponent.Kind()); ok && g.OnGround {
			c = groundedColor
		}
		vector.StrokeLine(screen, float32(x), float32(y+sh)+2, float32(x+sw), float32(y+sh)+2, 3, c, false)
	})
}

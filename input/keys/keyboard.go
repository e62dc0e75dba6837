// Package keys reads live keyboard and gamepad input from ebiten.
package keys

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/input"
)

const stickDeadzone = 0.2

// Keyboard reads A/D or the arrow keys and Space, plus the left stick and
// bottom face button of the first gamepad.
type Keyboard struct {
	moveX       float64
	jumpPressed bool
}

var _ input.Source = (*Keyboard)(nil)

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Update polls ebiten. Call it once per tick from the game's Update.
func (k *Keyboard) Update() error {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	k.moveX = moveX
	k.jumpPressed = jumpPressed
	return nil
}

func (k *Keyboard) Horizontal() float64 { return k.moveX }
func (k *Keyboard) JumpPressed() bool { return k.jumpPressed }

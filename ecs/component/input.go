package component

import (
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/movement"
)

// Input holds the source driving an entity and the values it produced for
// the current tick. It is the movement.InputSource the controller reads.
type Input struct {
	Source input.Source
	MoveX  float64
	Jump   bool
}

var _ movement.InputSource = (*Input)(nil)

func (i *Input) Horizontal() float64 { return i.MoveX }
func (i *Input) JumpPressed() bool { return i.Jump }

var InputComponent = NewComponent[Input]()

// Package input provides movement.InputSource implementations driven by
// fixed frame sequences or tengo scripts. Live devices live in input/keys.
package input

import (
	"fmt"

	"github.com/milk9111/platformer/movement"
)

// Source is an InputSource that is advanced exactly once per tick, before
// the controller reads it.
type Source interface {
	movement.InputSource
	Update() error
}

// Frame is the input state of one tick. Jump is the held state; sources
// turn it into a pressed edge.
type Frame struct {
	Horizontal float64 `yaml:"horizontal"`
	Jump       bool    `yaml:"jump"`
}

func (f Frame) String() string {
	return fmt.Sprintf("h=%.2f jump=%t", f.Horizontal, f.Jump)
}

// Snapshot is the value a source produced for a tick.
type Snapshot struct {
	Horizontal  float64
	JumpPressed bool
}

// Take records the current values of src.
func Take(src movement.InputSource) Snapshot {
	if src == nil {
		return Snapshot{}
	}
	return Snapshot{Horizontal: src.Horizontal(), JumpPressed: src.JumpPressed()}
}

// edge turns a held button into a pressed-this-tick signal.
type edge struct {
	prev bool
}

func (e *edge) update(held bool) bool {
	pressed := held && !e.prev
	e.prev = held
	return pressed
}

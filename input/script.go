package input

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var ErrScriptOutput = errors.New("input: script produced a non-numeric horizontal value")

// Script is a tengo program evaluated once per Update. The globals tick (int)
// and dt (float) are set before every run; the program assigns horizontal
// (float) and jump (bool, held state) with plain assignment. Both outputs
// reset to zero values at the start of each run.
//
//	horizontal = tick < 60 ? 1.0 : 0.0
//	jump = tick >= 30 && tick < 35
type Script struct {
	name     string
	compiled *tengo.Compiled
	dt       float64

	tick       int
	horizontal float64
	pressed    bool
	jump       edge
}

// NewScript compiles src. dt is exposed to the script unchanged every tick.
func NewScript(name string, src []byte, dt float64) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("dt", dt)
	_ = script.Add("horizontal", 0.0)
	_ = script.Add("jump", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile script %q: %w", name, err)
	}
	return &Script{name: name, compiled: compiled, dt: dt}, nil
}

// Update runs the program for the next tick.
func (s *Script) Update() error {
	if s == nil || s.compiled == nil {
		return fmt.Errorf("input: nil script")
	}
	tick := s.tick
	s.tick++

	for name, v := range map[string]any{"tick": tick, "dt": s.dt, "horizontal": 0.0, "jump": false} {
		if err := s.compiled.Set(name, v); err != nil {
			return fmt.Errorf("input: script %q set %s: %w", s.name, name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("input: script %q tick %d: %w", s.name, tick, err)
	}

	h := s.compiled.Get("horizontal")
	switch h.ValueType() {
	case "int", "float":
	default:
		return fmt.Errorf("%w: script %q tick %d got %s", ErrScriptOutput, s.name, tick, h.ValueType())
	}
	s.horizontal = h.Float()
	s.pressed = s.jump.update(s.compiled.Get("jump").Bool())
	return nil
}

// Tick is the number of completed Update calls.
func (s *Script) Tick() int { return s.tick }

func (s *Script) Horizontal() float64 { return s.horizontal }
func (s *Script) JumpPressed() bool { return s.pressed }

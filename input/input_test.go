package input

import (
	"errors"
	"testing"

	"github.com/milk9111/platformer/movement"
)

var (
	_ movement.InputSource = (*Sequence)(nil)
	_ Source               = (*Script)(nil)
)

func TestSequenceJumpEdges(t *testing.T) {
	frames := []Frame{
		{Horizontal: 1},
		{Horizontal: 1, Jump: true},
		{Horizontal: 1, Jump: true},
		{Horizontal: -1},
		{Jump: true},
	}
	want := []Snapshot{
		{Horizontal: 1},
		{Horizontal: 1, JumpPressed: true},
		{Horizontal: 1},
		{Horizontal: -1},
		{JumpPressed: true},
		{},
	}

	seq := NewSequence(frames, false)
	for i, w := range want {
		if err := seq.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got := Take(seq); got != w {
			t.Fatalf("tick %d: got %+v, want %+v", i, got, w)
		}
	}
	if !seq.Done() {
		t.Fatalf("expected sequence to be done")
	}
}

func TestSequenceLoop(t *testing.T) {
	seq := NewSequence([]Frame{{Horizontal: 1}, {Horizontal: -1}}, true)
	var got []float64
	for i := 0; i < 5; i++ {
		_ = seq.Update()
		got = append(got, seq.Horizontal())
	}
	want := []float64{1, -1, 1, -1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d: h = %v, want %v", i, got[i], want[i])
		}
	}
	if seq.Done() {
		t.Fatalf("looping sequence is never done")
	}
}

func TestRepeat(t *testing.T) {
	frames := Repeat(Frame{Horizontal: 0.5}, 3)
	if len(frames) != 3 || frames[2].Horizontal != 0.5 {
		t.Fatalf("Repeat = %v", frames)
	}
}

func TestTakeNil(t *testing.T) {
	if got := Take(nil); got != (Snapshot{}) {
		t.Fatalf("Take(nil) = %+v", got)
	}
}

func TestScript(t *testing.T) {
	src := []byte(`
horizontal = tick < 2 ? 1 : -0.5
jump = tick == 1 || tick == 2 || tick == 4
`)
	s, err := NewScript("test", src, 1.0/60.0)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}

	want := []Snapshot{
		{Horizontal: 1},
		{Horizontal: 1, JumpPressed: true},
		{Horizontal: -0.5},
		{Horizontal: -0.5},
		{Horizontal: -0.5, JumpPressed: true},
	}
	for i, w := range want {
		if err := s.Update(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if got := Take(s); got != w {
			t.Fatalf("tick %d: got %+v, want %+v", i, got, w)
		}
	}
	if s.Tick() != len(want) {
		t.Fatalf("Tick = %d, want %d", s.Tick(), len(want))
	}
}

func TestScriptOutputsReset(t *testing.T) {
	s, err := NewScript("reset", []byte(`if tick == 0 { horizontal = 1.0 }`), 0.1)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	_ = s.Update()
	if s.Horizontal() != 1 {
		t.Fatalf("tick 0: h = %v, want 1", s.Horizontal())
	}
	_ = s.Update()
	if s.Horizontal() != 0 {
		t.Fatalf("tick 1: h = %v, want 0", s.Horizontal())
	}
}

func TestScriptSeesDeltaAndStdlib(t *testing.T) {
	src := []byte(`
math := import("math")
horizontal = math.abs(dt * -10.0)
`)
	s, err := NewScript("dt", src, 0.5)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.Horizontal() != 5 {
		t.Fatalf("h = %v, want 5", s.Horizontal())
	}
}

func TestScriptErrors(t *testing.T) {
	if _, err := NewScript("bad", []byte(`horizontal = (`), 0.1); err == nil {
		t.Fatalf("expected compile error")
	}

	s, err := NewScript("div", []byte(`zero := 0
horizontal = 1 / zero`), 0.1)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if err := s.Update(); err == nil {
		t.Fatalf("expected runtime error")
	}

	s, err = NewScript("str", []byte(`horizontal = "left"`), 0.1)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if err := s.Update(); !errors.Is(err, ErrScriptOutput) {
		t.Fatalf("err = %v, want ErrScriptOutput", err)
	}
}

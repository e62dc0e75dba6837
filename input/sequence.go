package input

// Sequence replays a fixed list of frames, one per Update. After the last
// frame it either loops or reports no input.
type Sequence struct {
	frames []Frame
	loop   bool

	next    int
	current Frame
	pressed bool
	jump    edge
}

func NewSequence(frames []Frame, loop bool) *Sequence {
	return &Sequence{frames: append([]Frame(nil), frames...), loop: loop}
}

// Repeat returns n copies of f, for building sequences.
func Repeat(f Frame, n int) []Frame {
	out := make([]Frame, n)
	for i := range out {
		out[i] = f
	}
	return out
}

func (s *Sequence) Update() error {
	if s.next >= len(s.frames) && s.loop && len(s.frames) > 0 {
		s.next = 0
	}
	if s.next < len(s.frames) {
		s.current = s.frames[s.next]
		s.next++
	} else {
		s.current = Frame{}
	}
	s.pressed = s.jump.update(s.current.Jump)
	return nil
}

// Done reports whether a non-looping sequence has played every frame.
func (s *Sequence) Done() bool {
	return !s.loop && s.next >= len(s.frames)
}

func (s *Sequence) Horizontal() float64 { return s.current.Horizontal }
func (s *Sequence) JumpPressed() bool { return s.pressed }

package grid

import (
	"math"
	"testing"

	"github.com/milk9111/platformer/movement"
)

const dt = 1.0 / 60.0

var (
	groundLayer = movement.LayerBit(1)
	wallLayer   = movement.LayerBit(0)
)

type scale struct{ x float64 }

func (s *scale) ScaleX() float64 { return s.x }
func (s *scale) SetScaleX(x float64) { s.x = x }

func newScene(t *testing.T) (*Space, *Body) {
	t.Helper()
	s := NewSpace(20, 10, -9.81)
	if s.AddSolid(0, 0, 20, 1, groundLayer) == nil {
		t.Fatalf("AddSolid returned nil")
	}
	b := s.AddBody(5, 1.5, 1, 1)
	if b == nil {
		t.Fatalf("AddBody returned nil")
	}
	return s, b
}

func TestGridBodyRestsOnGround(t *testing.T) {
	s, b := newScene(t)
	for i := 0; i < 30; i++ {
		s.Step(dt)
	}
	if got := b.Position().Y; math.Abs(got-1.5) > 1e-9 {
		t.Fatalf("resting y = %v, want 1.5", got)
	}
	if b.Velocity().Y != 0 {
		t.Fatalf("resting vy = %v, want 0", b.Velocity().Y)
	}
	if !b.TouchingLayers(groundLayer) {
		t.Fatalf("expected ground contact")
	}
	if b.TouchingLayers(wallLayer) {
		t.Fatalf("unexpected wall contact")
	}
}

func TestGridBodyFreeFall(t *testing.T) {
	s := NewSpace(20, 100, -9.81)
	b := s.AddBody(5, 80, 1, 1)
	b.SetGravityScale(10)
	for i := 0; i < 10; i++ {
		s.Step(dt)
	}
	want := -9.81 * 10 * dt * 10
	if got := b.Velocity().Y; math.Abs(got-want) > 1e-9 {
		t.Fatalf("vy = %v, want %v", got, want)
	}
	if b.Position().Y >= 80 {
		t.Fatalf("body should have fallen, y = %v", b.Position().Y)
	}
	if b.TouchingLayers(groundLayer) {
		t.Fatalf("falling body touches nothing")
	}
}

func TestGridBodyStopsAtWall(t *testing.T) {
	s, b := newScene(t)
	s.AddSolid(8, 1, 1, 3, wallLayer)

	for i := 0; i < 120; i++ {
		b.SetVelocity(30, b.Velocity().Y)
		s.Step(dt)
	}
	if right := b.Position().X + 0.5; right > 8+1e-9 {
		t.Fatalf("body passed the wall, right edge = %v", right)
	}
	if !b.TouchingLayers(wallLayer) {
		t.Fatalf("expected wall contact")
	}
}

func TestControllerOnGrid(t *testing.T) {
	s, b := newScene(t)
	orient := &scale{x: -1}
	ctrl, err := movement.New(b, orient, movement.Config{
		MovementSpeed: 300,
		JumpImpulse:   900,
		GroundMask:    groundLayer,
		GravityScale:  movement.DefaultGravityScale,
	})
	if err != nil {
		t.Fatalf("movement.New: %v", err)
	}
	if ctrl.FacingRight() {
		t.Fatalf("negative scale should face left")
	}
	if b.Mass() != 1 || !b.RotationLocked() || b.GravityScale() != movement.DefaultGravityScale {
		t.Fatalf("body not configured")
	}

	startX := b.Position().X
	for i := 0; i < 20; i++ {
		ctrl.Tick(1, false, dt)
		s.Step(dt)
	}
	if b.Position().X <= startX {
		t.Fatalf("expected to move right")
	}
	if !ctrl.FacingRight() || orient.x != 1 {
		t.Fatalf("expected to face right after moving right")
	}

	if !ctrl.HasLanded() {
		t.Fatalf("expected ground contact before jumping")
	}
	ctrl.Tick(0, true, dt)
	s.Step(dt)
	if b.Position().Y <= 1.5 {
		t.Fatalf("expected to leave the ground, y = %v", b.Position().Y)
	}
	if ctrl.HasLanded() {
		t.Fatalf("expected to be airborne")
	}

	for i := 0; i < 120; i++ {
		ctrl.Tick(0, false, dt)
		s.Step(dt)
	}
	if !ctrl.HasLanded() {
		t.Fatalf("expected to land again")
	}
}

func TestGridRemoveBody(t *testing.T) {
	s, b := newScene(t)
	s.RemoveBody(b)
	if len(s.bodies) != 0 {
		t.Fatalf("bodies = %d, want 0", len(s.bodies))
	}
	s.RemoveBody(b)
}

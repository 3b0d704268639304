package entity

import (
	"testing"

	"smooth-snake/game/types"
)

// TestPushHeadAndRemoveTail keeps the newest segments first
func TestPushHeadAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: 0})
	s.Vector = types.Vector{X: 1}

	for i := 0; i < 5; i++ {
		s.Move()
		s.PushHead()
		s.RemoveTail()
	}

	want := []types.Point{{X: 5}, {X: 4}, {X: 3}}
	if len(s.Trail) != len(want) {
		t.Fatalf("Expected %d segments, got %v", len(want), s.Trail)
	}
	for i := range want {
		if s.Trail[i] != want[i] {
			t.Errorf("segment %d: expected %v, got %v", i, want[i], s.Trail[i])
		}
	}
}

// TestSeedTrailOnlyWhenEmpty seeds once
func TestSeedTrailOnlyWhenEmpty(t *testing.T) {
	s := NewSnake(types.Point{X: 2, Y: 2})
	if !s.SeedTrail() {
		t.Error("Expected first seed to succeed")
	}
	if s.SeedTrail() {
		t.Error("Expected second seed to be skipped")
	}
	if len(s.Trail) != 1 || s.Trail[0] != (types.Point{X: 2, Y: 2}) {
		t.Errorf("Expected trail [(2,2)], got %v", s.Trail)
	}
}

// TestCloneIsIndependent mutates a clone without touching the original
func TestCloneIsIndependent(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1})
	s.SeedTrail()

	c := s.Clone()
	c.Trail[0] = types.Point{X: 9, Y: 9}
	c.PushHead()

	if s.Trail[0] != (types.Point{X: 1, Y: 1}) || len(s.Trail) != 1 {
		t.Errorf("Expected original trail untouched, got %v", s.Trail)
	}
}

// TestScaleMotionAndSnap divides, multiplies back and rounds positions
func TestScaleMotionAndSnap(t *testing.T) {
	s := NewSnake(types.Point{X: 3, Y: 3})
	s.Vector = types.Vector{Y: -1}

	s.ScaleMotion(types.SmoothFactor, false)
	if s.VectorDelta != 0.125 || s.Vector.Y != -0.125 {
		t.Errorf("Expected delta 0.125 and vy -0.125, got %v %v", s.VectorDelta, s.Vector.Y)
	}

	s.Head = types.Point{X: 3, Y: 2.375}
	s.Trail = []types.Point{{X: 3, Y: 2.5}, {X: 3, Y: 2.625}}
	s.ScaleMotion(types.SmoothFactor, true)
	s.Snap()

	if s.VectorDelta != 1 || s.Vector.Y != -1 {
		t.Errorf("Expected delta 1 and vy -1, got %v %v", s.VectorDelta, s.Vector.Y)
	}
	if s.Head != (types.Point{X: 3, Y: 2}) {
		t.Errorf("Expected head (3,2), got %v", s.Head)
	}
	if s.Trail[0] != (types.Point{X: 3, Y: 3}) || s.Trail[1] != (types.Point{X: 3, Y: 3}) {
		t.Errorf("Expected snapped trail, got %v", s.Trail)
	}
}

// TestWrapBounds re-enters on the far edge
func TestWrapBounds(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 4}
	s := NewSnake(types.Point{X: 10, Y: -1})
	s.Wrap(grid)
	if s.Head != (types.Point{X: 0, Y: 3}) {
		t.Errorf("Expected (0,3), got %v", s.Head)
	}
}

// TestGrowNeverBelowMinimum clamps negative growth
func TestGrowNeverBelowMinimum(t *testing.T) {
	s := NewSnake(types.Point{})
	s.Grow(-10)
	if s.TrailLength != types.MinTrailLength {
		t.Errorf("Expected %d, got %d", types.MinTrailLength, s.TrailLength)
	}
}

package entity

import "smooth-snake/game/types"

// Snake holds the head, its motion and the trail following it.
// Trail is head-first: Trail[0] is the most recent position.
type Snake struct {
	Head        types.Point
	Vector      types.Vector
	VectorDelta float64
	Trail       []types.Point
	TrailLength int
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Head:        startPos,
		VectorDelta: 1,
		Trail:       make([]types.Point, 0, types.MinTrailLength+1),
		TrailLength: types.MinTrailLength,
	}
}

// Clone returns a deep copy so a step can work on its own trail
func (s *Snake) Clone() *Snake {
	c := *s
	c.Trail = make([]types.Point, len(s.Trail), cap(s.Trail))
	copy(c.Trail, s.Trail)
	return &c
}

// Move advances the head by one vector
func (s *Snake) Move() {
	s.Head.X += s.Vector.X
	s.Head.Y += s.Vector.Y
}

// Wrap re-enters the head on the opposite edge once it leaves the grid
func (s *Snake) Wrap(grid types.Grid) {
	xBound := float64(grid.Width - 1)
	yBound := float64(grid.Height - 1)

	if s.Head.X > xBound {
		s.Head.X = 0
	} else if s.Head.X < 0 {
		s.Head.X = xBound
	}

	if s.Head.Y > yBound {
		s.Head.Y = 0
	} else if s.Head.Y < 0 {
		s.Head.Y = yBound
	}
}

// SeedTrail puts the head into an empty trail. Returns false if the trail already had segments.
func (s *Snake) SeedTrail() bool {
	if len(s.Trail) > 0 {
		return false
	}
	s.Trail = append(s.Trail, s.Head)
	return true
}

// PushHead records the current head at the front of the trail
func (s *Snake) PushHead() {
	s.Trail = append(s.Trail, types.Point{})
	copy(s.Trail[1:], s.Trail)
	s.Trail[0] = s.Head
}

// RemoveTail drops the oldest segments until the trail fits TrailLength
func (s *Snake) RemoveTail() {
	if len(s.Trail) > s.TrailLength {
		s.Trail = s.Trail[:s.TrailLength]
	}
}

func (s *Snake) Grow(delta int) {
	s.TrailLength += delta
	if s.TrailLength < types.MinTrailLength {
		s.TrailLength = types.MinTrailLength
	}
}

func (s *Snake) ResetLength() {
	s.TrailLength = types.MinTrailLength
}

// ScaleMotion divides the step size and vector by factor (smooth mode on)
// or multiplies them back when inverse is set.
func (s *Snake) ScaleMotion(factor float64, inverse bool) {
	f := 1 / factor
	if inverse {
		f = factor
	}
	s.VectorDelta *= f
	s.Vector = s.Vector.Scale(f)
}

// Snap rounds the head and every trail segment onto the tile grid
func (s *Snake) Snap() {
	s.Head = s.Head.Round()
	for i := range s.Trail {
		s.Trail[i] = s.Trail[i].Round()
	}
}

// Reset centers the head and clears the trail. Vector and step size are kept.
func (s *Snake) Reset(center types.Point) {
	s.Head = center
	s.Trail = s.Trail[:0]
	s.TrailLength = types.MinTrailLength
}

package manager

import (
	"math"

	"smooth-snake/game/types"
)

// Matches reports whether two positions occupy the same tile.
// A tolerance of zero means exact equality; otherwise both coordinate
// deltas must be strictly below tol.
func Matches(a, b types.Point, tol float64) bool {
	if tol <= 0 {
		return a == b
	}
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

type CollisionManager struct {
	smooth      bool
	vectorDelta float64
}

func NewCollisionManager(smooth bool, vectorDelta float64) *CollisionManager {
	return &CollisionManager{
		smooth:      smooth,
		vectorDelta: vectorDelta,
	}
}

// TrailTolerance is the head/segment match tolerance: half a step in smooth mode
func (cm *CollisionManager) TrailTolerance() float64 {
	if !cm.smooth {
		return 0
	}
	return cm.vectorDelta / 2
}

// FoodTolerance is the head/food and food/segment match tolerance
func (cm *CollisionManager) FoodTolerance() float64 {
	if !cm.smooth {
		return 0
	}
	return types.FoodIntersectionTolerance
}

// IsTrailCollision checks a single trail segment against the head
func (cm *CollisionManager) IsTrailCollision(segment, head types.Point) bool {
	return Matches(segment, head, cm.TrailTolerance())
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos, food types.Point) bool {
	return Matches(pos, food, cm.FoodTolerance())
}

// CountsAsSelfCollision gates a trail hit: only a running snake longer than
// the minimum trail can bite itself, which rules out the spawn tick where the
// head and the sole segment coincide.
func CountsAsSelfCollision(run types.RunState, trailLen int) bool {
	return run == types.StateRunning && trailLen > types.MinTrailLength
}

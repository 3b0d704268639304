package manager

import "smooth-snake/game/types"

// Rand is the random source used for food placement
type Rand interface {
	Intn(n int) int
}

type FoodManager struct {
	grid         types.Grid
	collisionMgr *CollisionManager
	rng          Rand
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		rng:          rng,
	}
}

// GenerateFood picks a uniformly random tile that intersects no trail
// segment. It enumerates the free tiles instead of retrying, so it returns
// false only when the trail covers the whole board.
func (fm *FoodManager) GenerateFood(trail []types.Point) (types.Point, bool) {
	free := fm.FreeTiles(trail)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

// FreeTiles lists the tiles food may be placed on, row by row
func (fm *FoodManager) FreeTiles(trail []types.Point) []types.Point {
	free := make([]types.Point, 0, fm.grid.Width*fm.grid.Height)
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			tile := types.Point{X: float64(x), Y: float64(y)}
			if !fm.intersects(tile, trail) {
				free = append(free, tile)
			}
		}
	}
	return free
}

func (fm *FoodManager) intersects(food types.Point, trail []types.Point) bool {
	for _, part := range trail {
		if fm.collisionMgr.IsFoodCollision(part, food) {
			return true
		}
	}
	return false
}

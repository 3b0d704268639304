package types

import "math"

// Grid represents the board dimensions in tiles
type Grid struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions hold at least one tile
func (g Grid) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

// GridFromPixels derives the tile grid covering a surface of the given pixel size
func GridFromPixels(widthPx, heightPx int) Grid {
	return Grid{
		Width:  floorDiv(widthPx, TileSize),
		Height: floorDiv(heightPx, TileSize),
	}
}

func floorDiv(a, b int) int {
	return int(math.Floor(float64(a) / float64(b)))
}

// Point is a position in tile units. Coordinates are fractional in smooth mode.
type Point struct {
	X, Y float64
}

// Round snaps both coordinates to the nearest tile
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// Vector is the per-tick head displacement in tile units
type Vector struct {
	X, Y float64
}

// Scale multiplies both components by f
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// RunState is the engine's three-state run machine plus the unset state
// that follows construction and reinitialisation.
type RunState int

const (
	StateNone RunState = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "NONE"
	}
}

// Game constants
const (
	TileSize                  = 50 // px
	MinTrailLength            = 3
	SmoothFactor              = 8.0
	FoodIntersectionTolerance = 1.0 // tiles
)

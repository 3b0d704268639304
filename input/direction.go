package input

import "smooth-snake/game/types"

// Direction is one of the four grid headings
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// ToVector converts a Direction into a displacement of the given step size
func (d Direction) ToVector(delta float64) types.Vector {
	switch d {
	case UP:
		return types.Vector{X: 0, Y: -delta}
	case RIGHT:
		return types.Vector{X: delta, Y: 0}
	case DOWN:
		return types.Vector{X: 0, Y: delta}
	case LEFT:
		return types.Vector{X: -delta, Y: 0}
	default:
		return types.Vector{}
	}
}

// opposites forbids 180 degree turns
var opposites = map[Direction]Direction{
	UP:    DOWN,
	DOWN:  UP,
	LEFT:  RIGHT,
	RIGHT: LEFT,
}

// Opposite returns the reverse direction, NONE for NONE
func (d Direction) Opposite() Direction {
	return opposites[d]
}

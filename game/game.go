// Package game is the snake engine: an explicit State, a pure Step that
// advances it one frame, and a thin Game owner the frontends drive.
//
// Each Step moves the head, wraps it around the board, resolves self
// collision and food, and returns the draw commands for the frame together
// with the events that happened (food eaten, game over). The same state
// machine runs at tile granularity (stepped) or in 1/SmoothFactor sub-steps
// (smooth); only the step size and the match tolerance differ.
package game

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"smooth-snake/game/entity"
	"smooth-snake/game/manager"
	"smooth-snake/game/types"
)

// ErrInvalidBoard is returned when a surface is smaller than one tile in either direction
var ErrInvalidBoard = errors.New("board must be at least one tile in each direction")

// Rand is the random source used for food placement
type Rand = manager.Rand

type EventKind int

const (
	EventFoodEaten EventKind = iota
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food_eaten"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event reports something that happened during a step. Score is the trail
// length at the time of the event; State is the run state after it.
type Event struct {
	Kind  EventKind
	Score int
	State types.RunState
}

// Frame is the output of one step
type Frame struct {
	Commands []DrawCommand
	Events   []Event
}

// GameOver returns the game-over event of the frame, if any
func (f Frame) GameOver() (Event, bool) {
	for _, ev := range f.Events {
		if ev.Kind == EventGameOver {
			return ev, true
		}
	}
	return Event{}, false
}

// State is everything the engine owns
type State struct {
	WidthPx  int
	HeightPx int
	Grid     types.Grid
	Snake    entity.Snake
	Food     types.Point
	HasFood  bool
	Smooth   bool
	Run      manager.StateManager
}

// NewState builds the initial state for a surface of the given pixel size:
// head centered, empty trail, food on a random tile.
func NewState(widthPx, heightPx int, rng Rand) (State, error) {
	grid := types.GridFromPixels(widthPx, heightPx)
	if !grid.Valid() {
		return State{}, fmt.Errorf("new state %dx%d px: %w", widthPx, heightPx, ErrInvalidBoard)
	}

	s := State{
		WidthPx:  widthPx,
		HeightPx: heightPx,
		Grid:     grid,
		Snake:    *entity.NewSnake(center(grid)),
	}
	s.placeFood(rng)
	return s, nil
}

func center(grid types.Grid) types.Point {
	return types.Point{X: float64(grid.Width / 2), Y: float64(grid.Height / 2)}
}

// Clone returns a copy that shares no memory with s
func (s State) Clone() State {
	s.Snake = *s.Snake.Clone()
	return s
}

// Score is the value shown on the HUD
func (s State) Score() int {
	return s.Snake.TrailLength
}

func (s State) collisions() *manager.CollisionManager {
	return manager.NewCollisionManager(s.Smooth, s.Snake.VectorDelta)
}

func (s *State) placeFood(rng Rand) {
	fm := manager.NewFoodManager(s.Grid, s.collisions(), rng)
	s.Food, s.HasFood = fm.GenerateFood(s.Snake.Trail)
}

// Step advances prev by one frame. prev is not modified.
func Step(prev State, rng Rand) (State, Frame) {
	s := prev.Clone()
	snake := &s.Snake
	var b frameBuilder
	var events []Event

	if s.Run.IsRunning() {
		snake.Move()
	}
	snake.Wrap(s.Grid)

	b.fillRect(0, 0, float64(s.WidthPx), float64(s.HeightPx), FieldColor)
	s.drawHUD(&b)

	snake.SeedTrail()

	cm := s.collisions()
	bitten := false
	for _, part := range snake.Trail {
		b.tile(part, SnakeColor)
		if cm.IsTrailCollision(part, snake.Head) && manager.CountsAsSelfCollision(s.Run.State(), len(snake.Trail)) {
			bitten = true
		}
	}

	finalScore := 0
	if bitten {
		finalScore = snake.TrailLength
		snake.ResetLength()
		s.Run.GameOver()
		events = append(events, Event{Kind: EventGameOver, Score: finalScore, State: s.Run.State()})
		snake.RemoveTail()
	}

	if s.Run.IsRunning() {
		snake.PushHead()
		snake.RemoveTail()
	}

	if s.HasFood && cm.IsFoodCollision(snake.Head, s.Food) {
		snake.Grow(1)
		s.placeFood(rng)
		events = append(events, Event{Kind: EventFoodEaten, Score: snake.TrailLength, State: s.Run.State()})
	}

	if s.HasFood {
		b.tile(s.Food, FoodColor)
	}

	if bitten {
		b.cmds = append(b.cmds, GameOverText(finalScore, s.WidthPx, s.HeightPx))
	}

	return s, Frame{Commands: b.cmds, Events: events}
}

func (s State) drawHUD(b *frameBuilder) {
	stateIcon := ImagePause
	if s.Run.IsPaused() {
		stateIcon = ImagePlay
	}
	b.image(stateIcon, iconOffsetX, iconOffsetY, iconSize)

	if s.Smooth {
		b.opacity(1)
	} else {
		b.opacity(dimmedOpacity)
	}
	b.image(ImageSmooth, iconSize+iconOffsetX, iconOffsetY, iconSize)
	b.opacity(1)

	b.text(fmt.Sprintf("Score: %d", s.Score()),
		float64(s.WidthPx-scoreMarginRight), scoreBaseline, scoreFontSize, AlignRight)
}

// EnableSmooth switches to sub-tile steps. No-op when already smooth.
func (s *State) EnableSmooth() {
	if s.Smooth {
		return
	}
	s.Smooth = true
	s.Snake.ScaleMotion(types.SmoothFactor, false)
}

// DisableSmooth restores tile steps and snaps the snake back onto the grid.
// No-op when already stepped.
func (s *State) DisableSmooth() {
	if !s.Smooth {
		return
	}
	s.Smooth = false
	s.Snake.ScaleMotion(types.SmoothFactor, true)
	s.Snake.Snap()
}

// Resize recomputes the board for a new surface size and re-rolls the food.
// On error s is left untouched.
func (s *State) Resize(widthPx, heightPx int, rng Rand) error {
	grid := types.GridFromPixels(widthPx, heightPx)
	if !grid.Valid() {
		return fmt.Errorf("resize %dx%d px: %w", widthPx, heightPx, ErrInvalidBoard)
	}
	s.WidthPx, s.HeightPx = widthPx, heightPx
	s.Grid = grid
	s.placeFood(rng)
	return nil
}

// Reinit recenters the head, clears the trail and unsets the run state
func (s *State) Reinit(rng Rand) {
	s.Snake.Reset(center(s.Grid))
	s.Run.Reset()
	s.placeFood(rng)
}

// Option configures a Game
type Option func(*Game)

// WithRand sets the food placement random source
func WithRand(rng Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithSeed seeds the default random source
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// Game owns a State and applies the frontends' calls to it. It is not safe
// for concurrent use; one scheduler goroutine drives it.
type Game struct {
	state State
	rng   Rand
}

func New(widthPx, heightPx int, opts ...Option) (*Game, error) {
	g := &Game{
		rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, opt := range opts {
		opt(g)
	}

	state, err := NewState(widthPx, heightPx, g.rng)
	if err != nil {
		return nil, err
	}
	g.state = state
	return g, nil
}

// Step runs one frame. The scheduler calls it every frame, paused or not.
func (g *Game) Step() Frame {
	next, frame := Step(g.state, g.rng)
	g.state = next
	return frame
}

// Pause sets PAUSED and renders once
func (g *Game) Pause() Frame {
	g.state.Run.Pause()
	return g.Step()
}

// Resume sets RUNNING and renders once
func (g *Game) Resume() Frame {
	g.state.Run.Resume()
	return g.Step()
}

// Reinit prepares a fresh run. The state stays unset until Resume.
func (g *Game) Reinit() {
	g.state.Reinit(g.rng)
}

// Resize adapts the board to a new surface size and renders once so the
// surface is never left stale.
func (g *Game) Resize(widthPx, heightPx int) (Frame, error) {
	if err := g.state.Resize(widthPx, heightPx, g.rng); err != nil {
		return Frame{}, err
	}
	return g.Step(), nil
}

// SetVector replaces the movement vector. Reversal filtering is the caller's job.
func (g *Game) SetVector(v types.Vector) {
	g.state.Snake.Vector = v
}

func (g *Game) EnableSmooth() {
	g.state.EnableSmooth()
}

func (g *Game) DisableSmooth() {
	g.state.DisableSmooth()
}

func (g *Game) ToggleSmooth() {
	if g.state.Smooth {
		g.state.DisableSmooth()
	} else {
		g.state.EnableSmooth()
	}
}

// Grow lengthens the trail bound directly
func (g *Game) Grow(delta int) {
	g.state.Snake.Grow(delta)
}

// Snapshot returns a copy of the current state
func (g *Game) Snapshot() State {
	return g.state.Clone()
}

func (g *Game) VectorDelta() float64 {
	return g.state.Snake.VectorDelta
}

func (g *Game) RunState() types.RunState {
	return g.state.Run.State()
}

func (g *Game) Score() int {
	return g.state.Score()
}

func (g *Game) Smooth() bool {
	return g.state.Smooth
}

func (g *Game) Grid() types.Grid {
	return g.state.Grid
}

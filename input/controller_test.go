package input

import (
	"testing"

	"smooth-snake/game"
	"smooth-snake/game/types"
)

// fakeEngine records the calls the controller makes
type fakeEngine struct {
	state   types.RunState
	vector  types.Vector
	delta   float64
	sets    int
	renders int
	reinits int
	smooth  int
	grown   int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{delta: 1}
}

func (f *fakeEngine) SetVector(v types.Vector) {
	f.vector = v
	f.sets++
}

func (f *fakeEngine) VectorDelta() float64     { return f.delta }
func (f *fakeEngine) RunState() types.RunState { return f.state }

func (f *fakeEngine) Pause() game.Frame {
	f.state = types.StatePaused
	f.renders++
	return game.Frame{}
}

func (f *fakeEngine) Resume() game.Frame {
	f.state = types.StateRunning
	f.renders++
	return game.Frame{}
}

func (f *fakeEngine) Reinit() {
	f.state = types.StateNone
	f.reinits++
}

func (f *fakeEngine) ToggleSmooth() { f.smooth++ }
func (f *fakeEngine) Grow(delta int) { f.grown += delta }

// TestFirstMoveStartsRun resumes from NONE and sets the vector
func TestFirstMoveStartsRun(t *testing.T) {
	e := newFakeEngine()
	c := NewController(e, false)

	out := c.Handle(Move(LEFT))

	if out.Frame == nil {
		t.Error("Expected a rendered frame on start")
	}
	if e.state != types.StateRunning {
		t.Errorf("Expected RUNNING, got %s", e.state)
	}
	if e.vector != (types.Vector{X: -1}) {
		t.Errorf("Expected vector (-1,0), got %v", e.vector)
	}
}

// TestReversalRejected drops 180 degree turns and redundant repeats
func TestReversalRejected(t *testing.T) {
	tests := []struct {
		first, second Direction
		accepted      bool
	}{
		{UP, DOWN, false},
		{DOWN, UP, false},
		{LEFT, RIGHT, false},
		{RIGHT, LEFT, false},
		{RIGHT, RIGHT, false},
		{RIGHT, UP, true},
		{UP, LEFT, true},
	}
	for _, tt := range tests {
		t.Run(tt.first.String()+"-"+tt.second.String(), func(t *testing.T) {
			e := newFakeEngine()
			c := NewController(e, false)
			c.Handle(Move(tt.first))
			before := e.sets

			c.Handle(Move(tt.second))

			if got := e.sets > before; got != tt.accepted {
				t.Errorf("Expected accepted=%v, got %v", tt.accepted, got)
			}
		})
	}
}

// TestMoveUsesSmoothDelta scales the vector by the engine's current step
func TestMoveUsesSmoothDelta(t *testing.T) {
	e := newFakeEngine()
	e.delta = 0.125
	c := NewController(e, false)

	c.Handle(Move(DOWN))
	if e.vector != (types.Vector{Y: 0.125}) {
		t.Errorf("Expected vector (0,0.125), got %v", e.vector)
	}
}

// TestTogglePause flips between RUNNING and PAUSED only
func TestTogglePause(t *testing.T) {
	e := newFakeEngine()
	c := NewController(e, false)

	if out := c.Handle(Command{Action: ActionTogglePause}); out.Frame != nil {
		t.Error("Expected pause to be ignored before the run starts")
	}

	c.Handle(Move(UP))
	c.Handle(Command{Action: ActionTogglePause})
	if e.state != types.StatePaused {
		t.Errorf("Expected PAUSED, got %s", e.state)
	}
	c.Handle(Command{Action: ActionTogglePause})
	if e.state != types.StateRunning {
		t.Errorf("Expected RUNNING, got %s", e.state)
	}
}

// TestRestartAfterGameOver reinitialises and forgets the heading
func TestRestartAfterGameOver(t *testing.T) {
	e := newFakeEngine()
	c := NewController(e, false)
	c.Handle(Move(RIGHT))

	if out := c.Handle(Command{Action: ActionRestart}); out.Restart {
		t.Error("Expected restart to be ignored while running")
	}

	e.state = types.StateGameOver
	if out := c.Handle(Move(UP)); out.Frame != nil || e.vector != (types.Vector{X: 1}) {
		t.Error("Expected moves to be ignored after game over")
	}

	out := c.Handle(Command{Action: ActionRestart})
	if !out.Restart || e.reinits != 1 {
		t.Errorf("Expected one reinit, got %d", e.reinits)
	}
	if c.Heading() != NONE {
		t.Errorf("Expected heading reset, got %s", c.Heading())
	}

	// the old heading no longer blocks its opposite
	c.Handle(Move(LEFT))
	if e.state != types.StateRunning || e.vector != (types.Vector{X: -1}) {
		t.Errorf("Expected new run heading left, got %s %v", e.state, e.vector)
	}
}

// TestGrowNeedsCheats only grows when cheats are on
func TestGrowNeedsCheats(t *testing.T) {
	e := newFakeEngine()
	NewController(e, false).Handle(Command{Action: ActionGrow})
	if e.grown != 0 {
		t.Errorf("Expected no growth without cheats, got %d", e.grown)
	}
	NewController(e, true).Handle(Command{Action: ActionGrow})
	if e.grown != 1 {
		t.Errorf("Expected growth 1, got %d", e.grown)
	}
}

// TestEngineSatisfiesInterface keeps the real engine wired to the controller
func TestEngineSatisfiesInterface(t *testing.T) {
	g, err := game.New(10*types.TileSize, 10*types.TileSize, game.WithSeed(1))
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	c := NewController(g, false)
	c.Handle(Move(RIGHT))
	c.Handle(Command{Action: ActionToggleSmooth})

	if g.RunState() != types.StateRunning || !g.Smooth() {
		t.Errorf("Expected running smooth game, got %s smooth=%v", g.RunState(), g.Smooth())
	}
}

// TestTwoTurnsInOneTick cannot chain two quarter turns into a reversal
// before the snake has stepped
func TestTwoTurnsInOneTick(t *testing.T) {
	e := newFakeEngine()
	c := NewController(e, false)
	c.Handle(Move(RIGHT))

	c.Handle(Move(UP))
	c.Handle(Move(LEFT))
	if e.vector != (types.Vector{Y: -1}) {
		t.Errorf("Expected vector (0,-1) after UP,LEFT in one tick, got %v", e.vector)
	}

	// once the snake has moved up, left is a legal turn
	c.Commit()
	c.Handle(Move(LEFT))
	if e.vector != (types.Vector{X: -1}) {
		t.Errorf("Expected vector (-1,0) after the step, got %v", e.vector)
	}
}

// TestTurnWhilePausedKeepsMovingHeading checks reversals against the
// heading the snake moved with, not a turn queued before the pause
func TestTurnWhilePausedKeepsMovingHeading(t *testing.T) {
	e := newFakeEngine()
	c := NewController(e, false)
	c.Handle(Move(RIGHT))
	c.Handle(Move(UP))
	c.Handle(Command{Action: ActionTogglePause})

	if out := c.Handle(Move(LEFT)); out.Frame != nil {
		t.Error("Expected a reversal to be dropped while paused")
	}
	if e.state != types.StatePaused || e.vector != (types.Vector{Y: -1}) {
		t.Errorf("Expected paused with vector (0,-1), got %s %v", e.state, e.vector)
	}
}

// TestRestartIgnoredWhilePaused keeps the open run until it ends
func TestRestartIgnoredWhilePaused(t *testing.T) {
	e := newFakeEngine()
	c := NewController(e, false)
	c.Handle(Move(RIGHT))
	c.Handle(Command{Action: ActionTogglePause})

	if out := c.Handle(Command{Action: ActionRestart}); out.Restart || e.reinits != 0 {
		t.Errorf("Expected restart to be ignored while paused, got %d reinits", e.reinits)
	}
	if e.state != types.StatePaused {
		t.Errorf("Expected PAUSED, got %s", e.state)
	}
}

// Package input turns player commands into engine calls. It owns the
// reversal policy: the engine accepts any vector, so a 180 degree turn is
// dropped here before it reaches SetVector. Turns are checked against the
// heading of the last step that moved the snake, so two quick turns inside
// one tick cannot add up to a reversal.
package input

import (
	"smooth-snake/game"
	"smooth-snake/game/types"
)

type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionTogglePause
	ActionToggleSmooth
	ActionRestart
	ActionGrow
	ActionQuit
)

// Command is an action decoded from a key press
type Command struct {
	Action Action
	Dir    Direction
}

func Move(dir Direction) Command {
	return Command{Action: ActionMove, Dir: dir}
}

// Engine is the part of *game.Game the controller drives
type Engine interface {
	SetVector(v types.Vector)
	VectorDelta() float64
	RunState() types.RunState
	Pause() game.Frame
	Resume() game.Frame
	Reinit()
	ToggleSmooth()
	Grow(delta int)
}

// Outcome tells the frontend what a command did. Frame is set when the
// engine rendered as part of the command.
type Outcome struct {
	Frame    *game.Frame
	Quit     bool
	Restart  bool
	Smoothed bool
}

type Controller struct {
	engine    Engine
	last      Direction // last accepted key
	committed Direction // heading the snake last moved with
	cheats    bool
}

func NewController(engine Engine, cheats bool) *Controller {
	return &Controller{
		engine: engine,
		cheats: cheats,
	}
}

// Heading is the last accepted direction
func (c *Controller) Heading() Direction {
	return c.last
}

// Commit latches the accepted direction as the moving heading. The caller
// runs it after every step that advanced the snake.
func (c *Controller) Commit() {
	c.committed = c.last
}

func (c *Controller) Handle(cmd Command) Outcome {
	switch cmd.Action {
	case ActionMove:
		return c.move(cmd.Dir)
	case ActionTogglePause:
		return c.togglePause()
	case ActionToggleSmooth:
		c.engine.ToggleSmooth()
		return Outcome{Smoothed: true}
	case ActionRestart:
		if c.engine.RunState() == types.StateGameOver {
			c.engine.Reinit()
			c.last, c.committed = NONE, NONE
			return Outcome{Restart: true}
		}
	case ActionGrow:
		if c.cheats {
			c.engine.Grow(1)
		}
	case ActionQuit:
		return Outcome{Quit: true}
	}
	return Outcome{}
}

func (c *Controller) move(dir Direction) Outcome {
	if dir == NONE || c.engine.RunState() == types.StateGameOver {
		return Outcome{}
	}
	if dir == c.last || (c.committed != NONE && dir == c.committed.Opposite()) {
		return Outcome{}
	}

	c.last = dir
	c.engine.SetVector(dir.ToVector(c.engine.VectorDelta()))

	switch c.engine.RunState() {
	case types.StateNone, types.StatePaused:
		return c.resume()
	}
	return Outcome{}
}

// resume restarts motion; the forced step moves the snake
func (c *Controller) resume() Outcome {
	frame := c.engine.Resume()
	c.Commit()
	return Outcome{Frame: &frame}
}

func (c *Controller) togglePause() Outcome {
	switch c.engine.RunState() {
	case types.StateRunning:
		frame := c.engine.Pause()
		return Outcome{Frame: &frame}
	case types.StatePaused:
		return c.resume()
	}
	return Outcome{}
}

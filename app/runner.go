// Package app glues the engine to a frontend: it builds the game from the
// config, feeds it commands and ticks, and reacts to the events each frame
// reports (stats, sound, logs). Frontends only draw and read keys.
package app

import (
	"time"

	"github.com/rs/zerolog/log"

	"smooth-snake/audio"
	"smooth-snake/config"
	"smooth-snake/game"
	"smooth-snake/game/types"
	"smooth-snake/input"
	"smooth-snake/session"
)

const (
	steppedInterval = time.Second / 15
	smoothInterval  = time.Second / 60
)

type Runner struct {
	game  *game.Game
	ctrl  *input.Controller
	stats *session.Stats
	sound audio.Player
	frame game.Frame

	finalScore int // score shown by the game-over overlay
}

// New sizes the board to the surface and renders the first frame
func New(cfg config.Config, widthPx, heightPx int, stats *session.Stats, sound audio.Player) (*Runner, error) {
	var opts []game.Option
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}
	g, err := game.New(widthPx, heightPx, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Smooth {
		g.EnableSmooth()
	}
	if sound == nil {
		sound = audio.Mute{}
	}

	r := &Runner{
		game:  g,
		ctrl:  input.NewController(g, cfg.Cheats),
		stats: stats,
		sound: sound,
	}
	r.frame = g.Step()

	grid := g.Grid()
	log.Info().
		Int("width", grid.Width).
		Int("height", grid.Height).
		Bool("smooth", g.Smooth()).
		Msg("board ready")
	return r, nil
}

// Interval is the time between two ticks for the current mode
func (r *Runner) Interval() time.Duration {
	if r.game.Smooth() {
		return smoothInterval
	}
	return steppedInterval
}

// Commands is the last rendered frame, replayed by the frontend every display frame
func (r *Runner) Commands() []game.DrawCommand {
	return r.frame.Commands
}

func (r *Runner) Game() *game.Game {
	return r.game
}

// Tick advances the game one step. A finished run is not stepped so the
// game-over overlay stays on screen until restart.
func (r *Runner) Tick() {
	state := r.game.RunState()
	if state == types.StateGameOver {
		return
	}
	r.apply(r.game.Step())
	if state == types.StateRunning {
		r.ctrl.Commit()
	}
}

// Handle applies a command and reports whether the player asked to quit
func (r *Runner) Handle(cmd input.Command) bool {
	before := r.game.RunState()
	out := r.ctrl.Handle(cmd)

	switch {
	case out.Quit:
		return true
	case out.Restart:
		r.frame = r.game.Step()
		log.Debug().Msg("game reset")
	case out.Smoothed:
		log.Debug().Bool("smooth", r.game.Smooth()).Msg("smooth mode toggled")
	}
	if out.Frame != nil {
		r.apply(*out.Frame)
	}

	if before == types.StateNone && r.game.RunState() == types.StateRunning {
		id := r.stats.Start()
		log.Info().Str("run", id).Msg("run started")
	}
	return false
}

// Resize adapts the board to a new surface size. A surface too small for a
// single tile keeps the previous board.
func (r *Runner) Resize(widthPx, heightPx int) {
	state := r.game.RunState()
	frame, err := r.game.Resize(widthPx, heightPx)
	if err != nil {
		log.Warn().Err(err).Msg("resize ignored")
		return
	}
	grid := r.game.Grid()
	log.Debug().Int("width", grid.Width).Int("height", grid.Height).Msg("board resized")

	switch state {
	case types.StateRunning:
		r.ctrl.Commit()
	case types.StateGameOver:
		frame.Commands = append(frame.Commands, game.GameOverText(r.finalScore, widthPx, heightPx))
	}
	r.apply(frame)
}

func (r *Runner) apply(frame game.Frame) {
	r.frame = frame
	r.sound.Play(frame.Events)

	ev, over := frame.GameOver()
	if !over {
		return
	}
	r.finalScore = ev.Score
	id := r.stats.CurrentID()
	run, ok := r.stats.Finish(ev.Score, r.game.Smooth())
	if !ok {
		return
	}
	log.Info().
		Str("run", id).
		Int("score", run.Score).
		Dur("duration", run.Duration()).
		Msg("game over")
}

// Close logs the session summary
func (r *Runner) Close() {
	sum := r.stats.Summary()
	log.Info().
		Int("games", sum.GamesPlayed).
		Int("best", sum.BestScore).
		Float64("average", sum.AverageScore).
		Float64("median", sum.MedianScore).
		Dur("avgDuration", sum.AverageDuration).
		Msg("session summary")
}

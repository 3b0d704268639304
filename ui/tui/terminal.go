// Package tui is the terminal frontend. It renders the same frames as the
// window frontend on a tcell screen.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"smooth-snake/app"
	"smooth-snake/audio"
	"smooth-snake/config"
	"smooth-snake/session"
)

// Run takes over the terminal until the player quits
func Run(cfg config.Config, stats *session.Stats, sound audio.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	return Play(screen, cfg, stats, sound)
}

// Play runs the game loop on an initialised screen
func Play(screen tcell.Screen, cfg config.Config, stats *session.Stats, sound audio.Player) error {
	screen.HideCursor()
	surface := NewSurface(screen)

	w, h := surface.PixelSize()
	runner, err := app.New(cfg, w, h, stats, sound)
	if err != nil {
		return err
	}
	defer runner.Close()

	interval := runner.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := pollEvents(screen, done, 100)

	surface.Draw(runner.Commands())
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, bound := KeyCommand(ev)
				if !bound {
					continue
				}
				if runner.Handle(cmd) {
					log.Info().Msg("quit requested")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				runner.Resize(surface.PixelSize())
			}

			if next := runner.Interval(); next != interval {
				interval = next
				ticker.Reset(interval)
			}
			surface.Draw(runner.Commands())

		case <-ticker.C:
			runner.Tick()
			surface.Draw(runner.Commands())
		}
	}
}

// pollEvents forwards screen events into a buffered channel. The channel is
// closed when the screen is finalised or done is closed.
func pollEvents(screen tcell.Screen, done <-chan struct{}, size int) <-chan tcell.Event {
	events := make(chan tcell.Event, size)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

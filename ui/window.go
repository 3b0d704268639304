// Package ui is the raylib frontend: a resizable window the engine's frames
// are replayed into, with HUD icons loaded from the assets directory.
package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"

	"smooth-snake/app"
	"smooth-snake/audio"
	"smooth-snake/config"
	"smooth-snake/session"
)

const title = "Smooth Snake"

// Run opens the window and plays until it is closed (Esc) or Q is pressed
func Run(cfg config.Config, stats *session.Stats, sound audio.Player) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	assets := LoadAssets(cfg.AssetsDir)
	defer assets.Unload()

	runner, err := app.New(cfg, rl.GetScreenWidth(), rl.GetScreenHeight(), stats, sound)
	if err != nil {
		return err
	}
	defer runner.Close()

	renderer := NewRenderer(assets)
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			runner.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}

		for _, cmd := range PollCommands() {
			if runner.Handle(cmd) {
				log.Info().Msg("quit requested")
				return nil
			}
		}

		if time.Since(lastUpdate) >= runner.Interval() {
			runner.Tick()
			lastUpdate = time.Now()
		}

		renderer.Draw(runner.Commands())
	}
	return nil
}

package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smooth-snake/audio"
	"smooth-snake/config"
	"smooth-snake/session"
	"smooth-snake/ui"
	"smooth-snake/ui/tui"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup happens first
func run() int {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("bad configuration")
		return 2
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.LogFile).Msg("cannot open log file")
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	log.Info().
		Str("ui", cfg.UI).
		Bool("smooth", cfg.Smooth).
		Bool("sound", cfg.Sound).
		Bool("cheats", cfg.Cheats).
		Msg("starting smooth-snake")

	var sound audio.Player = audio.Mute{}
	if cfg.Sound {
		sp, err := audio.NewSpeaker()
		if err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			sound = sp
		}
	}

	stats := session.NewStats()
	switch cfg.UI {
	case config.UITerminal:
		err = tui.Run(cfg, stats, sound)
	default:
		err = ui.Run(cfg, stats, sound)
	}
	if err != nil {
		log.Error().Err(err).Msg("game exited")
		return 1
	}
	return 0
}

// setupLogging sends logs to stderr for the window frontend and to a file
// for the terminal one, where stderr would draw over the screen
func setupLogging(cfg config.Config) (*os.File, error) {
	zerolog.SetGlobalLevel(cfg.LogLevel)

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	var file *os.File
	if cfg.UI == config.UITerminal {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		out, file = f, f
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return file, nil
}

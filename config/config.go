// Package config resolves the runtime settings. Precedence, lowest first:
// built-in defaults, a .env file, the process environment, command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	UIRaylib   = "raylib"
	UITerminal = "terminal"
)

type Config struct {
	UI        string
	Width     int // window size in px, raylib only
	Height    int
	AssetsDir string
	Smooth    bool // start in smooth mode
	Sound     bool
	Cheats    bool
	Seed      uint64 // 0 picks a time-based seed
	LogLevel  zerolog.Level
	LogFile   string // terminal UI log destination
}

func Default() Config {
	return Config{
		UI:        UIRaylib,
		Width:     1280,
		Height:    800,
		AssetsDir: "assets",
		Sound:     true,
		LogLevel:  zerolog.InfoLevel,
		LogFile:   "snake.log",
	}
}

var ErrInvalid = errors.New("invalid configuration")

// Load reads .env (if present), the environment and args
func Load(args []string) (Config, error) {
	_ = godotenv.Load()
	return parse(args, os.Getenv)
}

func parse(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if err := cfg.fromEnv(getenv); err != nil {
		return Config{}, err
	}

	level := cfg.LogLevel.String()
	fs := flag.NewFlagSet("smooth-snake", flag.ContinueOnError)
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "frontend: raylib or terminal")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in px (raylib)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in px (raylib)")
	fs.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "directory holding the HUD icons")
	fs.BoolVar(&cfg.Smooth, "smooth", cfg.Smooth, "start in smooth mode")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play sound cues")
	fs.BoolVar(&cfg.Cheats, "cheats", cfg.Cheats, "enable the grow key")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed, 0 for time-based")
	fs.StringVar(&level, "log-level", level, "trace, debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file for the terminal frontend")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return Config{}, fmt.Errorf("%w: log level %q", ErrInvalid, level)
	}
	cfg.LogLevel = lvl
	cfg.UI = strings.ToLower(cfg.UI)

	return cfg, cfg.Validate()
}

func (c *Config) fromEnv(getenv func(string) string) error {
	if v := getenv("SNAKE_UI"); v != "" {
		c.UI = v
	}
	if v := getenv("SNAKE_ASSETS"); v != "" {
		c.AssetsDir = v
	}
	if v := getenv("SNAKE_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalid, v)
		}
		c.LogLevel = lvl
	}

	ints := map[string]*int{"SNAKE_WIDTH": &c.Width, "SNAKE_HEIGHT": &c.Height}
	for key, dst := range ints {
		if v := getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
			}
			*dst = n
		}
	}

	bools := map[string]*bool{"SNAKE_SMOOTH": &c.Smooth, "SNAKE_SOUND": &c.Sound, "SNAKE_CHEATS": &c.Cheats}
	for key, dst := range bools {
		if v := getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
			}
			*dst = b
		}
	}

	if v := getenv("SNAKE_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: SNAKE_SEED=%q", ErrInvalid, v)
		}
		c.Seed = n
	}
	return nil
}

func (c Config) Validate() error {
	if c.UI != UIRaylib && c.UI != UITerminal {
		return fmt.Errorf("%w: unknown ui %q", ErrInvalid, c.UI)
	}
	if c.UI == UIRaylib && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Width, c.Height)
	}
	return nil
}

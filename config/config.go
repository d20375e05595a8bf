package config

import (
	"time"

	"arcade-snake/game"
	"arcade-snake/game/timer"
	"arcade-snake/game/types"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Config holds everything needed to start a session
type Config struct {
	Width    int
	Height   int
	Title    string
	FPS      int
	Interval time.Duration
	Seed     uint64 // 0 picks one from the clock
	LogLevel string

	// headless runs only
	Frames   int
	Script   string
	Snapshot string
}

func Default() *Config {
	return &Config{
		Width:    types.WindowWidth,
		Height:   types.WindowHeight,
		Title:    types.WindowTitle,
		FPS:      60,
		Interval: timer.MoveInterval,
		LogLevel: "info",
		Frames:   600,
	}
}

func (c *Config) Validate() error {
	if c.Width < types.CellSize || c.Height < types.CellSize {
		return errors.Errorf("window %dx%d is smaller than one %dpx cell", c.Width, c.Height, types.CellSize)
	}
	if c.FPS <= 0 {
		return errors.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Interval <= 0 {
		return errors.Errorf("move interval must be positive, got %s", c.Interval)
	}
	if c.Frames <= 0 {
		return errors.Errorf("frames must be positive, got %d", c.Frames)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}

// ApplyLogLevel sets the global logrus level.
func (c *Config) ApplyLogLevel() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	log.SetLevel(level)
	return nil
}

func (c *Config) Grid() types.Grid {
	return types.GridFromWindow(c.Width, c.Height, types.CellSize)
}

// ResolveSeed replaces a zero seed with one taken from the clock.
func (c *Config) ResolveSeed() uint64 {
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
	return c.Seed
}

// GameOptions builds the session options around the given clock.
func (c *Config) GameOptions(clock timer.Clock) game.Options {
	return game.Options{
		Grid:     c.Grid(),
		Clock:    clock,
		Interval: c.Interval,
		Policy:   timer.DropOvershoot,
		Seed:     c.Seed,
	}
}

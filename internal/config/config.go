// Package config provides YAML-based configuration loading for the game's
// presentation and loop pacing. Physics constants live in the game package
// and are not configurable.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level configuration file.
type Config struct {
	Loop    LoopConfig    `yaml:"loop"`
	Palette PaletteConfig `yaml:"palette"`
	Log     LogConfig     `yaml:"log"`
}

// LoopConfig controls frame pacing of the game loop.
type LoopConfig struct {
	FrameDelayMS  int `yaml:"frame_delay_ms"`  // Sleep after every frame
	PollTimeoutMS int `yaml:"poll_timeout_ms"` // Max wait for a key per frame
}

// FrameDelay returns the per-frame sleep as a duration.
func (l LoopConfig) FrameDelay() time.Duration {
	return time.Duration(l.FrameDelayMS) * time.Millisecond
}

// PollTimeout returns the input wait as a duration.
func (l LoopConfig) PollTimeout() time.Duration {
	return time.Duration(l.PollTimeoutMS) * time.Millisecond
}

// PaletteConfig names the color of each drawable element.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Entity     string `yaml:"entity"`
	Obstacle   string `yaml:"obstacle"`
	Score      string `yaml:"score"`
	Banner     string `yaml:"banner"`
}

// Resolve converts color names to a game palette.
func (p PaletteConfig) Resolve() (flappy.Palette, error) {
	var out flappy.Palette
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"background", p.Background, &out.Background},
		{"entity", p.Entity, &out.Entity},
		{"obstacle", p.Obstacle, &out.Obstacle},
		{"score", p.Score, &out.Score},
		{"banner", p.Banner, &out.Banner},
	}
	for _, f := range fields {
		c, err := core.ParseColor(f.src)
		if err != nil {
			return flappy.Palette{}, fmt.Errorf("%w: palette.%s: %v", ErrInvalid, f.name, err)
		}
		*f.dst = c
	}
	return out, nil
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards logs while the game owns the terminal
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.Loop.FrameDelayMS <= 0 {
		return fmt.Errorf("%w: loop.frame_delay_ms must be positive, got %d", ErrInvalid, c.Loop.FrameDelayMS)
	}
	if c.Loop.PollTimeoutMS < 0 {
		return fmt.Errorf("%w: loop.poll_timeout_ms must not be negative, got %d", ErrInvalid, c.Loop.PollTimeoutMS)
	}
	if _, err := c.Palette.Resolve(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

package registry

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

// Options carries what every frontend needs to start a game.
type Options struct {
	Seed   int64         // RNG seed; 0 picks one from the clock
	Config config.Config // Loop pacing, palette and logging
	Logger *log.Logger   // nil discards
}

// NewDriver builds a game driver for a terminal of the given size.
// It fails with flappy.ErrTooSmall when the terminal cannot fit the game
// and with config.ErrInvalid for a bad palette.
func (o Options) NewDriver(b core.Bounds) (*engine.Driver, error) {
	palette, err := o.Config.Palette.Resolve()
	if err != nil {
		return nil, err
	}

	logger := o.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return engine.NewGame(
		core.RuntimeConfig{ScreenW: b.W, ScreenH: b.H, Seed: o.Seed},
		engine.WithLogger(logger),
		engine.WithPalette(palette),
		engine.WithFrameDelay(o.Config.Loop.FrameDelay()),
		engine.WithPollTimeout(o.Config.Loop.PollTimeout()),
	)
}

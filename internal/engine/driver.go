package engine

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

// Loop pacing defaults.
const (
	DefaultFrameDelay  = 10 * time.Millisecond
	DefaultPollTimeout = 1 * time.Millisecond
)

// Driver owns the single game state and composes it with the frontend
// collaborators. It holds no game rules of its own.
type Driver struct {
	state       *flappy.State
	screen      *core.Screen
	palette     flappy.Palette
	clock       Clock
	logger      *log.Logger
	frameDelay  time.Duration
	pollTimeout time.Duration
	last        time.Time
	wasOver     bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithFrameDelay sets the sleep after each frame.
func WithFrameDelay(delay time.Duration) Option {
	return func(d *Driver) { d.frameDelay = delay }
}

// WithPollTimeout sets the per-frame input wait.
func WithPollTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.pollTimeout = timeout }
}

// WithPalette sets the frame colors.
func WithPalette(p flappy.Palette) Option {
	return func(d *Driver) { d.palette = p }
}

// New creates a driver around an existing game state.
func New(state *flappy.State, opts ...Option) *Driver {
	b := state.Bounds()
	d := &Driver{
		state:       state,
		screen:      core.NewScreen(b.W, b.H),
		palette:     flappy.DefaultPalette(),
		clock:       SystemClock{},
		logger:      logging.Discard(),
		frameDelay:  DefaultFrameDelay,
		pollTimeout: DefaultPollTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewGame builds the game state for the terminal described by cfg and
// wraps it in a driver. A terminal too small for the game is reported here,
// before any frame runs.
func NewGame(cfg core.RuntimeConfig, opts ...Option) (*Driver, error) {
	rng := rand.New(rand.NewSource(cfg.ResolveSeed()))
	state, err := flappy.NewState(cfg.Bounds(), rng)
	if err != nil {
		return nil, err
	}
	return New(state, opts...), nil
}

// State returns the game state.
func (d *Driver) State() *flappy.State {
	return d.state
}

// Frame returns the most recently rendered screen buffer.
func (d *Driver) Frame() *core.Screen {
	return d.screen
}

// FrameDelay returns the configured per-frame sleep.
func (d *Driver) FrameDelay() time.Duration {
	return d.frameDelay
}

// Phase returns the current state machine phase.
func (d *Driver) Phase() Phase {
	if d.state.Over() {
		return PhaseGameOver
	}
	return PhasePlaying
}

// Dispatch applies an action according to the current phase.
// Quit is always honored and makes Dispatch return false. Restart is only
// accepted after game over and Flap only while playing.
func (d *Driver) Dispatch(a core.Action) bool {
	switch a {
	case core.ActionQuit:
		d.logger.Info("quit requested", "score", d.state.Score())
		return false
	case core.ActionRestart:
		if d.Phase() == PhaseGameOver {
			d.state.Reset()
			d.wasOver = false
			d.logger.Info("round restarted")
		}
	case core.ActionFlap:
		if d.Phase() == PhasePlaying {
			d.state.Flap()
		}
	}
	return true
}

// Step runs one loop iteration without touching the terminal: dispatch the
// action, advance the simulation by dt seconds while playing, render the
// frame buffer and advance the animation counter. It returns false when the
// loop should stop.
func (d *Driver) Step(dt float64, a core.Action) bool {
	if !d.Dispatch(a) {
		return false
	}

	if d.Phase() == PhasePlaying {
		d.state.AdvanceEntity(dt)
		d.state.AdvanceObstacles(dt)
	}

	if d.state.Over() && !d.wasOver {
		d.wasOver = true
		d.logger.Info("round over", "score", d.state.Score())
	}

	d.state.Render(d.screen, d.palette)
	d.state.Tick()
	return true
}

// Run loops until a quit action, a closed input source or ctx cancellation.
// Failures to poll or draw a single frame are logged and the loop goes on.
func (d *Driver) Run(ctx context.Context, display Display, input InputSource) error {
	d.logger.Info("loop started",
		"bounds", d.state.Bounds(),
		"frame_delay", d.frameDelay,
		"poll_timeout", d.pollTimeout,
	)
	d.last = d.clock.Now()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := d.clock.Now()
		dt := now.Sub(d.last).Seconds()
		d.last = now

		action, err := input.Poll(d.pollTimeout)
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				return err
			}
			d.logger.Warn("input poll failed", "error", err)
			action = core.ActionNone
		}

		if !d.Step(dt, action) {
			return nil
		}

		if err := display.Draw(d.screen); err != nil {
			d.logger.Warn("frame draw failed", "error", err)
		}

		d.clock.Sleep(d.frameDelay)
	}
}

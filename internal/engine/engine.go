// Package engine drives the game loop: it measures elapsed time, polls for
// input without blocking, dispatches actions according to the current
// phase, advances the simulation and hands frames to a display.
//
// The terminal is reached only through the Display and InputSource
// collaborators, so the loop runs headless in tests.
package engine

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Display receives rendered frames.
type Display interface {
	Draw(frame *core.Screen) error
}

// InputSource yields at most one pending action per call, waiting no longer
// than timeout. It returns core.ActionNone when nothing arrived.
type InputSource interface {
	Poll(timeout time.Duration) (core.Action, error)
}

// Clock abstracts wall time so tests can control dt and skip sleeps.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// ErrInputClosed is returned by an InputSource that will never produce
// another event. The loop stops on it instead of spinning.
var ErrInputClosed = errors.New("engine: input closed")

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep calls time.Sleep.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Phase is the state of the loop's state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

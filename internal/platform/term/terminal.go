// Package term is the tcell frontend. It owns the terminal for one game
// session: raw mode, alternate screen, hidden cursor and non-blocking
// key polling. Close restores the terminal and is safe to call repeatedly.
package term

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// eventBuffer bounds how many terminal events may queue between polls.
const eventBuffer = 32

// Terminal implements engine.Display and engine.InputSource on a tcell screen.
type Terminal struct {
	screen    tcell.Screen
	events    chan tcell.Event
	quit      chan struct{}
	closeOnce sync.Once
}

// Open initializes the real terminal. On failure after Init the terminal is
// restored before the error is returned.
func Open() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	return newTerminal(s), nil
}

// newTerminal wraps an initialized screen and starts the event pump.
func newTerminal(s tcell.Screen) *Terminal {
	s.HideCursor()
	s.Clear()

	t := &Terminal{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}
	go t.pump()
	return t
}

// pump forwards screen events until the screen is finalized.
func (t *Terminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Close restores the terminal. Only the first call has an effect.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
	return nil
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() core.Bounds {
	w, h := t.screen.Size()
	return core.Bounds{W: w, H: h}
}

// Draw copies the frame to the terminal and flushes it.
func (t *Terminal) Draw(frame *core.Screen) error {
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			cell := frame.GetCell(x, y)
			t.screen.SetContent(x, y, cell.Rune, nil, Style(cell.Color))
		}
	}
	t.screen.Show()
	return nil
}

// Poll waits up to timeout for a key that maps to an action. Keys without a
// mapping, resizes and other events are consumed and ignored.
func (t *Terminal) Poll(timeout time.Duration) (core.Action, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return core.ActionNone, engine.ErrInputClosed
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				if a := KeyAction(key); a != core.ActionNone {
					return a, nil
				}
			}
		case <-timer.C:
			return core.ActionNone, nil
		}
	}
}

// Package tui is the Bubble Tea frontend. It runs the same engine driver as
// the tcell frontend but lets Bubble Tea own the terminal: ticks replace the
// explicit loop and key messages become the pending action of the next tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one loop iteration.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

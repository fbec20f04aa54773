package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Model is the Bubble Tea model wrapping one engine driver.
type Model struct {
	driver   *engine.Driver
	keys     KeyMap
	pending  core.Action // Consumed by the next tick
	last     time.Time   // Time of the previous tick; zero before the first
	quitting bool
}

// NewModel creates a model for the given driver.
func NewModel(driver *engine.Driver) Model {
	return Model{
		driver: driver,
		keys:   DefaultKeyMap(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.driver.FrameDelay())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	// Window size changes are ignored; the playfield keeps its start size.
	return m, nil
}

// handleKey records the action for the next tick. Quit does not wait.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.keys.Action(msg)
	switch a {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.driver.Dispatch(a)
		m.quitting = true
		return m, tea.Quit
	}

	m.pending = a
	return m, nil
}

// handleTick runs one driver step with the pending action.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now

	a := m.pending
	m.pending = core.ActionNone
	if !m.driver.Step(dt, a) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.driver.FrameDelay())
}

// Quitting reports whether the model has asked Bubble Tea to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the driver's last frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.driver.Frame())
}

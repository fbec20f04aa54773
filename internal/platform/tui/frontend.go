package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func init() {
	registry.Register("tea", func() registry.Frontend {
		return Frontend{}
	})
}

// Frontend runs the game as a Bubble Tea program.
type Frontend struct{}

// Name returns the --ui identifier.
func (Frontend) Name() string { return "tea" }

// Title returns a human-readable description.
func (Frontend) Title() string { return "Bubble Tea program with lipgloss colors" }

// Run sizes the playfield from the terminal, then hands the terminal to
// Bubble Tea, which restores it on every exit path.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("tui: query terminal size: %w", err)
	}

	driver, err := opts.NewDriver(core.Bounds{W: w, H: h})
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(driver),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return ctxErr
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

package term

import (
	"context"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func init() {
	registry.Register("tcell", func() registry.Frontend {
		return Frontend{}
	})
}

// Frontend runs the game loop directly against a tcell terminal.
type Frontend struct{}

// Name returns the --ui identifier.
func (Frontend) Name() string { return "tcell" }

// Title returns a human-readable description.
func (Frontend) Title() string { return "Direct tcell loop (default)" }

// Run opens the terminal, plays until quit and restores the terminal on
// every exit path, including panics and startup failures.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	t, err := Open()
	if err != nil {
		return err
	}
	defer t.Close()

	return play(ctx, t, opts)
}

func play(ctx context.Context, t *Terminal, opts registry.Options) error {
	driver, err := opts.NewDriver(t.Size())
	if err != nil {
		return err
	}
	return driver.Run(ctx, t, t)
}

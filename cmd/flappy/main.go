// flappy is a side-scrolling flappy game for the terminal.
//
// Usage:
//
//	flappy                   - Play with the default frontend
//	flappy play --ui tea     - Play with the Bubble Tea frontend
//	flappy frontends         - List available frontends
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config YAML (default: ~/.flappy/config.yaml, then ./configs/flappy.yaml)
//	--seed <value>   - Set RNG seed for reproducible obstacles
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-flappy/internal/platform/term"
	_ "github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide the glyph through the gaps",
	Long: `Flappy is a side-scrolling game played in the terminal. Flap to stay
airborne and steer through the gaps in the scrolling pillars.

Controls:
  Space/Up   - Flap
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  flappy
  flappy play --ui tea
  flappy play --seed 42
  flappy frontends
  flappy config > ~/.flappy/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	flagUI       string
	flagLogFile  string
	flagLogLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the current terminal.

The terminal must be at least 13 rows tall. The playfield keeps the size
the terminal had at start.

Frontends:
  tcell  - Direct game loop on tcell (default)
  tea    - Bubble Tea program

Examples:
  flappy play
  flappy play --ui tea --seed 7
  flappy play --log-file /tmp/flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagUI, "ui", "tcell", "Frontend to play with (see 'flappy frontends')")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file (overrides config)")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	frontend, err := registry.Create(flagUI)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "ui", frontend.Name(), "seed", flagSeed)
	err = frontend.Run(ctx, registry.Options{
		Seed:   flagSeed,
		Config: cfg,
		Logger: logger,
	})
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	if err != nil {
		logger.Error("game failed", "error", err)
	}
	return err
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Loop: LoopConfig{
			FrameDelayMS:  10,
			PollTimeoutMS: 1,
		},
		Palette: PaletteConfig{
			Background: "cyan",
			Entity:     "yellow",
			Obstacle:   "green",
			Score:      "white",
			Banner:     "red",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}

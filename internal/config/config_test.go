package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestEmbeddedDefaultsMatchLiteral(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("loop:\n  frame_delay_ms: 16\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Loop.FrameDelay() != 16*time.Millisecond {
		t.Errorf("FrameDelay() = %v, expected 16ms", cfg.Loop.FrameDelay())
	}
	if cfg.Loop.PollTimeout() != time.Millisecond {
		t.Errorf("PollTimeout() = %v, expected default 1ms", cfg.Loop.PollTimeout())
	}
	if cfg.Palette.Entity != "yellow" {
		t.Errorf("palette should keep defaults, entity = %q", cfg.Palette.Entity)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero frame delay", func(c *Config) { c.Loop.FrameDelayMS = 0 }},
		{"negative poll timeout", func(c *Config) { c.Loop.PollTimeoutMS = -1 }},
		{"unknown color", func(c *Config) { c.Palette.Obstacle = "plaid" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "chatty" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	cfg := Default()
	cfg.Loop.PollTimeoutMS = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero poll timeout should be allowed: %v", err)
	}
}

func TestPaletteResolve(t *testing.T) {
	p, err := Default().Palette.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if p != flappy.DefaultPalette() {
		t.Errorf("Resolve() = %+v, expected %+v", p, flappy.DefaultPalette())
	}

	custom := PaletteConfig{Background: "gray", Entity: "magenta"}
	p, err = custom.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if p.Background != core.ColorGray || p.Entity != core.ColorMagenta || p.Banner != core.ColorDefault {
		t.Errorf("Resolve() = %+v", p)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flappy.yaml")
	if err := os.WriteFile(path, []byte("palette:\n  entity: blue\nlog:\n  level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Palette.Entity != "blue" || cfg.Log.Level != "debug" {
		t.Errorf("custom values not applied: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("loop: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("loop:\n  frame_delay_ms: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load of invalid values = %v, expected ErrInvalid", err)
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse of marshalled config failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("marshalled config = %+v, expected defaults", cfg)
	}
}

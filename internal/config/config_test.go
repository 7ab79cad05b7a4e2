package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/mazechase/internal/maze"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse embedded: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults differ:\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestDefaultRules(t *testing.T) {
	if got := DefaultConfig().Rules(); got != maze.DefaultRules() {
		t.Errorf("Rules() = %+v, want %+v", got, maze.DefaultRules())
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "game:\n  fps: 20\nscoring:\n  ghost: 400\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.FPS != 20 || cfg.Scoring.Ghost != 400 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Scoring.Dot != 10 || cfg.Game.CellSize != 16 {
		t.Errorf("unset keys should keep defaults: %+v", cfg)
	}
	if cfg.TickInterval() != 50*time.Millisecond {
		t.Errorf("TickInterval = %s, want 50ms", cfg.TickInterval())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed explicit config should fail")
	}
}

func TestLoadDatabaseURLFromEnv(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "postgres://example/db")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.DatabaseURL != "postgres://example/db" {
		t.Errorf("DatabaseURL = %q", cfg.Auth.DatabaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero fps", func(c *Config) { c.Game.FPS = 0 }},
		{"unknown store", func(c *Config) { c.Auth.Store = "redis" }},
		{"odd cell size", func(c *Config) { c.Game.CellSize = 15 }},
		{"no power", func(c *Config) { c.Game.PowerSeconds = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/x/y.db"); got != filepath.Join(home, "x", "y.db") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome(abs) = %q", got)
	}
	if got := ExpandHome("~user/x"); got != "~user/x" {
		t.Errorf("ExpandHome(~user) = %q", got)
	}
}

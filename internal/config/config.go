// Package config provides YAML-based configuration loading for mazechase.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/mazechase/internal/maze"
)

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Scoring ScoringConfig `yaml:"scoring"`
	Paths   PathsConfig   `yaml:"paths"`
	Auth    AuthConfig    `yaml:"auth"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig holds the simulation constants and the loop rate.
type GameConfig struct {
	FPS          int     `yaml:"fps"`
	CellSize     int     `yaml:"cell_size"`
	PlayerSize   int     `yaml:"player_size"`
	GhostStep    int     `yaml:"ghost_step"`
	PowerSeconds float64 `yaml:"power_seconds"`
	Level        string  `yaml:"level"`
}

// ScoringConfig holds the points per item.
type ScoringConfig struct {
	Dot    int `yaml:"dot"`
	Pellet int `yaml:"pellet"`
	Ghost  int `yaml:"ghost"`
}

// PathsConfig holds file locations. A leading ~ expands to the home directory.
type PathsConfig struct {
	Database string `yaml:"database"`
	Users    string `yaml:"users"`
	Levels   string `yaml:"levels"`
}

// AuthConfig selects the credential backend.
type AuthConfig struct {
	Store       string `yaml:"store"` // "file", "sqlite", "postgres" or "memory"
	DatabaseURL string `yaml:"database_url"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Auth store names.
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Rules converts the game and scoring sections into simulation rules.
// Grid dimensions come from the default rules; levels override them.
func (c Config) Rules() maze.Rules {
	r := maze.DefaultRules()
	r.CellSize = c.Game.CellSize
	r.PlayerSize = c.Game.PlayerSize
	r.GhostStep = c.Game.GhostStep
	r.PowerDuration = time.Duration(c.Game.PowerSeconds * float64(time.Second))
	r.DotPoints = c.Scoring.Dot
	r.PelletPoints = c.Scoring.Pellet
	r.GhostPoints = c.Scoring.Ghost
	return r
}

// Validate checks the values that are not covered by maze.Rules.
func (c Config) Validate() error {
	if c.Game.FPS <= 0 || c.Game.FPS > 120 {
		return fmt.Errorf("config: fps %d out of range (1-120)", c.Game.FPS)
	}
	switch c.Auth.Store {
	case StoreFile, StoreSQLite, StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("config: unknown auth store %q", c.Auth.Store)
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// TickInterval returns the duration of one simulation tick.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Game.FPS)
}

package config

import (
	_ "embed"
)

//go:embed defaults/mazechase.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/mazechase.yaml.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			FPS:          10,
			CellSize:     16,
			PlayerSize:   10,
			GhostStep:    1,
			PowerSeconds: 7,
			Level:        "classic",
		},
		Scoring: ScoringConfig{
			Dot:    10,
			Pellet: 50,
			Ghost:  200,
		},
		Paths: PathsConfig{
			Database: "~/.mazechase/scores.db",
			Users:    "~/.mazechase/users.json",
			Levels:   "~/.mazechase/levels",
		},
		Auth: AuthConfig{
			Store: StoreFile,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.mazechase/mazechase.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// mazechase is a single-player maze chase game for the terminal.
//
// Usage:
//
//	mazechase play [level]     - Log in and play a level (default: classic)
//	mazechase menu             - Log in and pick levels from a menu
//	mazechase levels           - List available levels
//	mazechase scores [level]   - Show high scores
//	mazechase user register    - Create an account
//	mazechase user verify      - Check a username and password
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 10)
//	--db <path>            - Set scores database path (default: ~/.mazechase/scores.db)
//	--config <path>        - Use a custom config YAML
//	--auth-store <name>    - Credential backend: file, sqlite, postgres, memory
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazechase/internal/auth"
	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/levels"
	"github.com/vovakirdan/mazechase/internal/logging"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	// Global flags
	flagFPS         int
	flagDBPath      string
	flagConfig      string
	flagAuthStore   string
	flagUsersPath   string
	flagDatabaseURL string
	flagLevelsDir   string
	flagLogLevel    string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Mazechase - eat the dots, dodge the ghosts",
	Long: `Mazechase is a maze chase game for the terminal. Log in, clear every
dot in the maze and keep away from the ghosts. Eating a power pellet
turns the tables for a few seconds.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - List available levels
  scores   - View high scores
  user     - Register or verify an account

Examples:
  mazechase play
  mazechase play small
  mazechase menu --fps 15
  mazechase scores classic
  mazechase user register`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAuthStore, "auth-store", "", "Credential store: file, sqlite, postgres, memory")
	rootCmd.PersistentFlags().StringVar(&flagUsersPath, "users", "", "Path to the credential file (file store)")
	rootCmd.PersistentFlags().StringVar(&flagDatabaseURL, "database-url", "", "PostgreSQL URL (postgres store)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with extra level YAML files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the game is running")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(userCmd)
}

// env is what every command needs: the merged config, a logger and the
// level registry.
type env struct {
	cfg       config.Config
	logger    *log.Logger
	logCloser io.Closer
	levels    *levels.Registry
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS != 0 {
		cfg.Game.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.Paths.Database = flagDBPath
	}
	if flagAuthStore != "" {
		cfg.Auth.Store = flagAuthStore
	}
	if flagUsersPath != "" {
		cfg.Paths.Users = flagUsersPath
	}
	if flagDatabaseURL != "" {
		cfg.Auth.DatabaseURL = flagDatabaseURL
	}
	if flagLevelsDir != "" {
		cfg.Paths.Levels = flagLevelsDir
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setup builds the environment. Interactive commands log to the configured
// file so log lines do not tear the TUI; the others log to stderr.
func setup(interactive bool) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logPath := ""
	if interactive {
		logPath = config.ExpandHome(cfg.Log.File)
	}
	logger, closer, err := logging.New(cfg.Log.Level, logPath)
	if err != nil {
		return nil, err
	}

	reg, err := levels.Load(config.ExpandHome(cfg.Paths.Levels), func(path string, err error) {
		logger.Warn("skipping level file", "path", path, "error", err)
	})
	if err != nil {
		closer.Close()
		return nil, err
	}

	logger.Debug("config loaded",
		"fps", cfg.Game.FPS,
		"tick", cfg.TickInterval(),
		"level_id", cfg.Game.Level,
		"auth_store", cfg.Auth.Store,
	)
	return &env{cfg: cfg, logger: logger, logCloser: closer, levels: reg}, nil
}

func (e *env) Close() {
	e.logCloser.Close()
}

// openScores opens the scores database. Failure is reported and play
// continues without scores.
func (e *env) openScores() *storage.Store {
	store, err := storage.Open(e.cfg.Paths.Database)
	if err != nil {
		e.logger.Warn("could not open scores database", "path", e.cfg.Paths.Database, "error", err)
		return nil
	}
	return store
}

// openAuth builds the credential service for the configured store. The
// sqlite store shares the scores database and needs it open.
func (e *env) openAuth(ctx context.Context, scores *storage.Store) (*auth.Service, error) {
	var records auth.RecordStore

	switch e.cfg.Auth.Store {
	case config.StoreFile:
		fs := auth.OpenFileStore(config.ExpandHome(e.cfg.Paths.Users), e.logger)
		e.logger.Debug("credential file", "path", fs.Path())
		records = fs
	case config.StoreSQLite:
		if scores == nil {
			return nil, errors.New("sqlite credential store needs the scores database")
		}
		records = scores.Credentials()
	case config.StorePostgres:
		if e.cfg.Auth.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres credential store needs --database-url or %s", config.EnvDatabaseURL)
		}
		pg, err := storage.NewPostgresCredentials(ctx, e.cfg.Auth.DatabaseURL)
		if err != nil {
			return nil, err
		}
		records = pg
	case config.StoreMemory:
		records = auth.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown auth store %q", e.cfg.Auth.Store)
	}

	e.logger.Debug("credential store ready", "store", e.cfg.Auth.Store)
	return auth.NewService(records, e.logger), nil
}

// terminalSize returns the current terminal size, or the default screen size.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	d := core.DefaultConfig()
	return d.ScreenW, d.ScreenH
}

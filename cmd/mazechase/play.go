package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/auth"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/game"
	"github.com/vovakirdan/mazechase/internal/levels"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Log in and play a level",
	Long: `Log in, then play the given level. The level is a level ID from
'mazechase levels' or a path to a level YAML file. Without an argument
the level from the config is played (classic by default).

Controls:
  Arrows/WASD/HJKL - Move
  P/Space          - Pause
  R                - Restart (after the round ends)
  Esc/B            - Leave the game
  Q/Ctrl+C         - Quit

Examples:
  mazechase play
  mazechase play small
  mazechase play ./my-level.yaml --fps 15`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.Close()

	levelArg := e.cfg.Game.Level
	if len(args) == 1 {
		levelArg = args[0]
	}
	level, err := resolveLevel(e.levels, levelArg)
	if err != nil {
		return err
	}

	store := e.openScores()
	if store != nil {
		defer store.Close()
	}

	svc, err := e.openAuth(cmd.Context(), store)
	if err != nil {
		return err
	}
	defer svc.Close()

	width, height := terminalSize()
	sess, err := tui.RunLogin(svc, width, height)
	if err != nil || sess == nil {
		return err
	}

	cfg := runtimeConfig(e, sess, width, height)
	g, err := game.New(level, e.cfg.Rules())
	if err != nil {
		return fmt.Errorf("level %q: %w", level.ID, err)
	}

	res, err := tui.Run(g, store, e.logger, cfg)
	if err != nil {
		return err
	}
	if res.Score > 0 {
		fmt.Printf("Final score on %s: %d\n", level.Name, res.Score)
	}
	return nil
}

// resolveLevel finds a level by ID or loads it from a YAML file.
func resolveLevel(reg *levels.Registry, arg string) (levels.Level, error) {
	if l, err := reg.Get(arg); err == nil {
		return l, nil
	}

	if ext := filepath.Ext(arg); ext == ".yaml" || ext == ".yml" {
		if _, err := os.Stat(arg); err == nil {
			l, err := levels.LoadPath(arg)
			if err != nil {
				return levels.Level{}, err
			}
			if err := levels.Check(l); err != nil {
				return levels.Level{}, fmt.Errorf("%s: %w", arg, err)
			}
			return l, nil
		}
	}

	return levels.Level{}, fmt.Errorf("unknown level %q (run 'mazechase levels' to see available levels)", arg)
}

func runtimeConfig(e *env, sess *auth.Session, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: e.cfg.Game.FPS,
		Username: sess.Username,
	}
}

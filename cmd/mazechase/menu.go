package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/game"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Log in and pick levels from a menu",
	Long: `Log in, then choose levels from an interactive menu.
After a game you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Tab          - High scores
  Q            - Quit

Examples:
  mazechase menu
  mazechase menu --fps 15
  mazechase menu --auth-store sqlite`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.Close()

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

	for {
		items := e.levels.List()

		menuResult, err := tui.RunMenu(items, store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(items, store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		level, err := e.levels.Get(menuResult.LevelID)
		if err != nil {
			return err
		}
		g, err := game.New(level, e.cfg.Rules())
		if err != nil {
			// A broken user level should not end the session.
			e.logger.Error("cannot start level", "level_id", level.ID, "error", err)
			fmt.Fprintf(os.Stderr, "Error: level %q: %v\n", level.ID, err)
			continue
		}

		res, err := tui.Run(g, store, e.logger, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config
		if res.Quit || !res.BackToMenu {
			return nil
		}
	}
}

package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a level. Without a level, shows a
summary of every level that has been played.

Examples:
  mazechase scores
  mazechase scores classic
  mazechase scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the level")
}

func runScores(_ *cobra.Command, args []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.Close()

	store, err := storage.Open(e.cfg.Paths.Database)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			return errors.New("--clear needs a level")
		}
		return printSummary(store)
	}

	levelID := args[0]
	level, err := e.levels.Get(levelID)
	if err != nil {
		return fmt.Errorf("unknown level %q (run 'mazechase levels' to see available levels)", levelID)
	}

	if flagClear {
		if err := store.ClearScores(levelID); err != nil {
			return err
		}
		e.logger.Info("scores cleared", "level_id", levelID)
		fmt.Printf("Cleared scores for %s.\n", level.Name)
		return nil
	}

	scores, err := store.TopScores(levelID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", level.Name)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mazechase play %s' to set the first high score!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "----", "------", "-----", "------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %-6s  %s\n", i+1, entry.Username, entry.Score, entry.Outcome, dateStr)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllLevelStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %5s  %4s  %8s  %8s  %s\n", "Level", "Games", "Wins", "Best", "Average", "Last played")
	fmt.Printf("  %-16s  %5s  %4s  %8s  %8s  %s\n", "-----", "-----", "----", "----", "-------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-16s  %5d  %4d  %8d  %8.0f  %s\n",
			id, s.Games, s.Wins, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in levels and any levels found in the levels
directory (~/.mazechase/levels by default), with a reachability check.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.Close()

	infos := e.levels.List()
	if len(infos) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, l := range infos {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-18s  %-7s  %5s  %7s  %s\n", maxIDLen, "ID", "Name", "Size", "Dots", "Pellets", "Check")
	fmt.Printf("  %-*s  %-18s  %-7s  %5s  %7s  %s\n", maxIDLen, "--", "----", "----", "----", "-------", "-----")

	for _, info := range infos {
		status := "ok"
		l, err := e.levels.Get(info.ID)
		if err == nil {
			err = levels.Check(l)
		}
		var verr levels.ValidationError
		switch {
		case errors.As(err, &verr):
			status = verr.Code
		case err != nil:
			status = err.Error()
		}

		size := fmt.Sprintf("%dx%d", info.Width, info.Height)
		fmt.Printf("  %-*s  %-18s  %-7s  %5d  %7d  %s\n", maxIDLen, info.ID, info.Name, size, info.Dots, info.Pellets, status)
	}

	fmt.Println()
	fmt.Println("Run 'mazechase play <id>' to play a level.")
	return nil
}

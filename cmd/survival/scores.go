package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/school-survival/internal/platform/tui"
	"github.com/vovakirdan/school-survival/internal/storage"
)

var (
	flagLimit  int
	flagPreset string
	flagBrowse bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs and overall statistics.

Examples:
  survival scores
  survival scores --limit 20
  survival scores --preset hard
  survival scores --browse
  survival scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagPreset, "preset", "", "Only show runs of this difficulty preset")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(); err != nil {
			return err
		}
		logger.Info("scores cleared")
		fmt.Println("All scores deleted.")
		return nil

	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	scores, err := store.TopScores(flagPreset, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - School Survival")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'survival play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-7s  %s\n", "Rank", "Score", "Survived", "Dodged", "Preset", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-7s  %s\n", "----", "-----", "--------", "------", "------", "----")
	for _, row := range tui.ScoreRows(scores) {
		fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-7s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.0f   Longest run: %s   Dodged: %d\n",
		stats.HighScore, stats.Runs, stats.AvgScore,
		(time.Duration(stats.LongestRunMs) * time.Millisecond).Round(100*time.Millisecond),
		stats.TotalDodged)
	return nil
}

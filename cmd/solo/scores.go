package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/solo-mission/internal/platform/tui"
	"github.com/vovakirdan/solo-mission/internal/registry"
	"github.com/vovakirdan/solo-mission/internal/storage"
)

var (
	flagScoresRuns  bool
	flagScoresBoard bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores or recorded runs",
	Long: `Display the top high scores for a variant, or its latest recorded runs.
Without a variant, --runs lists runs across every variant.

Examples:
  solo scores solo
  solo scores solo_god --runs
  solo scores --runs --limit 50
  solo scores --board`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresRuns, "runs", false, "List recorded runs instead of high scores")
	scoresCmd.Flags().BoolVar(&flagScoresBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown variant %q (run 'solo list' to see available variants)", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresBoard:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	case flagScoresRuns:
		return printRuns(store, gameID)
	case gameID == "":
		return errors.New("a variant is required unless --runs or --board is given")
	}

	return printHighScores(store, gameID)
}

func printHighScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'solo play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs scored: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printRuns(store *storage.Store, gameID string) error {
	runs, err := store.LatestRuns(gameID, flagScoresLimit)
	if errors.Is(err, storage.ErrNoRuns) {
		fmt.Println("No runs recorded yet.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("  %-36s  %-10s  %7s  %6s  %7s  %8s  %s\n",
		"Run", "Variant", "Score", "Kills", "Escaped", "Time", "Date")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-10s  %7d  %6d  %7d  %7.1fs  %s\n",
			r.ID, r.Variant, r.Score, r.Destroyed, r.Escaped, r.Elapsed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

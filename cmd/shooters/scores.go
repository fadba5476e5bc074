package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-shooters/internal/registry"
	"github.com/vovakirdan/arcade-shooters/internal/storage"
)

var (
	flagRuns  bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game, or its
most recent runs with --runs.

Examples:
  shooters scores fighter
  shooters scores space --runs
  shooters scores targets --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Show recent runs instead of top scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shooters list' to see available games.")
		os.Exit(1)
	}
	title := registry.Titles()[gameID]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			exitf("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
	case flagRuns:
		if err := printRuns(store, gameID, title); err != nil {
			store.Close()
			exitf("retrieving runs: %v", err)
		}
	default:
		if err := printScores(store, gameID, title); err != nil {
			store.Close()
			exitf("retrieving scores: %v", err)
		}
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'shooters play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f  |  Wins: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Wins)
	return nil
}

func printRuns(store *storage.Store, gameID, title string) error {
	runs, err := store.RecentRuns(gameID, 20)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-10s  %-5s  %-6s  %-7s  %s\n", "Run", "Score", "Level", "Result", "Time", "Date")
	fmt.Printf("  %-8s  %-10s  %-5s  %-6s  %-7s  %s\n", "---", "-----", "-----", "------", "----", "----")
	for _, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		secs := r.Ticks / max(1, flagFPS)
		fmt.Printf("  %-8s  %-10d  %-5d  %-6s  %-7s  %s\n",
			r.ID[:min(8, len(r.ID))], r.Score, r.Level, result,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

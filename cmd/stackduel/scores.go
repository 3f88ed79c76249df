package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stackduel/internal/registry"
	"github.com/vovakirdan/stackduel/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores and recent duels for a mode",
	Long: `Display the top 10 scores, win/loss stats and the most recent
duel results for the given mode.

Examples:
  stackduel scores stackduel
  stackduel scores stackduel_timeattack --recent 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent duel results to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'stackduel list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := printScores(store, gameID, game.Title()); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
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
		fmt.Printf("Play 'stackduel play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetModeStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Matches: %d  Wins: %d  Losses: %d  Best combo: x%d\n",
		stats.HighScore, stats.Matches, stats.Wins, stats.Losses, stats.BestCombo)

	if flagRecent <= 0 {
		return nil
	}
	results, err := store.RecentDuelResults(gameID, flagRecent)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent duels:")
	fmt.Printf("  %-6s  %-8s  %-8s  %-8s  %-6s  %s\n", "Result", "Level", "Score", "Opp", "Time", "Date")
	for _, r := range results {
		fmt.Printf("  %-6s  %-8s  %-8d  %-8d  %-6s  %s\n",
			outcome(r.Winner), r.Difficulty, r.Score, r.OpponentScore,
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func outcome(winner string) string {
	switch winner {
	case "human":
		return "WIN"
	case "cpu":
		return "LOSS"
	}
	return "-"
}

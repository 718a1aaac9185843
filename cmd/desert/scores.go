package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-run/internal/registry"
	"github.com/vovakirdan/desert-run/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and round statistics",
	Long: `Without a game, print totals for every game. With a game, print its
top scores and statistics.

Examples:
  desert scores
  desert scores desert
  desert scores outpost --limit 20
  desert scores --recent
  desert scores desert --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest rounds instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded round of the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q (run 'desert list' to see available games)", gameID)
		}
	}
	if flagScoresClear && gameID == "" {
		return errors.New("--clear needs a game")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared every round of %s.\n", gameID)
		return nil
	case flagScoresRecent:
		return printRecent(store, gameID)
	case gameID == "":
		return printAllStats(store)
	default:
		return printTopScores(store, gameID)
	}
}

func printTopScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Printf("\nPlay 'desert play %s' to set the first high score!\n", gameID)
		return nil
	}

	printRounds(scores, false)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("\nRounds: %d  Wins: %d (%.0f%%)  Best: %d  Average: %.1f\n",
		stats.GamesCount, stats.Wins, stats.WinRate()*100, stats.HighScore, stats.AvgScore)
	return nil
}

// printRecent lists the latest rounds, optionally for one game only.
func printRecent(store *storage.Store, gameID string) error {
	limit := flagScoresLimit
	if gameID != "" {
		// RecentScores spans every game; fetch extra and keep this game's.
		limit *= len(registry.List())
	}

	rounds, err := store.RecentScores(limit)
	if err != nil {
		return err
	}

	kept := rounds[:0]
	for _, r := range rounds {
		if gameID == "" || r.GameID == gameID {
			kept = append(kept, r)
		}
	}
	if len(kept) > flagScoresLimit {
		kept = kept[:flagScoresLimit]
	}

	fmt.Println("Recent rounds")
	fmt.Println()
	if len(kept) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}
	printRounds(kept, true)
	return nil
}

// printAllStats prints one line per registered game, played or not.
func printAllStats(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-10s  %-24s  %6s  %5s  %6s  %6s  %s\n", "ID", "Title", "Rounds", "Wins", "Rate", "Best", "Last played")
	for _, g := range registry.List() {
		st, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-10s  %-24s  %6d  %5s  %6s  %6s  %s\n", g.ID, g.Title, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-10s  %-24s  %6d  %5d  %5.0f%%  %6d  %s\n",
			g.ID, g.Title, st.GamesCount, st.Wins, st.WinRate()*100, st.HighScore,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRounds(rounds []storage.ScoreEntry, withGame bool) {
	if withGame {
		fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %-12s  %s\n", "#", "Game", "Score", "Result", "Level", "Date")
	} else {
		fmt.Printf("  %-4s  %-6s  %-8s  %-12s  %s\n", "Rank", "Score", "Result", "Level", "Date")
	}

	for i, r := range rounds {
		date := r.CreatedAt.Format("2006-01-02 15:04")
		if withGame {
			fmt.Printf("  %-4d  %-8s  %-6d  %-8s  %-12s  %s\n", i+1, r.GameID, r.Score, r.Outcome, r.LevelSource, date)
		} else {
			fmt.Printf("  %-4d  %-6d  %-8s  %-12s  %s\n", i+1, r.Score, r.Outcome, r.LevelSource, date)
		}
	}
}

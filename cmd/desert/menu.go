package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-run/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with the menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a round ends, press R to play again or M to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  desert menu
  desert menu --fps 30
  desert menu --offline`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	runSession("", "")
}

// runSession runs the frontend until the player quits.
func runSession(startGame, levelPath string) {
	store := openStore()

	opts, err := sessionOptions(context.Background(), store, levelPath)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts.StartGame = startGame

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-run/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the playable games",
	Long:  `Shows every registered game and where its levels come from.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games registered.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Printf("  %-*s  %-26s  %s\n", idWidth, "ID", "Title", "Levels")
	for _, g := range games {
		fmt.Printf("  %-*s  %-26s  %s\n", idWidth, g.ID, g.Title, levelOrigin(g))
	}
	fmt.Println()
	fmt.Println("Run 'desert play <id>' to start, or pass --level to play a level file.")
}

// levelOrigin says where a game gets its levels when no --level is given.
func levelOrigin(g registry.GameInfo) string {
	if !g.GeneratesLevels {
		return "built-in"
	}
	if flagOffline {
		return "built-in (offline)"
	}
	return "generated, built-in fallback"
}

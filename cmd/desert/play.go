package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-run/internal/registry"
)

var flagLevel string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: desert).

Games:
  desert   - A freshly generated level every round
  outpost  - The built-in level

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump
  P                - Pause
  R                - Play again (after the round ends)
  Esc/M            - Back to menu
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Slower enemies, higher stomp rebound
  normal  - Default values
  hard    - Faster enemies, lower stomp rebound

Examples:
  desert play
  desert play outpost
  desert play --difficulty hard
  desert play --level ./levels/canyon.yaml
  desert play --level canyon --levels-dir ./levels
  desert play --config ./my-platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Play a level file or level ID instead of generating one")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "desert"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'desert list' to see available games.")
		os.Exit(1)
	}

	runSession(gameID, flagLevel)
}

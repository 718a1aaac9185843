// desert is a side-scrolling platformer for the terminal. Levels are
// generated by a language model when an API key is configured, and a
// built-in level is played otherwise.
//
// Usage:
//
//	desert                   - Start the menu
//	desert play [game]       - Play a game directly (default: desert)
//	desert list              - List available games
//	desert levels ...        - Inspect, list and generate level files
//	desert scores [game]     - Show high scores and statistics
//	desert config ...        - Print the configuration
//	desert serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.desert/scores.db)
//	--config <path>      - Custom platformer config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--offline            - Never call the level generator
//	--log <path>         - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/desert-run/internal/games/platformer"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagEnvFile    string
	flagOffline    bool
	flagLogPath    string
	flagVerbose    bool
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "desert",
	Short: "Desert Run - a terminal platformer",
	Long: `Desert Run is a side-scrolling platformer played in the terminal.
Run right, jump between platforms, stomp enemies, collect coins and
reach the flag at the end of the level.

Levels are generated on the fly when GEMINI_API_KEY (or API_KEY) is set,
either in the environment or in a .env file. Without a key the built-in
level is played.

Available commands:
  menu     - Interactive menu (default)
  play     - Play a game directly
  list     - Show all available games
  levels   - Work with level files
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the configuration

Examples:
  desert
  desert play
  desert play outpost --difficulty hard
  desert play --level ./levels/canyon.yaml
  desert serve --ssh :2222`,
	PersistentPreRunE: setup,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.desert/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env", ".env", "Path to .env file with the API key")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Never call the level generator")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "levels", "Directory searched for level IDs")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/desert-run/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the platformer configuration",
	Long: `Print the configuration the game would run with.

Examples:
  desert config show --difficulty hard
  desert config defaults > ~/.desert/configs/platformer.yaml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (after --config and --difficulty)",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		out, err := yaml.Marshal(loadConfig())
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configDefaultsCmd)
}

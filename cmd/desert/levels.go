package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-run/internal/level"
	"github.com/vovakirdan/desert-run/internal/levelgen"
)

var flagLevelOut string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Work with level files",
	Long: `Inspect, list and generate YAML level files.

Examples:
  desert levels list ./levels
  desert levels show ./levels/canyon.yaml
  desert levels show canyon
  desert levels generate --out ./levels/dunes.yaml
  desert levels fallback --out ./levels/outpost.yaml`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List the level files in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLevelsList,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <file|id>",
	Short: "Validate a level and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsShow,
}

var levelsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a level and save it as YAML",
	Long: `Ask the level generator for a new level and write it to --out.
Requires GEMINI_API_KEY or API_KEY.`,
	RunE: runLevelsGenerate,
}

var levelsFallbackCmd = &cobra.Command{
	Use:   "fallback",
	Short: "Write the built-in level as YAML",
	RunE:  runLevelsFallback,
}

func init() {
	levelsGenerateCmd.Flags().StringVar(&flagLevelOut, "out", "", "Output file (prints to stdout if empty)")
	levelsFallbackCmd.Flags().StringVar(&flagLevelOut, "out", "", "Output file (prints to stdout if empty)")

	levelsCmd.AddCommand(levelsListCmd, levelsShowCmd, levelsGenerateCmd, levelsFallbackCmd)
}

// fileSource plays one level every round. ref is a file path or an ID
// from --levels-dir.
func fileSource(ref string) (levelgen.Source, error) {
	lvl, err := level.NewLoader(flagLevelsDir).Lookup(ref)
	if err != nil {
		return nil, err
	}
	return levelgen.StaticSource{Level: lvl, Label: levelgen.SourceFile}, nil
}

func runLevelsList(_ *cobra.Command, args []string) error {
	dir := flagLevelsDir
	if len(args) > 0 {
		dir = args[0]
	}

	levels, err := level.NewLoader(dir).LoadAll()
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		fmt.Printf("No level files in %s.\n", dir)
		return nil
	}

	fmt.Printf("  %-16s  %-24s  %9s  %7s  %5s\n", "ID", "Name", "Platforms", "Enemies", "Coins")
	for _, l := range levels {
		fmt.Printf("  %-16s  %-24s  %9d  %7d  %5d\n",
			l.ID, l.Name, len(l.Platforms), len(l.Enemies), len(l.Coins))
	}
	return nil
}

func runLevelsShow(_ *cobra.Command, args []string) error {
	lvl, err := level.NewLoader(flagLevelsDir).Lookup(args[0])
	if err != nil {
		return err
	}
	printLevel(lvl)
	return nil
}

func runLevelsGenerate(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	log := stderrLogger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	src, err := levelgen.NewGeminiSource(ctx, levelgen.APIKeyFromEnv(), cfg.Generator)
	if errors.Is(err, levelgen.ErrMissingAPIKey) {
		return fmt.Errorf("%w: set GEMINI_API_KEY or API_KEY, or add it to %s", err, flagEnvFile)
	}
	if err != nil {
		return err
	}

	log.Info("generating level", "model", src.Model())
	lvl, err := src.Generate(ctx)
	if err != nil {
		return err
	}
	log.Info("level generated", "platforms", len(lvl.Platforms), "enemies", len(lvl.Enemies), "coins", len(lvl.Coins))

	return writeLevel(lvl)
}

func runLevelsFallback(_ *cobra.Command, _ []string) error {
	return writeLevel(level.Fallback())
}

// writeLevel saves lvl to --out, or prints it when no file is given.
func writeLevel(lvl level.Level) error {
	if flagLevelOut == "" {
		data, err := level.MarshalYAML(lvl)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := level.SaveFile(flagLevelOut, lvl); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", flagLevelOut)
	return nil
}

func printLevel(l level.Level) {
	fmt.Printf("ID:        %s\n", l.ID)
	fmt.Printf("Name:      %s\n", l.Name)
	fmt.Printf("Theme:     %s\n", l.ThemeColor)
	fmt.Printf("Width:     %g\n", l.Width())
	fmt.Printf("Platforms: %d\n", len(l.Platforms))
	fmt.Printf("Enemies:   %d\n", len(l.Enemies))
	fmt.Printf("Coins:     %d\n", len(l.Coins))
	fmt.Printf("Flag:      (%g, %g)\n", l.Flag.X, l.Flag.Y)
}

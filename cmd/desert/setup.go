package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/desert-run/internal/config"
	"github.com/vovakirdan/desert-run/internal/core"
	"github.com/vovakirdan/desert-run/internal/games/platformer"
	"github.com/vovakirdan/desert-run/internal/levelgen"
	"github.com/vovakirdan/desert-run/internal/platform/tui"
	"github.com/vovakirdan/desert-run/internal/registry"
	"github.com/vovakirdan/desert-run/internal/storage"
)

var (
	logger  *log.Logger
	logFile *os.File
)

// setup runs before every command: it loads the .env file, applies the
// config flags and creates the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := levelgen.LoadEnv(flagEnvFile); err != nil {
		return fmt.Errorf("load %s: %w", flagEnvFile, err)
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	var w io.Writer = io.Discard
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
		cobra.OnFinalize(func() { logFile.Close() })
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "desert",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// stderrLogger is used by commands that do not take over the terminal.
func stderrLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{Prefix: "desert"})
	if flagVerbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// loadConfig returns the platformer config, warning about a bad --config file.
func loadConfig() config.PlatformerConfig {
	cfg, err := platformer.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	return cfg
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// sessionOptions builds the frontend options shared by play, menu and serve.
// levelPath, when set, replaces generation with a level file for every game.
func sessionOptions(ctx context.Context, store *storage.Store, levelPath string) (tui.Options, error) {
	cfg := loadConfig()

	opts := tui.Options{
		Store:      store,
		Logger:     logger,
		Runtime:    runtimeConfig(),
		HoldFrames: cfg.Input.HoldFrames,
	}

	if levelPath != "" {
		src, err := fileSource(levelPath)
		if err != nil {
			return opts, err
		}
		opts.Sources = func(registry.LevelGame) levelgen.Source { return src }
		return opts, nil
	}

	generator, err := generatorSource(ctx, cfg.Generator)
	if err != nil {
		logger.Warn("level generator unavailable", "err", err)
		opts.Notice = levelgen.NoticeFor(err)
	}

	opts.Sources = func(g registry.LevelGame) levelgen.Source {
		if g.GeneratesLevels() {
			return generator
		}
		return levelgen.FallbackSource()
	}
	return opts, nil
}

// generatorSource returns the level generator, or the built-in level when offline.
func generatorSource(ctx context.Context, cfg config.GeneratorConfig) (levelgen.Source, error) {
	if flagOffline {
		return levelgen.FallbackSource(), nil
	}
	return levelgen.NewSource(ctx, levelgen.APIKeyFromEnv(), cfg)
}

// openStore opens the scores database, continuing without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

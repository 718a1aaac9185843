// Package levelgen supplies the level a round is played on. Levels come from
// an external generator, a file or the built-in fallback; Resolve always
// yields something playable.
package levelgen

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/desert-run/internal/level"
)

// Source names reported in Result.Source and stored with scores.
const (
	SourceGenerated = "generated"
	SourceFile      = "file"
	SourceFallback  = "fallback"
)

// ErrMissingAPIKey is returned when the generator has no credentials.
var ErrMissingAPIKey = errors.New("levelgen: no API key configured")

// Source produces level templates.
type Source interface {
	// Name identifies where levels come from (see the Source* constants).
	Name() string

	// Generate returns a new level template.
	Generate(ctx context.Context) (level.Level, error)
}

// StaticSource returns a copy of the same level every time.
type StaticSource struct {
	Level level.Level
	Label string // Defaults to SourceFile
}

// Name implements Source.
func (s StaticSource) Name() string {
	if s.Label == "" {
		return SourceFile
	}
	return s.Label
}

// Generate implements Source.
func (s StaticSource) Generate(ctx context.Context) (level.Level, error) {
	if err := ctx.Err(); err != nil {
		return level.Level{}, err
	}
	return s.Level.Clone(), nil
}

// FallbackSource returns the built-in level.
func FallbackSource() StaticSource {
	return StaticSource{Level: level.Fallback(), Label: SourceFallback}
}

// unavailable is a source that always fails with err.
type unavailable struct {
	err error
}

func (u unavailable) Name() string { return SourceGenerated }

func (u unavailable) Generate(context.Context) (level.Level, error) {
	return level.Level{}, u.err
}

// Unavailable returns a Source whose Generate always fails with err.
// Resolve turns it into the fallback level with a notice.
func Unavailable(err error) Source {
	return unavailable{err: err}
}

// Result is the outcome of resolving a level.
type Result struct {
	Level  level.Level
	Source string // Where the level came from
	Notice string // Advisory message for the player; empty when nothing went wrong
	Err    error  // The error that forced the fallback, if any
}

// Fallback reports whether the built-in level was substituted.
func (r Result) Fallback() bool {
	return r.Source == SourceFallback
}

// Notice texts shown to the player.
const (
	NoticeMissingKey = "No API key set: playing the built-in level. Set GEMINI_API_KEY to generate levels."
	NoticeFailed     = "Level generation failed: playing the built-in level."
)

// NoticeFor returns the player-facing notice for a generation error.
func NoticeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingAPIKey):
		return NoticeMissingKey
	default:
		return NoticeFailed
	}
}

// Resolve asks src for a level and never fails. Any error is logged and
// replaced by the built-in fallback level. A nil src resolves to the fallback
// without a notice.
func Resolve(ctx context.Context, src Source, logger *log.Logger) Result {
	if src == nil {
		return Result{Level: level.Fallback(), Source: SourceFallback}
	}

	lvl, err := src.Generate(ctx)
	if err == nil {
		err = level.Validate(lvl)
	}
	if err == nil {
		if logger != nil {
			logger.Info("level resolved", "source", src.Name(), "id", lvl.ID,
				"platforms", len(lvl.Platforms), "enemies", len(lvl.Enemies), "coins", len(lvl.Coins))
		}
		return Result{Level: lvl, Source: src.Name()}
	}

	if logger != nil {
		logger.Warn("using fallback level", "source", src.Name(), "err", err)
	}

	return Result{
		Level:  level.Fallback(),
		Source: SourceFallback,
		Notice: NoticeFor(err),
		Err:    err,
	}
}

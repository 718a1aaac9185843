package levelgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/vovakirdan/desert-run/internal/config"
	"github.com/vovakirdan/desert-run/internal/level"
)

// DefaultModel is used when the config names no model.
const DefaultModel = "gemini-3-flash-preview"

// defaultTimeout bounds a generation request when the config sets none.
const defaultTimeout = 20 * time.Second

// contentGenerator is the part of the genai client the generator uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiSource generates levels with a Gemini model.
type GeminiSource struct {
	models  contentGenerator
	model   string
	prompt  string
	timeout time.Duration
}

// NewGeminiSource creates a generator authenticated with apiKey.
// Returns ErrMissingAPIKey when apiKey is empty.
func NewGeminiSource(ctx context.Context, apiKey string, cfg config.GeneratorConfig) (*GeminiSource, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("levelgen: create client: %w", err)
	}

	return newGeminiSource(client.Models, cfg), nil
}

func newGeminiSource(models contentGenerator, cfg config.GeneratorConfig) *GeminiSource {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GeminiSource{
		models:  models,
		model:   model,
		prompt:  Prompt(),
		timeout: timeout,
	}
}

// Name implements Source.
func (g *GeminiSource) Name() string {
	return SourceGenerated
}

// Model returns the model name requests are sent to.
func (g *GeminiSource) Model() string {
	return g.model
}

// Generate implements Source.
func (g *GeminiSource) Generate(ctx context.Context) (level.Level, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(g.prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   ResponseSchema(),
	})
	if err != nil {
		return level.Level{}, fmt.Errorf("levelgen: generate: %w", err)
	}

	return ParseResponse(resp.Text())
}

// ParseResponse decodes generator JSON into a playable level.
func ParseResponse(text string) (level.Level, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return level.Level{}, errors.New("levelgen: empty response")
	}

	var w level.Wire
	if err := json.Unmarshal([]byte(text), &w); err != nil {
		return level.Level{}, fmt.Errorf("levelgen: decode response: %w", err)
	}

	lvl := level.FromWire(w)
	if err := level.Validate(lvl); err != nil {
		return level.Level{}, fmt.Errorf("levelgen: %w", err)
	}
	return lvl, nil
}

// Prompt returns the level request sent to the model.
func Prompt() string {
	return fmt.Sprintf(`Generate a JSON for a 2D platformer level.
The level is %g units long.
Ground level is at y=%g.
Include:
1. 'platforms': array of objects {x, y, width}. Height is always %g. Make sure they are reachable by jumping.
2. 'enemies': array of objects {x, y}. They are %gx%g size.
3. 'coins': array of objects {x, y}.
4. 'themeHue': a hex color string for the sky background.

Output MUST be valid JSON matching this schema.`,
		level.GeneratedLength, level.GroundY, level.PlatformHeight, level.EnemySize, level.EnemySize)
}

// ResponseSchema describes level.Wire to the model.
func ResponseSchema() *genai.Schema {
	point := func(extra ...string) *genai.Schema {
		s := &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"x": {Type: genai.TypeNumber},
				"y": {Type: genai.TypeNumber},
			},
		}
		for _, name := range extra {
			s.Properties[name] = &genai.Schema{Type: genai.TypeNumber}
		}
		return s
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"platforms": {Type: genai.TypeArray, Items: point("width")},
			"enemies":   {Type: genai.TypeArray, Items: point()},
			"coins":     {Type: genai.TypeArray, Items: point()},
			"themeHue":  {Type: genai.TypeString},
		},
	}
}

// NewSource picks the level source for a generated-level game.
// A disabled generator yields the built-in level. When the client cannot be
// built the error is returned along with a source that fails with it, so
// Resolve still substitutes the fallback.
func NewSource(ctx context.Context, apiKey string, cfg config.GeneratorConfig) (Source, error) {
	if !cfg.Enabled {
		return FallbackSource(), nil
	}
	src, err := NewGeminiSource(ctx, apiKey, cfg)
	if err != nil {
		return Unavailable(err), err
	}
	return src, nil
}

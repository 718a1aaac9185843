package levelgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/vovakirdan/desert-run/internal/config"
	"github.com/vovakirdan/desert-run/internal/level"
)

const sampleResponse = `{
  "platforms": [{"x": 400, "y": 450, "width": 120}, {"x": 700, "y": 350, "width": 80}],
  "enemies": [{"x": 900, "y": 520}],
  "coins": [{"x": 420, "y": 400}, {"x": 720, "y": 300}],
  "themeHue": "#f59e0b"
}`

type fakeModels struct {
	text  string
	err   error
	model string
	cfg   *genai.GenerateContentConfig
	ctx   context.Context
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, _ []*genai.Content,
	cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.ctx = ctx
	f.model = model
	f.cfg = cfg
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(f.text, genai.RoleModel)},
		},
	}, nil
}

type failingSource struct{ err error }

func (f failingSource) Name() string { return "broken" }

func (f failingSource) Generate(context.Context) (level.Level, error) {
	return level.Level{}, f.err
}

func testLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Prefix: "test"})
}

func TestParseResponse(t *testing.T) {
	lvl, err := ParseResponse(sampleResponse)
	require.NoError(t, err)

	require.Len(t, lvl.Platforms, 3)
	assert.Equal(t, level.NewPlatform(0, 550, 3000, 50), lvl.Platforms[0], "ground always prepended")
	assert.Equal(t, level.NewPlatform(400, 450, 120, 20), lvl.Platforms[1])

	require.Len(t, lvl.Enemies, 1)
	assert.Equal(t, -2.0, lvl.Enemies[0].VX)
	assert.Equal(t, 30.0, lvl.Enemies[0].W)

	require.Len(t, lvl.Coins, 2)
	assert.Equal(t, 20.0, lvl.Coins[0].H)

	assert.Equal(t, level.NewFlag(2800, 450), lvl.Flag)
	assert.Equal(t, "#f59e0b", lvl.ThemeColor)
}

func TestParseResponseEdgeCases(t *testing.T) {
	lvl, err := ParseResponse(`{"platforms": [], "enemies": [], "coins": []}`)
	require.NoError(t, err)
	assert.Len(t, lvl.Platforms, 1, "ground only")
	assert.Equal(t, level.DefaultTheme, lvl.ThemeColor)

	_, err = ParseResponse("")
	assert.Error(t, err)

	_, err = ParseResponse("{not json")
	assert.Error(t, err)

	_, err = ParseResponse(`{"platforms": [{"x": 1, "y": 2, "width": 0}]}`)
	assert.ErrorIs(t, err, level.ErrInvalidLevel)
}

func TestGeminiSourceGenerate(t *testing.T) {
	fake := &fakeModels{text: sampleResponse}
	src := newGeminiSource(fake, config.GeneratorConfig{Model: "test-model", TimeoutSeconds: 5})

	lvl, err := src.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "test-model", fake.model)
	assert.Equal(t, "application/json", fake.cfg.ResponseMIMEType)
	require.NotNil(t, fake.cfg.ResponseSchema)
	assert.Contains(t, fake.cfg.ResponseSchema.Properties, "themeHue")
	assert.Contains(t, fake.cfg.ResponseSchema.Properties["platforms"].Items.Properties, "width")

	deadline, ok := fake.ctx.Deadline()
	require.True(t, ok, "request must be bounded")
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)

	assert.Len(t, lvl.Platforms, 3)
	assert.Equal(t, SourceGenerated, src.Name())
}

func TestGeminiSourceDefaults(t *testing.T) {
	src := newGeminiSource(&fakeModels{}, config.GeneratorConfig{})
	assert.Equal(t, DefaultModel, src.Model())
	assert.Equal(t, defaultTimeout, src.timeout)
	assert.Contains(t, src.prompt, "3000 units long")
	assert.Contains(t, src.prompt, "y=550")
}

func TestGeminiSourceError(t *testing.T) {
	boom := errors.New("quota exceeded")
	src := newGeminiSource(&fakeModels{err: boom}, config.GeneratorConfig{})

	_, err := src.Generate(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestNewGeminiSourceRequiresKey(t *testing.T) {
	_, err := NewGeminiSource(context.Background(), "", config.GeneratorConfig{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewSource(t *testing.T) {
	ctx := context.Background()

	src, err := NewSource(ctx, "", config.GeneratorConfig{Enabled: true})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	_, genErr := src.Generate(ctx)
	assert.ErrorIs(t, genErr, ErrMissingAPIKey)

	src, err = NewSource(ctx, "key", config.GeneratorConfig{Enabled: false})
	assert.NoError(t, err)
	assert.Equal(t, SourceFallback, src.Name())
}

func TestNoticeFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		notice string
	}{
		{"no error", nil, ""},
		{"missing key", ErrMissingAPIKey, NoticeMissingKey},
		{"wrapped missing key", fmt.Errorf("startup: %w", ErrMissingAPIKey), NoticeMissingKey},
		{"client failure", errors.New("genai: dial failed"), NoticeFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.notice, NoticeFor(tc.err))
		})
	}
}

func TestResolveSuccess(t *testing.T) {
	var buf bytes.Buffer
	tpl := level.Fallback()
	tpl.ID = "canyon"

	res := Resolve(context.Background(), StaticSource{Level: tpl}, testLogger(&buf))

	assert.Equal(t, "canyon", res.Level.ID)
	assert.Equal(t, SourceFile, res.Source)
	assert.Empty(t, res.Notice)
	assert.NoError(t, res.Err)
	assert.False(t, res.Fallback())
	assert.Contains(t, buf.String(), "level resolved")
}

func TestResolveFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		src    Source
		notice string
	}{
		{"missing key", Unavailable(ErrMissingAPIKey), NoticeMissingKey},
		{"generator error", failingSource{err: errors.New("timeout")}, NoticeFailed},
		{"invalid level", StaticSource{Level: level.Level{ID: "empty"}}, NoticeFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			res := Resolve(context.Background(), tc.src, testLogger(&buf))

			assert.Equal(t, level.Fallback(), res.Level)
			assert.True(t, res.Fallback())
			assert.Equal(t, tc.notice, res.Notice)
			assert.Error(t, res.Err)
			assert.Contains(t, buf.String(), "using fallback level")
		})
	}
}

func TestResolveNilSource(t *testing.T) {
	res := Resolve(context.Background(), nil, nil)
	assert.Equal(t, "fallback", res.Level.ID)
	assert.Empty(t, res.Notice)
}

func TestStaticSourceReturnsCopies(t *testing.T) {
	src := FallbackSource()
	a, err := src.Generate(context.Background())
	require.NoError(t, err)
	a.Coins[0].Collected = true

	b, err := src.Generate(context.Background())
	require.NoError(t, err)
	assert.False(t, b.Coins[0].Collected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	assert.Empty(t, APIKeyFromEnv())

	t.Setenv("API_KEY", "second")
	assert.Equal(t, "second", APIKeyFromEnv())

	t.Setenv("GEMINI_API_KEY", "first")
	assert.Equal(t, "first", APIKeyFromEnv())
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DESERT_TEST_KEY=from-file\n"), 0o644))

	t.Setenv("DESERT_TEST_KEY", "")
	os.Unsetenv("DESERT_TEST_KEY")

	require.NoError(t, LoadEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("DESERT_TEST_KEY"))

	t.Setenv("DESERT_TEST_KEY", "preset")
	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "preset", os.Getenv("DESERT_TEST_KEY"), "existing variables win")
}

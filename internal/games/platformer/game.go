// Package platformer implements a side-scrolling platformer: the player runs
// and jumps across platforms, stomps patrolling enemies, collects coins and
// reaches the flag at the end of the level.
package platformer

import (
	"github.com/vovakirdan/desert-run/internal/config"
	"github.com/vovakirdan/desert-run/internal/core"
	"github.com/vovakirdan/desert-run/internal/level"
	"github.com/vovakirdan/desert-run/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the configuration with the CLI path and preset applied.
// Falls back to defaults when the custom file cannot be read.
func LoadConfig() (config.PlatformerConfig, error) {
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// Game adapts a World to the platform's frame contract.
type Game struct {
	id        string
	title     string
	generated bool // Levels come from the generator rather than the built-in level

	template level.Level
	world    *World
	cfg      config.PlatformerConfig
	runtime  core.RuntimeConfig
	paused   bool
}

// New creates the generated-level adventure.
func New() *Game {
	return &Game{id: "desert", title: "Desert Adventure", generated: true}
}

// NewClassic creates a game that always plays the built-in level.
func NewClassic() *Game {
	return &Game{id: "outpost", title: "Desert Outpost (classic)"}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// GeneratesLevels reports whether the platform should request a generated level.
func (g *Game) GeneratesLevels() bool {
	return g.generated
}

// LoadLevel sets the template for the next Reset.
func (g *Game) LoadLevel(lvl level.Level) {
	g.template = lvl
}

// Level returns the current template.
func (g *Game) Level() level.Level {
	return g.template
}

// Theme returns the theme color of the current level.
func (g *Game) Theme() string {
	return ThemeColor(g.template)
}

// World exposes the live world for inspection.
func (g *Game) World() *World {
	return g.world
}

// Reset starts a new round on a fresh copy of the template.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	//nolint:errcheck // LoadConfig already falls back to defaults
	g.cfg, _ = LoadConfig()

	if len(g.template.Platforms) == 0 {
		g.template = level.Fallback()
	}

	g.world = NewWorld(g.template, ParamsFromConfig(g.cfg))
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil || g.world.Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.world.Step(in.Controls)
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		dst.Clear()
		return
	}

	RenderWorld(g.world, dst, Viewport{
		CameraX:    g.world.CameraX,
		CellWidth:  g.cfg.Render.CellWidth,
		CellHeight: g.cfg.Render.CellHeight,
	})

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Paused: g.paused}
	}
	s := g.world.State()
	s.Paused = g.paused
	return s
}

var _ registry.LevelGame = (*Game)(nil)

// Register the games with the registry
func init() {
	registry.Register("desert", func() registry.Game {
		return New()
	})
	registry.Register("outpost", func() registry.Game {
		return NewClassic()
	})
}

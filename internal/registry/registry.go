// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/desert-run/internal/core"
	"github.com/vovakirdan/desert-run/internal/level"
)

// Game is the frame contract every game implements. A game is pure logic:
// the platform owns input mapping, timing and drawing to the terminal.
type Game interface {
	// ID names the game on the command line and in the scores database.
	ID() string
	Title() string

	// Reset starts a new round sized to cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the controls held during it.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState
}

// LevelGame is a Game played on a level the platform supplies.
// The platform resolves a level before the round starts and hands it over
// with LoadLevel, then calls Reset.
type LevelGame interface {
	Game

	// GeneratesLevels reports whether levels should be requested from the generator.
	GeneratesLevels() bool

	// LoadLevel sets the template for the next Reset.
	LoadLevel(lvl level.Level)

	// Level returns the current template.
	Level() level.Level

	// Theme returns the level's theme color for the renderer.
	Theme() string
}

// GameInfo describes a registered game without creating a round.
type GameInfo struct {
	ID              string
	Title           string
	GeneratesLevels bool
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory, usually from the game package's init.
// Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if lg, ok := g.(LevelGame); ok {
		info.GeneratesLevels = lg.GeneratesLevels()
	}
	factories[id] = f
	infos[id] = info
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

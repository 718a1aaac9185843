package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/desert-run/internal/core"
	_ "github.com/vovakirdan/desert-run/internal/games/platformer"
	"github.com/vovakirdan/desert-run/internal/level"
	"github.com/vovakirdan/desert-run/internal/levelgen"
	"github.com/vovakirdan/desert-run/internal/registry"
	"github.com/vovakirdan/desert-run/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHoldLatch(t *testing.T) {
	h := NewHoldLatch(3)

	if h.Controls() != (core.Controls{}) {
		t.Fatal("new latch should hold nothing")
	}

	h.Press(core.ActionRight)
	for i := 0; i < 3; i++ {
		if !h.Controls().Right {
			t.Fatalf("frame %d: right should still be held", i)
		}
		h.Advance()
	}
	if h.Controls().Right {
		t.Error("right should be released after the hold expires")
	}

	h.Press(core.ActionRight)
	h.Press(core.ActionLeft)
	if c := h.Controls(); !c.Left || c.Right {
		t.Errorf("pressing left should release right, got %+v", c)
	}

	h.Press(core.ActionJump)
	h.Release()
	if h.Controls() != (core.Controls{}) {
		t.Error("Release() should drop every control")
	}

	if NewHoldLatch(0).frames != DefaultHoldFrames {
		t.Error("zero frames should use the default")
	}
}

func TestKeyMapGameAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runes("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runes("d"), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{runes("p"), core.ActionPause},
		{runes("r"), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runes("m"), core.ActionBack},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		if got := keys.GameAction(tc.msg); got != tc.expected {
			t.Errorf("GameAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestKeyMapMenuAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScores},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runes("q"), MenuActionQuit},
		{runes("z"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := keys.MenuAction(tc.msg); got != tc.expected {
			t.Errorf("MenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

// testOptions isolates config lookups and storage in temp directories.
func testOptions(t *testing.T, lvl level.Level) (Options, *storage.Store) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return Options{
		Store:      store,
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 31, TickRate: 60},
		HoldFrames: 4,
		Sources: func(registry.LevelGame) levelgen.Source {
			return levelgen.StaticSource{Level: lvl}
		},
	}, store
}

func newTestGameModel(t *testing.T, opts Options) GameModel {
	t.Helper()
	g, err := registry.Create("outpost")
	if err != nil {
		t.Fatalf("registry.Create() failed: %v", err)
	}
	return NewGameModel(g.(registry.LevelGame), opts)
}

// deliver resolves the level synchronously and hands it to the model.
func deliver(t *testing.T, m GameModel) GameModel {
	t.Helper()
	res := levelgen.Resolve(context.Background(), m.opts.source(m.game), nil)
	next, _ := m.Update(levelLoadedMsg{id: m.loadID, result: res})
	return next.(GameModel)
}

func tick(m GameModel) (GameModel, tea.Cmd) {
	next, cmd := m.Update(TickMsg(time.Now()))
	return next.(GameModel), cmd
}

func press(m GameModel, msg tea.KeyMsg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func noGround() level.Level {
	lvl := level.Fallback()
	lvl.ID = "pit"
	lvl.Platforms = lvl.Platforms[1:]
	return lvl
}

func TestGameModelLosingRound(t *testing.T) {
	opts, store := testOptions(t, noGround())
	m := newTestGameModel(t, opts)

	if m.Status() != StatusLoading {
		t.Fatalf("new model should be loading, got %v", m.Status())
	}

	m = deliver(t, m)
	if m.Status() != StatusPlaying {
		t.Fatalf("expected playing after level load, got %v", m.Status())
	}
	if m.Result().Source != levelgen.SourceFile {
		t.Errorf("Result().Source = %q, expected file", m.Result().Source)
	}

	var cmd tea.Cmd
	for i := 0; i < 200 && m.Status() == StatusPlaying; i++ {
		m, cmd = tick(m)
	}

	if m.Status() != StatusGameOver {
		t.Fatalf("expected game over after falling, got %v", m.Status())
	}
	if cmd != nil {
		t.Error("ticks should stop when the round ends")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() should show the game over banner")
	}

	// Further ticks must not save again
	m, _ = tick(m)
	m, _ = tick(m)

	scores, err := store.AllScores("outpost")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved round, got %d", len(scores))
	}
	if scores[0].Outcome != "lost" || scores[0].LevelID != "pit" || scores[0].LevelSource != levelgen.SourceFile {
		t.Errorf("unexpected saved round: %+v", scores[0])
	}

	// Play again resolves a fresh level
	m = press(m, runes("r"))
	if m.Status() != StatusLoading {
		t.Fatalf("expected loading after restart, got %v", m.Status())
	}

	stale, _ := m.Update(levelLoadedMsg{id: m.loadID - 1, result: levelgen.Result{Level: level.Fallback()}})
	if stale.(GameModel).Status() != StatusLoading {
		t.Error("stale level results should be ignored")
	}

	m = deliver(t, m)
	if m.Status() != StatusPlaying || m.State().Score != 0 {
		t.Errorf("restart should start a fresh round, got %v score %d", m.Status(), m.State().Score)
	}
}

func TestGameModelVictory(t *testing.T) {
	lvl := level.Fallback()
	lvl.Flag = level.NewFlag(40, 380)
	opts, store := testOptions(t, lvl)

	m := deliver(t, newTestGameModel(t, opts))
	m, _ = tick(m)

	if m.Status() != StatusVictory {
		t.Fatalf("expected victory when spawning on the flag, got %v", m.Status())
	}
	if !strings.Contains(m.View(), "VICTORY!") {
		t.Error("View() should show the victory banner")
	}

	scores, _ := store.AllScores("outpost")
	if len(scores) != 1 || !scores[0].Won() {
		t.Errorf("expected one won round, got %+v", scores)
	}

	m = press(m, runes("m"))
	if !m.BackToMenu() {
		t.Error("m should return to the menu")
	}
}

func TestGameModelInputAndPause(t *testing.T) {
	opts, _ := testOptions(t, level.Fallback())
	m := deliver(t, newTestGameModel(t, opts))

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = tick(m)
	if !m.latch.Controls().Right {
		t.Error("right should stay held after one frame")
	}

	m = press(m, runes("p"))
	m, cmd := tick(m)
	if !m.State().Paused {
		t.Fatal("p should pause on the next tick")
	}
	if cmd == nil {
		t.Error("ticks continue while paused")
	}
	if m.latch.Controls() != (core.Controls{}) {
		t.Error("pausing releases held controls")
	}

	m = press(m, runes("p"))
	m, _ = tick(m)
	if m.State().Paused {
		t.Error("second p should resume")
	}
}

func TestGameModelQuit(t *testing.T) {
	opts, _ := testOptions(t, level.Fallback())
	m := newTestGameModel(t, opts)

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc while loading should return to the menu")
	}

	m = newTestGameModel(t, opts)
	m = press(m, runes("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

// blockingSource never produces a level; it waits for its context to end.
type blockingSource struct{}

func (blockingSource) Name() string { return levelgen.SourceGenerated }

func (blockingSource) Generate(ctx context.Context) (level.Level, error) {
	<-ctx.Done()
	return level.Level{}, ctx.Err()
}

// loadedMsg runs a batched load command and returns the level message it produced.
func loadedMsg(cmd tea.Cmd) (levelLoadedMsg, bool) {
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		return levelLoadedMsg{}, false
	}
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(levelLoadedMsg); ok {
			return msg, true
		}
	}
	return levelLoadedMsg{}, false
}

func TestGameModelEscCancelsFirstLoad(t *testing.T) {
	opts, _ := testOptions(t, level.Fallback())
	opts.Sources = func(registry.LevelGame) levelgen.Source { return blockingSource{} }
	m := newTestGameModel(t, opts)

	load := m.Init()
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Fatal("esc while loading should return to the menu")
	}

	done := make(chan levelLoadedMsg, 1)
	go func() {
		msg, _ := loadedMsg(load)
		done <- msg
	}()

	select {
	case msg := <-done:
		if !errors.Is(msg.result.Err, context.Canceled) {
			t.Errorf("first load should end cancelled, got %v", msg.result.Err)
		}
		if !msg.result.Fallback() {
			t.Error("a cancelled load resolves to the fallback level")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("esc did not cancel the first level load")
	}
}

func TestGameModelReleasesLoadContext(t *testing.T) {
	opts, _ := testOptions(t, noGround())
	m := newTestGameModel(t, opts)
	first := m.loadCtx

	m = deliver(t, m)
	if first.Err() == nil {
		t.Error("the load context should be cancelled once the level arrives")
	}
	if m.cancel != nil {
		t.Error("no load should be pending while playing")
	}

	for i := 0; i < 200 && m.Status() == StatusPlaying; i++ {
		m, _ = tick(m)
	}
	if m.Status() != StatusGameOver {
		t.Fatalf("expected game over, got %v", m.Status())
	}

	m = press(m, runes("r"))
	if m.loadCtx.Err() != nil {
		t.Error("play again should start with a live load context")
	}
	if m.cancel == nil {
		t.Error("play again should keep a cancel func for its load")
	}
}

func TestSessionNavigation(t *testing.T) {
	opts, _ := testOptions(t, level.Fallback())
	opts.Notice = levelgen.NoticeMissingKey

	s := NewSessionModel(opts)
	if s.Status() != StatusMenu {
		t.Fatalf("session should start at the menu, got %v", s.Status())
	}
	if !strings.Contains(s.View(), "No API key") {
		t.Error("menu should show the notice")
	}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.Status() != StatusScores {
		t.Fatalf("tab should open the scoreboard, got %v", s.Status())
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.Status() != StatusMenu {
		t.Fatalf("esc should return to the menu, got %v", s.Status())
	}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.Status() != StatusLoading {
		t.Fatalf("enter should start the first game, got %v", s.Status())
	}
	if cmd == nil {
		t.Error("starting a game should return the load command")
	}

	next, cmd = s.Update(runes("q"))
	if cmd == nil {
		t.Error("q should quit the program")
	}
	if next.(SessionModel).View() != "" {
		t.Error("quitting session renders nothing")
	}
}

func TestSessionStartGame(t *testing.T) {
	opts, _ := testOptions(t, level.Fallback())
	opts.StartGame = "outpost"

	s := NewSessionModel(opts)
	if s.Status() != StatusLoading {
		t.Errorf("StartGame should skip the menu, got %v", s.Status())
	}

	opts.StartGame = "nope"
	s = NewSessionModel(opts)
	if s.Status() != StatusMenu {
		t.Errorf("unknown StartGame should fall back to the menu, got %v", s.Status())
	}
}

func TestRenderScreen(t *testing.T) {
	screen := core.NewScreen(4, 2)
	screen.SetColored(0, 0, '·', core.ColorTheme)
	screen.SetColored(1, 0, '█', core.ColorBrown)
	screen.Set(0, 1, 'x')

	out := RenderScreen(screen, "#f59e0b")
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "·") || !strings.Contains(lines[0], "█") {
		t.Errorf("first line missing cells: %q", lines[0])
	}
	if !strings.Contains(lines[1], "x") {
		t.Errorf("second line missing cell: %q", lines[1])
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusMenu:     "menu",
		StatusLoading:  "loading",
		StatusPlaying:  "playing",
		StatusGameOver: "game over",
		StatusVictory:  "victory",
		StatusScores:   "scores",
	}
	for s, expected := range tests {
		if s.String() != expected {
			t.Errorf("Status(%d).String() = %q, expected %q", s, s.String(), expected)
		}
	}
}

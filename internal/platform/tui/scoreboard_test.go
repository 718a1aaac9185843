package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/desert-run/internal/level"
	"github.com/vovakirdan/desert-run/internal/levelgen"
	"github.com/vovakirdan/desert-run/internal/storage"
)

func seedRounds(t *testing.T, store *storage.Store) {
	t.Helper()
	rounds := []storage.ScoreEntry{
		{GameID: "desert", Score: 240, Outcome: "won", LevelID: "generated", LevelSource: levelgen.SourceGenerated},
		{GameID: "desert", Score: 30, Outcome: "lost", LevelID: "fallback", LevelSource: levelgen.SourceFallback},
		{GameID: "desert", Score: 110, Outcome: "lost", LevelID: "generated", LevelSource: levelgen.SourceGenerated},
		{GameID: "outpost", Score: 10, Outcome: "lost", LevelID: "fallback", LevelSource: levelgen.SourceFallback},
	}
	for _, r := range rounds {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
}

func boardKey(b ScoreboardModel, msg tea.KeyMsg) ScoreboardModel {
	next, _ := b.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardSummary(t *testing.T) {
	_, store := testOptions(t, level.Fallback())
	seedRounds(t, store)

	b := NewScoreboardModel(store, 100, 40)
	view := b.View()

	for _, want := range []string{"Desert Adventure (3)", "Rounds 3", "Wins 1 (33%)", "Best 240", "generated 2", "fallback 1", "file 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	shown := b.shown
	if len(shown) != 3 {
		t.Fatalf("expected 3 rounds, got %d", len(shown))
	}
	if shown[0].Score != 240 || shown[2].Score != 30 {
		t.Errorf("rounds should be best first, got %d..%d", shown[0].Score, shown[2].Score)
	}
}

func TestScoreboardSourceFilter(t *testing.T) {
	_, store := testOptions(t, level.Fallback())
	seedRounds(t, store)

	b := NewScoreboardModel(store, 100, 40)

	tests := []struct {
		filter string
		rounds int
	}{
		{levelgen.SourceGenerated, 2},
		{levelgen.SourceFile, 0},
		{levelgen.SourceFallback, 1},
		{"", 3},
	}

	for _, tc := range tests {
		b = boardKey(b, runes("f"))
		if sourceFilters[b.filter] != tc.filter {
			t.Fatalf("filter = %q, expected %q", sourceFilters[b.filter], tc.filter)
		}
		if len(b.shown) != tc.rounds {
			t.Errorf("filter %q: got %d rounds, expected %d", tc.filter, len(b.shown), tc.rounds)
		}
		for _, r := range b.shown {
			if tc.filter != "" && r.LevelSource != tc.filter {
				t.Errorf("filter %q listed a %q round", tc.filter, r.LevelSource)
			}
		}
	}

	b = boardKey(b, runes("f"))
	b = boardKey(b, runes("f"))
	if !strings.Contains(b.View(), "No rounds on file levels.") {
		t.Error("an empty filter should say so")
	}
}

func TestScoreboardSwitchGame(t *testing.T) {
	_, store := testOptions(t, level.Fallback())
	seedRounds(t, store)

	b := NewScoreboardModel(store, 100, 40)
	b = boardKey(b, runes("f")) // generated only

	b = boardKey(b, tea.KeyMsg{Type: tea.KeyTab})
	if len(b.shown) != 0 {
		t.Errorf("outpost has no generated rounds, got %d", len(b.shown))
	}
	if !strings.Contains(b.View(), "Rounds 1") {
		t.Error("summary should follow the selected game")
	}

	b = boardKey(b, tea.KeyMsg{Type: tea.KeyShiftTab})
	if len(b.shown) != 2 {
		t.Errorf("back on desert the filter still applies, got %d rounds", len(b.shown))
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	b := NewScoreboardModel(nil, 80, 24)
	if len(b.shown) != 0 {
		t.Error("no store means no rounds")
	}
	if !strings.Contains(b.View(), "Never played") {
		t.Error("an unplayed game should say so")
	}

	b = boardKey(b, tea.KeyMsg{Type: tea.KeyEsc})
	if !b.IsGoingBack() || b.View() != "" {
		t.Error("esc should leave the scoreboard")
	}
	b = boardKey(NewScoreboardModel(nil, 80, 24), runes("q"))
	if !b.IsQuitting() {
		t.Error("q should quit")
	}
}

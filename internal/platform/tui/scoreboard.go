package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/desert-run/internal/levelgen"
	"github.com/vovakirdan/desert-run/internal/registry"
	"github.com/vovakirdan/desert-run/internal/storage"
)

// sourceFilters are the level sources the board can narrow to.
// The empty filter shows every round.
var sourceFilters = []string{"", levelgen.SourceGenerated, levelgen.SourceFile, levelgen.SourceFallback}

var (
	boardTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardFrame  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardKeys are the scoreboard bindings.
type ScoreboardKeys struct {
	Scroll key.Binding
	Game   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Game, k.Filter, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultScoreboardKeys() ScoreboardKeys {
	return ScoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Game:   key.NewBinding(key.WithKeys("tab", "right", "l", "shift+tab", "left", "h"), key.WithHelp("tab/←/→", "game")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "level source")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the recorded rounds of one game at a time, with
// the game's totals and a per-level-source breakdown.
type ScoreboardModel struct {
	store *storage.Store
	games []registry.GameInfo
	game  int
	stats map[string]*storage.GameStats

	rounds   []storage.ScoreEntry // Every round of the selected game, best first
	shown    []storage.ScoreEntry // Rounds passing the source filter
	bySource map[string]int
	filter   int

	table  table.Model
	help   help.Model
	keys   ScoreboardKeys
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads the board for the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		stats:  map[string]*storage.GameStats{},
		help:   help.New(),
		keys:   defaultScoreboardKeys(),
		width:  width,
		height: height,
	}
	if store != nil {
		if stats, err := store.GetAllGamesStats(); err == nil {
			m.stats = stats
		}
	}
	m.table = newScoreTable(height)
	m.load()
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Result", Width: 7},
			{Title: "Level", Width: 22},
			{Title: "Played", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-12)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)
	return t
}

// load reads every round of the selected game and regroups it.
func (m *ScoreboardModel) load() {
	m.rounds = nil
	if m.store != nil && len(m.games) > 0 {
		if rounds, err := m.store.AllScores(m.games[m.game].ID); err == nil {
			m.rounds = rounds
		}
	}

	m.bySource = make(map[string]int, len(sourceFilters))
	for _, r := range m.rounds {
		m.bySource[r.LevelSource]++
	}
	m.applyFilter()
}

func (m *ScoreboardModel) applyFilter() {
	want := sourceFilters[m.filter]
	m.shown = make([]storage.ScoreEntry, 0, len(m.rounds))
	for _, r := range m.rounds {
		if want == "" || r.LevelSource == want {
			m.shown = append(m.shown, r)
		}
	}

	rows := make([]table.Row, len(m.shown))
	for i, r := range m.shown {
		result := "lost"
		if r.Won() {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.Score),
			result,
			levelLabel(r),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.game = (m.game + step + len(m.games)) % len(m.games)
	m.load()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % len(sourceFilters)
			m.applyFilter()
		case key.Matches(msg, m.keys.Game):
			switch msg.String() {
			case "shift+tab", "left", "h":
				m.switchGame(-1)
			default:
				m.switchGame(1)
			}
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(3, msg.Height-12))
		m.help.Width = msg.Width
	}
	return m, nil
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.gameTabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.summary(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.sourceTabs(), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.shown) == 0 {
		body = boardDim.Italic(true).Padding(1, 4).Render(m.emptyText())
	}
	b.WriteString(centerText(boardFrame.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(boardDim.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) gameTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		label := fmt.Sprintf("%s (%d)", g.Title, m.statsFor(g.ID).GamesCount)
		if i == m.game {
			tabs[i] = boardActive.Render(label)
		} else {
			tabs[i] = boardDim.Render(" " + label + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// summary is the totals line of the selected game.
func (m ScoreboardModel) summary() string {
	if len(m.games) == 0 {
		return "No games registered."
	}
	st := m.statsFor(m.games[m.game].ID)
	if st.GamesCount == 0 {
		return boardDim.Render("Never played")
	}
	return fmt.Sprintf("Rounds %d   Wins %d (%.0f%%)   Best %d   Avg %.1f",
		st.GamesCount, st.Wins, st.WinRate()*100, st.HighScore, st.AvgScore)
}

func (m ScoreboardModel) sourceTabs() string {
	parts := make([]string, len(sourceFilters))
	for i, src := range sourceFilters {
		label := fmt.Sprintf("all %d", len(m.rounds))
		if src != "" {
			label = fmt.Sprintf("%s %d", src, m.bySource[src])
		}
		if i == m.filter {
			parts[i] = boardActive.Render(label)
		} else {
			parts[i] = boardDim.Render(label)
		}
	}
	return "Levels: " + strings.Join(parts, " ")
}

func (m ScoreboardModel) emptyText() string {
	if m.filter == 0 {
		return "No rounds recorded yet.\nReach the flag to set a high score!"
	}
	return fmt.Sprintf("No rounds on %s levels.", sourceFilters[m.filter])
}

func (m ScoreboardModel) statsFor(gameID string) storage.GameStats {
	if st, ok := m.stats[gameID]; ok && st != nil {
		return *st
	}
	return storage.GameStats{GameID: gameID}
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// levelLabel names the level a round was played on.
func levelLabel(e storage.ScoreEntry) string {
	switch {
	case e.LevelID != "" && e.LevelSource != "" && e.LevelSource != e.LevelID:
		return e.LevelID + " (" + e.LevelSource + ")"
	case e.LevelID != "":
		return e.LevelID
	default:
		return e.LevelSource
	}
}

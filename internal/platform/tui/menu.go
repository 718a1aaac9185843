package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/desert-run/internal/core"
	"github.com/vovakirdan/desert-run/internal/registry"
	"github.com/vovakirdan/desert-run/internal/storage"
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	GameID    string // Empty for non-game entries
	Title     string
	HighScore int
	scores    bool
	quit      bool
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	notice         string
	keys           KeyMap
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a menu listing every registered game.
// The notice, when set, is shown under the title.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, notice string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+2)

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			//nolint:errcheck // A missing high score is shown as zero
			item.HighScore, _ = store.HighScore(g.ID)
		}
		items = append(items, item)
	}
	items = append(items,
		MenuItem{Title: "High Scores", scores: true},
		MenuItem{Title: "Quit", quit: true},
	)

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		notice: notice,
		keys:   DefaultKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionScores:
		m.openScoreboard = true

	case MenuActionSelect:
		item := m.items[m.cursor]
		switch {
		case item.quit:
			m.quitting = true
		case item.scores:
			m.openScoreboard = true
		default:
			m.selected = &item
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("D E S E R T   R U N"), m.width))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(centerText(noticeStyle.Render(m.notice), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		line := "  " + item.Title
		if item.GameID != "" && item.HighScore > 0 {
			line += menuDim.Render(fmt.Sprintf("  (best %d)", item.HighScore))
		}
		if i == m.cursor {
			line = menuCursor.Render("> " + item.Title)
			if item.GameID != "" && item.HighScore > 0 {
				line += menuDim.Render(fmt.Sprintf("  (best %d)", item.HighScore))
			}
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDim.Render("↑/↓: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected game, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Items returns the menu entries.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

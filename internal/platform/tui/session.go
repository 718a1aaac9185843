package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/desert-run/internal/registry"
)

// SessionModel manages the full flow: menu -> game -> menu, plus the
// scoreboard. It is the top-level model for local and SSH sessions.
type SessionModel struct {
	opts       Options
	log        *log.Logger
	status     Status
	menu       MenuModel
	scoreboard ScoreboardModel
	game       *GameModel
	quitting   bool
}

// NewSessionModel creates a session starting at the menu, or directly in
// opts.StartGame when set.
func NewSessionModel(opts Options) SessionModel {
	m := SessionModel{
		opts:   opts,
		log:    opts.logger(),
		status: StatusMenu,
		menu:   NewMenuModel(opts.Store, opts.Runtime, opts.Notice),
	}
	if opts.StartGame != "" {
		m.startGame(opts.StartGame)
	}
	return m
}

// startGame creates the game model. Unknown ids leave the session at the menu.
func (m *SessionModel) startGame(id string) bool {
	g, err := registry.Create(id)
	if err != nil {
		m.log.Warn("cannot start game", "game", id, "error", err)
		return false
	}
	lg, ok := g.(registry.LevelGame)
	if !ok {
		m.log.Warn("game does not accept levels", "game", id)
		return false
	}

	gm := NewGameModel(lg, m.opts)
	m.game = &gm
	m.status = StatusLoading
	return true
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.status == StatusScores:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.status = StatusScores
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.scoreboard.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		if !m.startGame(selected.GameID) {
			m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime, m.opts.Notice)
			return m, nil
		}
		return m, m.game.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is open.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}
	m.status = m.game.Status()

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu rebuilds the menu so high scores are fresh.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.status = StatusMenu
	m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime, m.opts.Notice)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.game != nil:
		return m.game.View()
	case m.status == StatusScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Status returns the screen the session is showing.
func (m SessionModel) Status() Status {
	return m.status
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

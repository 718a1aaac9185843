package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/desert-run/internal/core"
	"github.com/vovakirdan/desert-run/internal/levelgen"
	"github.com/vovakirdan/desert-run/internal/registry"
	"github.com/vovakirdan/desert-run/internal/storage"
)

// Status is the screen the player is looking at.
type Status int

const (
	StatusMenu Status = iota
	StatusLoading
	StatusPlaying
	StatusGameOver
	StatusVictory
	StatusScores
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusLoading:
		return "loading"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game over"
	case StatusVictory:
		return "victory"
	case StatusScores:
		return "scores"
	default:
		return "unknown"
	}
}

// SourceFunc picks the level source for a game.
type SourceFunc func(game registry.LevelGame) levelgen.Source

// Options configures the frontend.
type Options struct {
	Store      *storage.Store // Optional; scores are not saved without it
	Logger     *log.Logger    // Optional
	Runtime    core.RuntimeConfig
	HoldFrames int
	Sources    SourceFunc // Defaults to the built-in level
	Notice     string     // Advisory shown in the menu
	StartGame  string     // Skip the menu and start this game
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

func (o Options) source(game registry.LevelGame) levelgen.Source {
	if o.Sources == nil {
		return levelgen.FallbackSource()
	}
	return o.Sources(game)
}

// levelLoadedMsg carries a resolved level back to the model that asked for it.
type levelLoadedMsg struct {
	id     int
	result levelgen.Result
}

// resolveCmd resolves a level off the UI goroutine.
func resolveCmd(ctx context.Context, id int, src levelgen.Source, logger *log.Logger) tea.Cmd {
	return func() tea.Msg {
		return levelLoadedMsg{id: id, result: levelgen.Resolve(ctx, src, logger)}
	}
}

var (
	bannerWin  = core.ColorBrightGreen
	bannerLost = core.ColorBrightRed
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// GameModel runs one game: it resolves a level, plays rounds on it and
// shows the result. The session switches back to the menu when asked.
type GameModel struct {
	game    registry.LevelGame
	opts    Options
	log     *log.Logger
	screen  *core.Screen
	spinner spinner.Model
	keys    KeyMap
	help    help.Model

	status Status
	state  core.GameState
	result levelgen.Result

	latch        HoldLatch
	pause        bool // Pause toggle requested for the next tick
	noticeFrames int  // Frames left to show the level notice

	loadID     int
	loadCtx    context.Context
	cancel     context.CancelFunc
	scoreSaved bool
	backToMenu bool
	quitting   bool
}

// NewGameModel creates a model for the given game. The first level
// resolve starts with Init.
func NewGameModel(game registry.LevelGame, opts Options) GameModel {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	m := GameModel{
		game:    game,
		opts:    opts,
		log:     opts.logger().With("game", game.ID()),
		screen:  core.NewScreen(opts.Runtime.ScreenW, playHeight(opts.Runtime.ScreenH)),
		spinner: sp,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		latch:   NewHoldLatch(opts.HoldFrames),
	}
	m.status = StatusLoading
	m.loadID = 1
	m.loadCtx, m.cancel = context.WithCancel(context.Background())
	return m
}

// playHeight leaves the bottom row for the help bar.
func playHeight(h int) int {
	return core.Max(1, h-1)
}

// Init starts resolving the first level. Leaving the loading screen
// cancels it.
func (m GameModel) Init() tea.Cmd {
	return m.loadCmd()
}

// startLoading resolves a fresh level for the next round.
func (m *GameModel) startLoading() tea.Cmd {
	m.stopLoading()
	m.loadID++
	m.status = StatusLoading
	m.loadCtx, m.cancel = context.WithCancel(context.Background())
	return m.loadCmd()
}

func (m GameModel) loadCmd() tea.Cmd {
	return tea.Batch(m.spinner.Tick, resolveCmd(m.loadCtx, m.loadID, m.opts.source(m.game), m.log))
}

func (m *GameModel) stopLoading() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case levelLoadedMsg:
		return m.handleLevel(msg)

	case spinner.TickMsg:
		if m.status != StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.GameAction(msg)
	if action == core.ActionQuit {
		m.stopLoading()
		m.quitting = true
		return m, nil
	}

	switch m.status {
	case StatusLoading:
		if action == core.ActionBack {
			m.stopLoading()
			m.backToMenu = true
		}

	case StatusPlaying:
		switch action {
		case core.ActionLeft, core.ActionRight, core.ActionJump:
			m.latch.Press(action)
		case core.ActionPause:
			m.pause = true
		case core.ActionBack:
			m.log.Info("round abandoned", "score", m.state.Score)
			m.backToMenu = true
		}

	case StatusGameOver, StatusVictory:
		switch action {
		case core.ActionRestart:
			return m, m.startLoading()
		case core.ActionBack:
			m.backToMenu = true
		}
	}

	return m, nil
}

// handleLevel starts a round on a freshly resolved level.
// Results of superseded or cancelled loads are dropped.
func (m GameModel) handleLevel(msg levelLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.loadID || m.status != StatusLoading || m.backToMenu || m.quitting {
		return m, nil
	}
	m.stopLoading()

	m.result = msg.result
	m.game.LoadLevel(msg.result.Level)
	m.game.Reset(m.opts.Runtime)

	m.state = m.game.State()
	m.status = StatusPlaying
	m.scoreSaved = false
	m.pause = false
	m.latch.Release()
	m.noticeFrames = 0
	if msg.result.Notice != "" {
		m.noticeFrames = 3 * m.opts.Runtime.TickRate
	}

	m.log.Info("round started", "level", msg.result.Level.ID, "source", msg.result.Source)
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// handleTick runs one simulation frame. Ticks stop once the round ends.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.status != StatusPlaying || m.backToMenu || m.quitting {
		return m, nil
	}

	in := core.InputFrame{Controls: m.latch.Controls(), Pause: m.pause}
	m.pause = false

	result := m.game.Step(in)
	m.state = result.State
	if m.state.Paused {
		m.latch.Release()
	} else {
		m.latch.Advance()
	}

	for _, e := range result.Events {
		if e == core.EventCoin || e == core.EventStomp {
			m.log.Debug("event", "kind", e, "score", m.state.Score)
		}
	}

	if m.state.GameOver {
		m.finishRound()
		return m, nil
	}

	if m.noticeFrames > 0 {
		m.noticeFrames--
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// finishRound records the outcome exactly once.
func (m *GameModel) finishRound() {
	if m.state.Won() {
		m.status = StatusVictory
	} else {
		m.status = StatusGameOver
	}
	m.noticeFrames = 0

	m.log.Info("round ended", "outcome", m.state.Outcome, "score", m.state.Score)

	if m.scoreSaved || m.opts.Store == nil {
		m.scoreSaved = true
		return
	}
	m.scoreSaved = true

	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		GameID:      m.game.ID(),
		Score:       m.state.Score,
		Outcome:     m.state.Outcome.String(),
		LevelID:     m.game.Level().ID,
		LevelSource: m.result.Source,
	})
	if err != nil {
		m.log.Warn("could not save score", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.status == StatusLoading {
		return m.loadingView()
	}

	m.game.Render(m.screen)

	switch m.status {
	case StatusVictory:
		drawBanner(m.screen, "VICTORY!", bannerWin,
			fmt.Sprintf("Score: %d", m.state.Score), "R: play again   M: menu")
	case StatusGameOver:
		drawBanner(m.screen, "GAME OVER", bannerLost,
			fmt.Sprintf("Score: %d", m.state.Score), "R: play again   M: menu")
	default:
		if m.noticeFrames > 0 {
			m.screen.DrawTextColored(1, m.screen.Height()-1, m.result.Notice, core.ColorYellow)
		}
	}

	return RenderScreen(m.screen, m.game.Theme()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m GameModel) loadingView() string {
	text := "Loading level..."
	if m.game.GeneratesLevels() {
		text = "Generating a new level..."
	}
	pad := strings.Repeat("\n", core.Max(0, m.opts.Runtime.ScreenH/2-1))
	return pad + centerText(m.spinner.View()+" "+text, m.opts.Runtime.ScreenW) + "\n\n" +
		centerText(helpStyle.Render("esc: menu  q: quit"), m.opts.Runtime.ScreenW)
}

// drawBanner draws a boxed message in the center of the screen.
func drawBanner(dst *core.Screen, title string, color core.Color, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 6
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, color)
	for i, l := range lines {
		dst.DrawText(box.X+(boxW-len(l))/2, box.Y+3+i, l)
	}
}

// Status returns the current screen.
func (m GameModel) Status() Status {
	return m.status
}

// State returns the last game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// Result returns the last level resolution.
func (m GameModel) Result() levelgen.Result {
	return m.result
}

// BackToMenu reports whether the player asked to leave the game.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

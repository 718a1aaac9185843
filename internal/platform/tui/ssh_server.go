package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/desert-run/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// ErrServerFull is reported to a player who connects while every seat is taken.
var ErrServerFull = errors.New("server is full, try again later")

// SSHServerConfig configures remote play.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // Generated on first start; defaults to ~/.desert/host_key
	DBPath      string        // Shared leaderboard
	IdleTimeout time.Duration // Idle connections are closed after this
	MaxSessions int           // 0 means unlimited

	// Session is the template for every player's options.
	// Store, Logger and screen size are filled in per connection.
	Session Options
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.desert/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// hostKeyPath resolves where the server keeps its host key.
func (c SSHServerConfig) hostKeyPath() (string, error) {
	if c.HostKeyPath != "" {
		return c.HostKeyPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: no home directory for the host key: %w", err)
	}
	return filepath.Join(home, ".desert", "host_key"), nil
}

// SSHServer runs one menu session per SSH connection. All players share
// the scores database.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	log    *log.Logger

	mu     sync.Mutex
	active int
}

// NewSSHServer opens the shared store and prepares the server.
// A store that cannot be opened only disables score saving.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Session.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "desert-ssh"})
	}

	keyPath, err := cfg.hostKeyPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(keyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: host key directory: %w", err)
	}

	s := &SSHServer{config: cfg, log: logger}
	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("playing without a scores database", "error", err)
		s.store = nil
	}

	// Middlewares run last to first: sessions are counted before the program starts.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			s.seatMiddleware,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("tui: create SSH server: %w", err)
	}
	return s, nil
}

// sessionOptions builds one player's options from the template.
func (s *SSHServer) sessionOptions(user string, width, height int) Options {
	opts := s.config.Session
	opts.Store = s.store
	opts.Logger = s.log.With("user", user)
	opts.StartGame = ""
	opts.Runtime.ScreenW = width
	opts.Runtime.ScreenH = height
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	return opts
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "desert needs a terminal: connect with ssh -t")
		return nil, nil
	}
	opts := s.sessionOptions(sess.User(), pty.Window.Width, pty.Window.Height)
	return NewSessionModel(opts), []tea.ProgramOption{tea.WithAltScreen()}
}

// admit takes a seat, or reports that the server is full.
func (s *SSHServer) admit() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.config.MaxSessions > 0 && s.active >= s.config.MaxSessions {
		return s.active, ErrServerFull
	}
	s.active++
	return s.active, nil
}

func (s *SSHServer) leave() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active--
	return s.active
}

// Active returns the number of connected players.
func (s *SSHServer) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// seatMiddleware limits concurrent players and logs each connection.
func (s *SSHServer) seatMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		l := s.log.With("user", sess.User(), "remote", sess.RemoteAddr().String())

		active, err := s.admit()
		if err != nil {
			l.Warn("connection refused", "active", active)
			wish.Fatalln(sess, err)
			return
		}

		start := time.Now()
		l.Info("player connected", "active", active)
		defer func() {
			l.Info("player left", "active", s.leave(), "played", time.Since(start).Round(time.Second))
		}()
		next(sess)
	}
}

// ListenAndServe serves until ctx is done, then shuts down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.log.Info("listening", "address", s.config.Address, "max_sessions", s.config.MaxSessions)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("shutting down", "active", s.Active())
		return s.Shutdown()
	}
}

// Shutdown stops accepting players and waits for open sessions.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-run/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets players connect and play.

Each connection gets its own menu. Every player shares the server's
scores database, and the generator settings (--offline, .env key)
apply to all of them.

The host key is read from --host-key, or generated at ~/.desert/host_key.

Examples:
  desert serve                           # Listen on :23234
  desert serve --ssh :2222 --max-sessions 8
  desert serve --host-key ./my_host_key
  desert serve --db ./scores.db --log ./server.log`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", defaults.MaxSessions, "Maximum concurrent players (0 = unlimited)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The server opens its own store; sessions get it per connection.
	opts, err := sessionOptions(ctx, nil, "")
	if err != nil {
		return err
	}
	if flagLogPath == "" {
		opts.Logger = nil // Log to stderr
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.MaxSessions = flagMaxSessions
	cfg.Session = opts
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Serving Desert Run on %s\n", server.Addr())
	fmt.Printf("Connect with: %s\n", connectHint(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}

// connectHint turns a listen address into the ssh command players run.
func connectHint(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh -t " + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("ssh -t %s -p %s", host, port)
}

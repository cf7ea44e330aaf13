package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/domino-path/internal/games/dominoes"
	"github.com/vovakirdan/domino-path/internal/level"
	"github.com/vovakirdan/domino-path/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a level picker and its own
puzzle state.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dominoes/host_key

Examples:
  dominoes serve                           # Listen on :23234 with auto-generated key
  dominoes serve --ssh :2222               # Listen on port 2222
  dominoes serve --host-key ./my_host_key  # Use specific host key
  dominoes serve --levels ./levels         # Serve a custom level set

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("dominoes-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	dominoes.SetLogger(logger.WithPrefix("dominoes"))

	levels, err := level.Load(flagLevels)
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.Levels = levels
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Printf("Starting Domino Path SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

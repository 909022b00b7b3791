package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-beats/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the beats SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a chart picker menu.
Lane keys come from the connecting user's profile (see 'beats bind --user'),
falling back to the configured keys. The hit sound is the terminal bell.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.beats/host_key

Examples:
  beats serve                           # Listen on :23234 with auto-generated key
  beats serve --ssh :2222               # Listen on port 2222
  beats serve --host-key ./my_host_key  # Use specific host key
  beats serve --db ./profiles.db        # Use specific database

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
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Beats = beatsCfg
	cfg.Seed = flagSeed

	// The server has no alt screen, so it logs to stderr unless a file was given
	srvLogger := logger
	if flagLogFile == "" {
		srvLogger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "beats-ssh",
			Level:           logger.GetLevel(),
		})
	}

	server, err := tui.NewSSHServer(cfg, srvLogger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting beats SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/bat-adventure/internal/config"
	"github.com/vovakirdan/bat-adventure/internal/platform/tui"
	"github.com/vovakirdan/bat-adventure/internal/platform/web"
	"github.com/vovakirdan/bat-adventure/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagHTTPAddr    string
	flagIdleTimeout int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the BAT ADVENTURE SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game, starting on the main menu.
Rounds are stored per-server (all users share the same leaderboard) and
recorded under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.batadventure/host_key

With --http, the leaderboard is also served as JSON:
  GET /healthz
  GET /api/rounds/{single|multi}?limit=N
  GET /api/stats

Examples:
  batadventure serve                           # Listen on :23234 with auto-generated key
  batadventure serve --ssh :2222               # Listen on port 2222
  batadventure serve --host-key ./my_host_key  # Use specific host key
  batadventure serve --http :8080              # Also serve the leaderboard API

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard HTTP address (disabled if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "batadventure",
	})

	gameCfg, err := config.Load(flagServeConfig)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open rounds database", "error", err)
		// Continue without storage
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = flagSSHAddr
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sshCfg.TickRate = flagFPS
	sshCfg.Game = gameCfg

	sshServer, err := tui.NewSSHServer(sshCfg, store, logger.WithPrefix("bat-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sshServer.ListenAndServe(ctx)
	})

	if flagHTTPAddr != "" {
		if store == nil {
			logger.Warn("HTTP leaderboard disabled without a database")
		} else {
			httpServer := web.NewServer(flagHTTPAddr, store, logger.WithPrefix("bat-http"))
			g.Go(func() error {
				return httpServer.ListenAndServe(ctx)
			})
		}
	}

	fmt.Printf("Starting BAT ADVENTURE SSH server on %s\n", sshServer.Addr())
	if _, port, splitErr := net.SplitHostPort(sshServer.Addr()); splitErr == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	return g.Wait()
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the variant menu.
Finished games are recorded in the server's results database.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key in the data directory

Examples:
  t2048 serve                           # Listen on :23234
  t2048 serve --ssh :2222               # Listen on port 2222
  t2048 serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := appConfig
	if cmd.Flags().Changed("ssh") {
		cfg.Server.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.Server.HostKeyPath = flagHostKey
	}

	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		logger.Error("could not create server", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Connect with: ssh localhost -p <port> (listening on %s)\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

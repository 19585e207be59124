// t2048 plays 2048 in the terminal, locally or over SSH.
//
// Usage:
//
//	t2048 list                 - List board variants
//	t2048 play [variant]       - Play a variant (default: 2048)
//	t2048 menu                 - Pick a variant interactively
//	t2048 replay <moves...>    - Apply moves headlessly and print each board
//	t2048 history [variant]    - Show recent finished games
//	t2048 stats                - Summarise finished games per variant
//	t2048 serve                - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: search user and local dirs)
//	--fps <rate>        - Tick rate
//	--seed <value>      - RNG seed for reproducible games
//	--db <path>         - Results database path
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Set by the root PersistentPreRunE
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the sliding-tile puzzle 2048 for the terminal.

Slide the board with the arrow keys; equal tiles merge. Reach 2048 to win,
fill the board to lose.

Available commands:
  list     - Show board variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  replay   - Apply a move list headlessly
  history  - Show finished games
  stats    - Summarise finished games
  serve    - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play 2048_big
  t2048 play --load puzzle.yaml
  t2048 replay --seed 42 left up right
  t2048 serve`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (default from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads configuration, applies flag overrides, builds the logger and
// registers the configured variants.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Game.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger = newLogger(cfg.Log.Level)
	appConfig = cfg
	t2048.RegisterVariants(cfg.AllVariants())

	logger.Debug("configuration loaded", "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height), "db", cfg.Storage.DBPath)
	return nil
}

func newLogger(level string) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		l.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

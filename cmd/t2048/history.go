package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagHistoryLimit int
	flagInteractive  bool
	flagClear        bool
)

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Show recently finished games",
	Long: `Display recently finished games, newest first. Without a variant every
board is listed.

With --clear the history of the variant (or of every board) is deleted
instead.

Examples:
  t2048 history
  t2048 history 2048_big --limit 5
  t2048 history -i          # interactive browser
  t2048 history --clear 2048_big`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of games to show")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive history browser")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded games")
}

func runHistory(_ *cobra.Command, args []string) {
	variant := ""
	if len(args) == 1 {
		variant = args[0]
		if !registry.Exists(variant) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
			fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available boards.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := clearHistory(os.Stdout, store, variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagInteractive {
		cfg := runtimeConfig()
		if _, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	results, err := store.RecentResults(variant, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		return
	}

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Finish a game with 't2048 play' to start the history.")
		return
	}

	fmt.Printf("  %-10s  %-6s  %6s  %6s  %s\n", "Variant", "Result", "Max", "Moves", "Date")
	fmt.Printf("  %-10s  %-6s  %6s  %6s  %s\n", "-------", "------", "---", "-----", "----")
	for _, r := range results {
		fmt.Printf("  %-10s  %-6s  %6d  %6d  %s\n",
			r.Variant, r.Outcome(), r.MaxTile, r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// clearHistory deletes the results of variant, or of every variant when it
// is empty.
func clearHistory(w io.Writer, store *storage.Store, variant string) error {
	if err := store.ClearResults(variant); err != nil {
		return err
	}
	if variant == "" {
		fmt.Fprintln(w, "Cleared the history of every board.")
	} else {
		fmt.Fprintf(w, "Cleared the history of %s.\n", variant)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise finished games per variant",
	Long: `Display games played, wins, best tile and average moves for every
registered board.`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Printf("  %-12s  %5s  %5s  %5s  %5s  %6s\n", "Board", "Games", "Wins", "Rate", "Best", "Moves")
	fmt.Printf("  %-12s  %5s  %5s  %5s  %5s  %6s\n", "-----", "-----", "----", "----", "----", "-----")
	for _, g := range registry.List() {
		s, ok := all[g.ID]
		if !ok {
			s = &storage.VariantStats{Variant: g.ID}
		}
		fmt.Printf("  %-12s  %5d  %5d  %4.0f%%  %5d  %6.0f\n",
			g.ID, s.Games, s.Wins, s.WinRate()*100, s.BestTile, s.AvgMoves)
	}
}

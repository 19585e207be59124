package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var flagLoad string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play 2048",
	Long: `Start playing the given board variant (default: 2048).

Controls:
  Arrows/WASD/HJKL  - Slide
  P/Space           - Pause
  R                 - Restart (after the game ends)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

The final board is printed when the game exits.

A pre-populated board can be loaded from YAML:

  values: true        # optional: entries are 2, 4, 8... instead of exponents
  grid:
    - [2, 2, 0, 0]
    - [0, 4, 0, 0]

Examples:
  t2048 play
  t2048 play 2048_big
  t2048 play --seed 42
  t2048 play --load puzzle.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLoad, "load", "", "Start from a pre-populated grid YAML")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := config.ClassicID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available boards.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagLoad != "" {
		if err := preload(game, flagLoad); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store := openStoreOrWarn()

	runErr := tui.Run(game, store, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Print(tui.Summary(game))
}

// preload applies a grid file to a 2048 game.
func preload(game registry.Game, path string) error {
	g, ok := game.(*t2048.Game)
	if !ok {
		return fmt.Errorf("variant %q does not support --load", game.ID())
	}

	grid, err := config.LoadGrid(path)
	if err != nil {
		return err
	}
	return g.SetPreload(grid)
}

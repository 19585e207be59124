package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	flagReplayWidth  int
	flagReplayHeight int
	flagReplayLoad   string
)

var replayCmd = &cobra.Command{
	Use:   "replay <move>...",
	Short: "Apply moves headlessly and print the board after each",
	Long: `Build a board, apply the given moves in order and print the board and
phase after every move. With a fixed --seed the output is reproducible.

Moves are up, down, left, right (or u, d, l, r). Moves given after the game
has ended are reported and skipped.

Examples:
  t2048 replay --seed 42 left left up
  t2048 replay --seed 7 --width 3 --height 3 l u r d
  t2048 replay --load puzzle.yaml left`,
	Args: cobra.MinimumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagReplayWidth, "width", 0, "Board width (default from config)")
	replayCmd.Flags().IntVar(&flagReplayHeight, "height", 0, "Board height (default from config)")
	replayCmd.Flags().StringVar(&flagReplayLoad, "load", "", "Start from a pre-populated grid YAML")
}

func runReplay(_ *cobra.Command, args []string) {
	moves := make([]board.Direction, 0, len(args))
	for _, arg := range args {
		d, err := board.ParseDirection(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		moves = append(moves, d)
	}

	seed := appConfig.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b, err := replayBoard(seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seed %d\n", seed)
	replay(os.Stdout, b, moves)
}

// replayBoard builds the starting board from --load or the configured size.
func replayBoard(seed int64) (*board.Board, error) {
	if flagReplayLoad != "" {
		grid, err := config.LoadGrid(flagReplayLoad)
		if err != nil {
			return nil, err
		}
		return board.Load(grid, board.NewSeededRandom(seed))
	}

	w, h := appConfig.Board.Width, appConfig.Board.Height
	if flagReplayWidth > 0 {
		w = flagReplayWidth
	}
	if flagReplayHeight > 0 {
		h = flagReplayHeight
	}

	b := board.NewSeeded(w, h, seed)
	b.Initialize()
	return b, nil
}

// replay applies moves to b, writing the board after each one. It returns
// the number of moves applied.
func replay(w io.Writer, b *board.Board, moves []board.Direction) int {
	fmt.Fprintf(w, "start: %s\n%s", b.State(), b)

	applied := 0
	for i, d := range moves {
		if b.State().IsOver() {
			fmt.Fprintf(w, "game over, skipping %d remaining move(s)\n", len(moves)-i)
			break
		}
		b.Step(d)
		applied++
		fmt.Fprintf(w, "move %d %s: %s\n%s", i+1, d, b.State(), b)
	}

	switch phase := b.State(); {
	case phase.IsOver() && phase.Won():
		fmt.Fprintln(w, "You win!")
	case phase.IsOver():
		fmt.Fprintln(w, "Game over!")
	}
	return applied
}

package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/board"
)

func TestReplayPrintsEveryMove(t *testing.T) {
	b, err := board.Load([][]board.Tile{
		{1, 1, 0},
		{0, 0, 0},
		{0, 0, 0},
	}, board.NewSeededRandom(3))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	var out strings.Builder
	applied := replay(&out, b, []board.Direction{board.Left, board.Right})

	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	text := out.String()
	for _, want := range []string{"start: stop\n+----+----+----+\n|   2|   2|    |", "move 1 left: stop", "move 2 right: stop"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "You win!") || strings.Contains(text, "Game over!") {
		t.Errorf("unexpected outcome line:\n%s", text)
	}
}

func TestReplayStopsAfterWin(t *testing.T) {
	b, err := board.Load([][]board.Tile{{10, 10}, {0, 0}}, board.NewSeededRandom(1))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	var out strings.Builder
	applied := replay(&out, b, []board.Direction{board.Left, board.Up, board.Down})

	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
	text := out.String()
	if !strings.Contains(text, "move 1 left: over(won)") {
		t.Errorf("missing winning move:\n%s", text)
	}
	if !strings.Contains(text, "skipping 2 remaining move(s)") || !strings.HasSuffix(text, "You win!\n") {
		t.Errorf("unexpected tail:\n%s", text)
	}
}

func TestReplayFullBoardLoses(t *testing.T) {
	b, err := board.Load([][]board.Tile{{1, 2}, {2, 1}}, board.NewSeededRandom(1))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	var out strings.Builder
	replay(&out, b, []board.Direction{board.Up})

	if !strings.HasSuffix(out.String(), "Game over!\n") {
		t.Errorf("expected loss:\n%s", out.String())
	}
}

func TestReplayDeterministic(t *testing.T) {
	moves := []board.Direction{board.Left, board.Up, board.Right, board.Down, board.Left}

	run := func() string {
		b := board.NewSeeded(4, 4, 99)
		b.Initialize()
		var out strings.Builder
		replay(&out, b, moves)
		return out.String()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different output:\n%s\n---\n%s", a, b)
	}
}

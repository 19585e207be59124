package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineBoard loads a single row so a Left-ordered line is [0, 1, ..., n-1].
func lineBoard(t *testing.T, row ...Tile) (*Board, []int) {
	t.Helper()
	b := mustLoad(t, [][]Tile{row}, ProcessRandom{})
	return b, b.lines(Left)[0]
}

func lineValues(b *Board, line []int) []Tile {
	out := make([]Tile, len(line))
	for i, idx := range line {
		out[i] = b.cells[idx]
	}
	return out
}

func nonEmptyCounts(ts []Tile) map[Tile]int {
	counts := make(map[Tile]int)
	for _, t := range ts {
		if !t.Empty() {
			counts[t]++
		}
	}
	return counts
}

func material(ts []Tile) int {
	sum := 0
	for _, t := range ts {
		sum += t.Value()
	}
	return sum
}

func TestSlide(t *testing.T) {
	tests := []struct {
		name  string
		input []Tile
		want  []Tile
		moved bool
	}{
		{"empty line", []Tile{0, 0, 0, 0}, []Tile{0, 0, 0, 0}, false},
		{"already compact", []Tile{1, 1, 0, 0}, []Tile{1, 1, 0, 0}, false},
		{"full line", []Tile{1, 2, 3, 4}, []Tile{1, 2, 3, 4}, false},
		{"single tile at end", []Tile{0, 0, 0, 3}, []Tile{3, 0, 0, 0}, true},
		{"gaps between tiles", []Tile{0, 2, 0, 4}, []Tile{2, 4, 0, 0}, true},
		{"keeps order", []Tile{3, 0, 1, 2}, []Tile{3, 1, 2, 0}, true},
		{"equal tiles are not merged", []Tile{1, 0, 1, 0}, []Tile{1, 1, 0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, line := lineBoard(t, tt.input...)
			moved := b.slide(line)

			assert.Equal(t, tt.want, lineValues(b, line))
			assert.Equal(t, tt.moved, moved)
			assert.Equal(t, nonEmptyCounts(tt.input), nonEmptyCounts(lineValues(b, line)))
		})
	}
}

func TestSlideIsIdempotent(t *testing.T) {
	inputs := [][]Tile{
		{0, 1, 0, 1},
		{2, 0, 0, 5, 0, 1},
		{0, 0, 0, 0},
		{4, 4, 4},
	}
	for _, in := range inputs {
		b, line := lineBoard(t, in...)
		b.slide(line)
		once := lineValues(b, line)

		moved := b.slide(line)
		assert.False(t, moved, "second slide of %v reported movement", in)
		assert.Equal(t, once, lineValues(b, line))
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name   string
		input  []Tile
		want   []Tile
		merged bool
	}{
		{"simple pair", []Tile{1, 1, 0, 0}, []Tile{2, 0, 0, 0}, true},
		{"pair then single", []Tile{1, 1, 1, 0}, []Tile{2, 0, 1, 0}, true},
		{"two pairs", []Tile{2, 2, 2, 2}, []Tile{3, 0, 3, 0}, true},
		{"no cascade", []Tile{1, 1, 2, 0}, []Tile{2, 0, 2, 0}, true},
		{"no equal neighbours", []Tile{1, 2, 3, 4}, []Tile{1, 2, 3, 4}, false},
		{"empties never merge", []Tile{0, 0, 0, 0}, []Tile{0, 0, 0, 0}, false},
		{"second pair after mismatch", []Tile{3, 1, 1, 0}, []Tile{3, 2, 0, 0}, true},
		{"reaches win exponent", []Tile{10, 10}, []Tile{11, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, line := lineBoard(t, tt.input...)
			merged := b.merge(line)

			got := lineValues(b, line)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.merged, merged)
			assert.Equal(t, material(tt.input), material(got), "merge must preserve material")
		})
	}
}

func TestLines(t *testing.T) {
	b := mustLoad(t, [][]Tile{
		{0, 0, 0},
		{0, 0, 0},
	}, ProcessRandom{})

	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, b.lines(Left))
	assert.Equal(t, [][]int{{2, 1, 0}, {5, 4, 3}}, b.lines(Right))
	assert.Equal(t, [][]int{{0, 3}, {1, 4}, {2, 5}}, b.lines(Up))
	assert.Equal(t, [][]int{{3, 0}, {4, 1}, {5, 2}}, b.lines(Down))
}

func TestStepDirections(t *testing.T) {
	start := [][]Tile{
		{1, 1, 0, 0},
		{2, 0, 2, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 1},
	}

	tests := []struct {
		dir  Direction
		want [][]Tile
	}{
		{Left, [][]Tile{
			{2, 0, 0, 0},
			{3, 0, 0, 0},
			{2, 2, 0, 0},
			{1, 0, 0, 0},
		}},
		{Right, [][]Tile{
			{0, 0, 0, 2},
			{0, 0, 0, 3},
			{0, 0, 2, 2},
			{0, 0, 0, 1},
		}},
		{Up, [][]Tile{
			{1, 2, 2, 2},
			{2, 0, 1, 0},
			{1, 0, 0, 0},
			{0, 0, 0, 0},
		}},
		{Down, [][]Tile{
			{0, 0, 0, 0},
			{1, 0, 0, 0},
			{2, 0, 2, 0},
			{1, 2, 1, 2},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			rng := &scriptedRandom{}
			b := mustLoad(t, start, rng)

			// Compute the expected spawn: the first empty cell, since the
			// scripted source always answers 0.
			want := make([][]Tile, len(tt.want))
			spawned := false
			for r, row := range tt.want {
				want[r] = append([]Tile(nil), row...)
				for c := range want[r] {
					if !spawned && want[r][c] == 0 {
						want[r][c] = 1
						spawned = true
					}
				}
			}

			phase := b.Step(tt.dir)
			assert.Equal(t, Stop(), phase)
			assert.Equal(t, want, tiles(b))
			assert.Equal(t, 1, rng.calls)
		})
	}
}

func TestStepExampleRowMerge(t *testing.T) {
	// Row [2, 2, _, _] moved left becomes [4, _, _, _]; the slide moves
	// nothing, the merge carries the turn.
	rng := &scriptedRandom{answers: []int{0}}
	b := mustLoad(t, [][]Tile{
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, rng)

	line := b.lines(Left)[0]
	assert.False(t, b.slide(line))

	phase := b.Step(Left)
	require.Equal(t, Stop(), phase)

	got := tiles(b)
	assert.Equal(t, Tile(2), got[0][0])
	// The only other tile is the spawned one, in the first empty cell.
	assert.Equal(t, []Tile{2, 1, 0, 0}, got[0])
	counts := countTiles(b)
	assert.Equal(t, 1, counts[2])
	assert.Equal(t, 1, counts[1])
	assert.Equal(t, 14, counts[0])
}

func TestStepNoOpDoesNotSpawn(t *testing.T) {
	rng := &scriptedRandom{}
	grid := [][]Tile{
		{1, 2, 0, 0},
		{3, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	b := mustLoad(t, grid, rng)

	phase := b.Step(Left)

	assert.Equal(t, Stop(), phase)
	assert.Equal(t, grid, tiles(b))
	assert.Zero(t, rng.calls, "no-op move must not advance the random source")
}

func TestStepFullBoardIsLoss(t *testing.T) {
	// Adjacent equal tiles exist, but a full board is still a loss.
	grid := [][]Tile{
		{1, 1, 2, 3},
		{4, 5, 6, 7},
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	}
	rng := &scriptedRandom{}
	b := mustLoad(t, grid, rng)

	phase := b.Step(Left)

	assert.Equal(t, Over(false), phase)
	assert.Equal(t, Over(false), b.State())
	assert.Equal(t, grid, tiles(b), "loss check must not mutate tiles")
	assert.Zero(t, rng.calls)
}

func TestStepWin(t *testing.T) {
	b := mustLoad(t, [][]Tile{
		{10, 10, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, &scriptedRandom{})

	phase := b.Step(Left)

	assert.Equal(t, Over(true), phase)
	assert.True(t, phase.Won())
	assert.Equal(t, Tile(11), b.cells[0])
}

func TestStepSpawnFillsLastCell(t *testing.T) {
	// The move frees exactly one cell, the spawn fills it, and the board is
	// full but the phase is Stop until the next Step.
	b := mustLoad(t, [][]Tile{
		{1, 2, 0},
		{3, 4, 5},
	}, &scriptedRandom{})

	require.Equal(t, Stop(), b.Step(Right))
	assert.Equal(t, [][]Tile{{1, 1, 2}, {3, 4, 5}}, tiles(b))
	assert.Zero(t, b.EmptyCount())
	assert.Equal(t, Stop(), b.State())

	assert.Equal(t, Over(false), b.Step(Left))
}

func TestSpawn(t *testing.T) {
	rng := &scriptedRandom{answers: []int{1}}
	b := mustLoad(t, [][]Tile{{0, 3, 0}}, rng)

	assert.True(t, b.spawn())
	assert.Equal(t, [][]Tile{{0, 3, 1}}, tiles(b))

	assert.True(t, b.spawn())
	assert.False(t, b.spawn(), "full board has nowhere to spawn")
	assert.Equal(t, 2, rng.calls)
}

func TestStepPreconditions(t *testing.T) {
	t.Run("uninitialized", func(t *testing.T) {
		b := NewSeeded(4, 4, 1)
		assert.Panics(t, func() { b.Step(Left) })
	})

	t.Run("over", func(t *testing.T) {
		b := mustLoad(t, [][]Tile{{1, 2}, {3, 4}}, ProcessRandom{})
		require.Equal(t, Over(false), b.Step(Up))
		assert.Panics(t, func() { b.Step(Down) })
	})

	t.Run("invalid direction", func(t *testing.T) {
		b := mustLoad(t, [][]Tile{{1, 0}}, ProcessRandom{})
		assert.Panics(t, func() { b.Step(Direction(9)) })
	})
}

func TestStepPreservesMaterialPlusSpawn(t *testing.T) {
	b := NewSeeded(4, 4, 99)
	b.Initialize()

	for i := 0; i < 500 && b.State() == Stop(); i++ {
		before := material(b.cells)
		d := Directions[i%len(Directions)]
		rng := b.rng
		counter := &countingRandom{inner: rng}
		b.rng = counter

		b.Step(d)

		after := material(b.cells)
		if counter.calls == 0 {
			assert.Equal(t, before, after, "move without spawn changed material")
		} else {
			assert.Equal(t, before+2, after, "move must add exactly one spawned 2")
		}
		b.rng = rng
	}
}

type countingRandom struct {
	inner Random
	calls int
}

func (c *countingRandom) Intn(n int) int {
	c.calls++
	return c.inner.Intn(n)
}

// Package board implements the 2048 board state machine: a fixed grid of
// tile exponents that slide and merge under four directional moves.
//
// The package has no dependencies beyond the standard library and performs no
// I/O. Randomness for tile spawning is injected through the Random interface,
// so a board built with a fixed seed replays identically.
//
// Calling Initialize or Step in the wrong phase is a programming error and
// panics; callers check State first.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// Construction errors returned by Load.
var (
	ErrEmptyGrid   = errors.New("board: grid is empty")
	ErrJaggedGrid  = errors.New("board: grid rows have different lengths")
	ErrInvalidTile = errors.New("board: tile exponent out of range")
)

// Board is a width x height grid of tiles plus the phase of the game being
// played on it. Cells are stored row-major in a single slice.
type Board struct {
	width  int
	height int
	cells  []Tile
	phase  Phase
	rng    Random
}

// New allocates an empty board in the Uninitialized phase.
// Panics if either dimension is not positive or rng is nil.
func New(width, height int, rng Random) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("board: invalid size %dx%d", width, height))
	}
	if rng == nil {
		panic("board: nil random source")
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Tile, width*height),
		phase:  Uninitialized(),
		rng:    rng,
	}
}

// NewSeeded allocates an empty board whose spawns are driven by a
// deterministic generator seeded with seed.
func NewSeeded(width, height int, seed int64) *Board {
	return New(width, height, NewSeededRandom(seed))
}

// NewProcess allocates an empty board that uses the process-wide generator.
func NewProcess(width, height int) *Board {
	return New(width, height, ProcessRandom{})
}

// Default returns an empty 4x4 board using the process-wide generator.
func Default() *Board {
	return NewProcess(4, 4)
}

// Load builds a board from pre-filled rows of exponents. The board starts in
// the Stop phase. The grid is copied.
func Load(grid [][]Tile, rng Random) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if rng == nil {
		return nil, errors.New("board: nil random source")
	}

	height := len(grid)
	width := len(grid[0])
	cells := make([]Tile, 0, width*height)
	for r, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrJaggedGrid, r, len(row), width)
		}
		for c, t := range row {
			if t > WinExponent {
				return nil, fmt.Errorf("%w: %d at (%d, %d)", ErrInvalidTile, t, r, c)
			}
		}
		cells = append(cells, row...)
	}

	return &Board{
		width:  width,
		height: height,
		cells:  cells,
		phase:  Stop(),
		rng:    rng,
	}, nil
}

// Initialize places the two starting tiles (exponent 1) in distinct random
// cells and moves the board to Stop. Panics unless the board is
// Uninitialized.
func (b *Board) Initialize() {
	if b.phase.kind != PhaseUninitialized {
		panic(fmt.Sprintf("board: Initialize called in phase %s", b.phase))
	}

	empty := b.emptyIndices()
	n := min(2, len(empty))
	// Partial Fisher-Yates: the first n entries become a uniform sample
	// without replacement.
	for i := 0; i < n; i++ {
		j := i + b.rng.Intn(len(empty)-i)
		empty[i], empty[j] = empty[j], empty[i]
		b.cells[empty[i]] = 1
	}

	b.phase = Stop()
}

// State returns the current phase.
func (b *Board) State() Phase {
	return b.phase
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Snapshot returns a fresh height x width copy of the displayed cell values.
func (b *Board) Snapshot() [][]Cell {
	rows := make([][]Cell, b.height)
	for r := 0; r < b.height; r++ {
		row := make([]Cell, b.width)
		for c := 0; c < b.width; c++ {
			row[c] = Cell{Value: b.cells[b.index(r, c)].Value()}
		}
		rows[r] = row
	}
	return rows
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, t := range b.cells {
		if t.Empty() {
			n++
		}
	}
	return n
}

// MaxValue returns the largest displayed value on the board, or 0 if the
// board is empty.
func (b *Board) MaxValue() int {
	var top Tile
	for _, t := range b.cells {
		top = max(top, t)
	}
	return top.Value()
}

// String draws the grid as text: separator lines between rows and each value
// right-justified in a four-character cell.
func (b *Board) String() string {
	var sb strings.Builder
	sep := "+" + strings.Repeat("----+", b.width) + "\n"

	for _, row := range b.Snapshot() {
		sb.WriteString(sep)
		for _, cell := range row {
			sb.WriteByte('|')
			if cell.Empty() {
				sb.WriteString("    ")
			} else {
				fmt.Fprintf(&sb, "%4d", cell.Value)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(sep)

	return sb.String()
}

func (b *Board) index(row, col int) int {
	return row*b.width + col
}

func (b *Board) emptyIndices() []int {
	var idx []int
	for i, t := range b.cells {
		if t.Empty() {
			idx = append(idx, i)
		}
	}
	return idx
}

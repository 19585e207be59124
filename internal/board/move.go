package board

import (
	"fmt"
	"slices"
)

// Step applies one move and returns the resulting phase, which is always
// Stop or Over. Panics unless the board is in the Stop phase.
//
// A full board ends the game as a loss before anything moves, even when
// adjacent equal tiles could still merge. A move that changes nothing spawns
// no tile and leaves the random source untouched.
func (b *Board) Step(d Direction) Phase {
	if b.phase.kind != PhaseStop {
		panic(fmt.Sprintf("board: Step called in phase %s", b.phase))
	}
	if !d.Valid() {
		panic(fmt.Sprintf("board: invalid %s", d))
	}

	if b.EmptyCount() == 0 {
		b.phase = Over(false)
		return b.phase
	}

	b.phase = Stepping(d)
	lines := b.lines(d)

	moved := b.slideAll(lines)
	merged := b.mergeAll(lines)
	if merged {
		b.slideAll(lines)
	}

	b.phase = Stop()
	if (moved || merged) && b.spawn() && b.reached(WinExponent) {
		b.phase = Over(true)
	}
	return b.phase
}

// lines returns the cell indices of every line a move in d operates on,
// ordered so that index 0 of each line is the edge tiles slide toward.
func (b *Board) lines(d Direction) [][]int {
	var lines [][]int

	switch d {
	case Left, Right:
		lines = make([][]int, b.height)
		for r := 0; r < b.height; r++ {
			line := make([]int, b.width)
			for c := 0; c < b.width; c++ {
				line[c] = b.index(r, c)
			}
			lines[r] = line
		}
	case Up, Down:
		lines = make([][]int, b.width)
		for c := 0; c < b.width; c++ {
			line := make([]int, b.height)
			for r := 0; r < b.height; r++ {
				line[r] = b.index(r, c)
			}
			lines[c] = line
		}
	}

	if d == Right || d == Down {
		for _, line := range lines {
			slices.Reverse(line)
		}
	}
	return lines
}

func (b *Board) slideAll(lines [][]int) bool {
	moved := false
	for _, line := range lines {
		if b.slide(line) {
			moved = true
		}
	}
	return moved
}

func (b *Board) mergeAll(lines [][]int) bool {
	merged := false
	for _, line := range lines {
		if b.merge(line) {
			merged = true
		}
	}
	return merged
}

// slide compacts the non-empty tiles of line toward its front, keeping their
// order. Reports whether any tile changed position.
func (b *Board) slide(line []int) bool {
	moved := false
	dst := 0
	for src, idx := range line {
		t := b.cells[idx]
		if t.Empty() {
			continue
		}
		if src != dst {
			b.cells[line[dst]] = t
			moved = true
		}
		dst++
	}
	for _, idx := range line[dst:] {
		b.cells[idx] = 0
	}
	return moved
}

// merge combines equal adjacent pairs front to back. A tile produced by a
// merge is not merged again in the same pass.
func (b *Board) merge(line []int) bool {
	merged := false
	for i := 0; i+1 < len(line); i++ {
		cur, next := line[i], line[i+1]
		if !b.cells[cur].Empty() && b.cells[cur] == b.cells[next] {
			b.cells[cur]++
			b.cells[next] = 0
			merged = true
			i++
		}
	}
	return merged
}

// spawn puts an exponent-1 tile in a uniformly chosen empty cell. Reports
// false when there is no empty cell.
func (b *Board) spawn() bool {
	empty := b.emptyIndices()
	if len(empty) == 0 {
		return false
	}
	b.cells[empty[b.rng.Intn(len(empty))]] = 1
	return true
}

func (b *Board) reached(e Tile) bool {
	return slices.Contains(b.cells, e)
}

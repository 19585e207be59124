// Package t2048 hosts the 2048 board inside the platform's tick loop.
// The board package owns the rules; this package maps input to moves,
// tracks per-session counters and draws the board into a core.Screen.
package t2048

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Game adapts a board.Board to registry.Game.
type Game struct {
	variant config.Variant
	board   *board.Board
	preload [][]board.Tile
	tick    uint64
	moves   int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game for the given variant. The board is built on Reset.
func New(v config.Variant) *Game {
	return &Game{variant: v}
}

// RegisterVariants adds a registry entry per variant. IDs that are already
// registered are left alone, so calling it twice is harmless.
func RegisterVariants(variants []config.Variant) {
	for _, v := range variants {
		v := v
		if registry.Exists(v.ID) {
			continue
		}
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// SetPreload makes every subsequent Reset start from grid instead of two
// random tiles. The grid is validated immediately.
func (g *Game) SetPreload(grid [][]board.Tile) error {
	if _, err := board.Load(grid, board.ProcessRandom{}); err != nil {
		return fmt.Errorf("t2048: invalid preload: %w", err)
	}
	g.preload = grid
	return nil
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.moves = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if g.preload != nil {
		// Validated in SetPreload.
		b, _ := board.Load(g.preload, board.NewSeededRandom(cfg.Seed))
		g.board = b
	} else {
		g.board = board.NewSeeded(g.variant.Width, g.variant.Height, cfg.Seed)
		g.board.Initialize()
	}

	g.checkScreenSize()
}

// Resize updates the screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// minScreenSize is the board plus HUD and a one-cell margin.
func (g *Game) minScreenSize() (int, int) {
	boardW, boardH := g.boardSize()
	return boardW + 2, boardH + hudHeight + 2
}

// Step advances the game by one tick, applying at most one move.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	over := g.board.State().IsOver()

	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}

	if g.paused || over {
		return core.StepResult{State: g.State()}
	}

	if d, ok := directionFor(in); ok && g.board.State().Kind() == board.PhaseStop {
		before := g.board.Snapshot()
		g.board.Step(d)
		if !sameCells(before, g.board.Snapshot()) {
			g.moves++
		}
	}

	return core.StepResult{State: g.State()}
}

// directionFor picks the first movement action present in the frame.
func directionFor(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.Up, true
	case in.Has(core.ActionDown):
		return board.Down, true
	case in.Has(core.ActionLeft):
		return board.Left, true
	case in.Has(core.ActionRight):
		return board.Right, true
	}
	return 0, false
}

func sameCells(a, b [][]board.Cell) bool {
	return slices.EqualFunc(a, b, func(x, y []board.Cell) bool {
		return slices.Equal(x, y)
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.board.State()
	return core.GameState{
		GameOver: phase.IsOver(),
		Won:      phase.Won(),
		Paused:   g.paused || g.tooSmall,
		Moves:    g.moves,
		MaxTile:  g.board.MaxValue(),
	}
}

// String returns the plain-text board.
func (g *Game) String() string {
	return g.board.String()
}

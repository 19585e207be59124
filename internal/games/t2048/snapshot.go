package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Variant string
	Phase   string // board phase, e.g. "stop" or "over(won)"
	Cells   [][]int
	Moves   int
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	phase := g.board.State()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case phase.IsOver() && phase.Won():
		state = StateWon
	case phase.IsOver():
		state = StateLost
	case g.paused:
		state = StatePaused
	}

	rows := g.board.Snapshot()
	cells := make([][]int, len(rows))
	for r, row := range rows {
		cells[r] = make([]int, len(row))
		for c, cell := range row {
			cells[r][c] = cell.Value
		}
	}

	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Phase:   phase.String(),
		Cells:   cells,
		Moves:   g.moves,
		MaxTile: g.board.MaxValue(),
		State:   state,
	}
}

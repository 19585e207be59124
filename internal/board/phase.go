package board

import "fmt"

// PhaseKind enumerates the states of the board state machine.
type PhaseKind uint8

const (
	// PhaseUninitialized: grid allocated, starting tiles not placed yet.
	PhaseUninitialized PhaseKind = iota
	// PhaseStop: idle, waiting for the next move.
	PhaseStop
	// PhaseStep: a move is being processed. Never returned from Step.
	PhaseStep
	// PhaseOver: terminal, won or lost.
	PhaseOver
)

// Phase is the current game phase. Phases are comparable with ==.
type Phase struct {
	kind PhaseKind
	dir  Direction
	won  bool
}

// Uninitialized returns the phase of a freshly allocated board.
func Uninitialized() Phase {
	return Phase{kind: PhaseUninitialized}
}

// Stop returns the idle phase.
func Stop() Phase {
	return Phase{kind: PhaseStop}
}

// Stepping returns the transient phase used while a move in d is applied.
func Stepping(d Direction) Phase {
	return Phase{kind: PhaseStep, dir: d}
}

// Over returns the terminal phase.
func Over(won bool) Phase {
	return Phase{kind: PhaseOver, won: won}
}

// Kind returns the phase kind.
func (p Phase) Kind() PhaseKind {
	return p.kind
}

// Direction returns the direction of a Step phase. ok is false for any
// other kind.
func (p Phase) Direction() (d Direction, ok bool) {
	return p.dir, p.kind == PhaseStep
}

// IsOver reports whether the game has ended.
func (p Phase) IsOver() bool {
	return p.kind == PhaseOver
}

// Won reports whether the game ended with a win.
func (p Phase) Won() bool {
	return p.kind == PhaseOver && p.won
}

func (p Phase) String() string {
	switch p.kind {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseStop:
		return "stop"
	case PhaseStep:
		return fmt.Sprintf("step(%s)", p.dir)
	case PhaseOver:
		if p.won {
			return "over(won)"
		}
		return "over(lost)"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p.kind))
	}
}

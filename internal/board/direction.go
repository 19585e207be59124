package board

import (
	"fmt"
	"strings"
)

// Direction is one of the four moves a player can make.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return d <= Right
}

// ParseDirection parses a direction name or its first letter, ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("board: unknown direction %q", s)
}

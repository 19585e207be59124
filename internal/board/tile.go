package board

// Tile is a stored tile exponent. Zero means the cell is empty; any other
// value e is displayed as 2^e.
type Tile uint8

// WinExponent is the exponent that ends the game with a win (2^11 = 2048).
const WinExponent Tile = 11

// Empty reports whether the tile holds no value.
func (t Tile) Empty() bool {
	return t == 0
}

// Value returns the displayed value 2^t, or 0 for an empty tile.
func (t Tile) Value() int {
	if t == 0 {
		return 0
	}
	return 1 << t
}

// Cell is the read-only view of one grid position handed to renderers.
type Cell struct {
	Value int // Displayed value, 0 when empty
}

// Empty reports whether the cell is empty.
func (c Cell) Empty() bool {
	return c.Value == 0
}

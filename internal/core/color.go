package core

import "math/bits"

// Color is a foreground color for a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightMagenta
	ColorOrange
	ColorGold
	ColorGray
)

// tilePalette is indexed by tile exponent (2 -> 1, 4 -> 2, ...).
var tilePalette = []Color{
	ColorGray,          // empty
	ColorWhite,         // 2
	ColorBrightYellow,  // 4
	ColorYellow,        // 8
	ColorOrange,        // 16
	ColorRed,           // 32
	ColorBrightRed,     // 64
	ColorMagenta,       // 128
	ColorBrightMagenta, // 256
	ColorBlue,          // 512
	ColorCyan,          // 1024
	ColorGold,          // 2048
}

// TileColor returns the color used to draw a tile with the given displayed
// value. Values past the palette reuse the last entry.
func TileColor(value int) Color {
	if value <= 0 {
		return tilePalette[0]
	}
	exp := bits.Len(uint(value)) - 1
	if exp >= len(tilePalette) {
		return tilePalette[len(tilePalette)-1]
	}
	return tilePalette[exp]
}

package config

import (
	"fmt"
	"math/bits"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/board"
)

// GridFile is the YAML layout of a pre-populated board.
//
//	values: true     # entries are displayed values (2, 4, ...) instead of exponents
//	grid:
//	  - [2, 2, 0, 0]
//	  - [0, 4, 0, 0]
type GridFile struct {
	Values bool    `yaml:"values"`
	Grid   [][]int `yaml:"grid"`
}

// LoadGrid reads a grid file and returns rows of tile exponents ready for
// board.Load. Shape checks are left to board.Load.
func LoadGrid(path string) ([][]board.Tile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read grid %s: %w", path, err)
	}
	return ParseGrid(data)
}

// ParseGrid decodes grid YAML.
func ParseGrid(data []byte) ([][]board.Tile, error) {
	var gf GridFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("config: failed to parse grid: %w", err)
	}

	rows := make([][]board.Tile, len(gf.Grid))
	for r, row := range gf.Grid {
		rows[r] = make([]board.Tile, len(row))
		for c, v := range row {
			t, err := toTile(v, gf.Values)
			if err != nil {
				return nil, fmt.Errorf("config: grid cell (%d, %d): %w", r, c, err)
			}
			rows[r][c] = t
		}
	}
	return rows, nil
}

func toTile(v int, displayed bool) (board.Tile, error) {
	if v < 0 {
		return 0, fmt.Errorf("negative value %d", v)
	}
	if !displayed || v == 0 {
		if v > int(board.WinExponent) {
			return 0, fmt.Errorf("exponent %d above %d", v, board.WinExponent)
		}
		return board.Tile(v), nil
	}
	if v < 2 || v&(v-1) != 0 {
		return 0, fmt.Errorf("value %d is not a power of two", v)
	}
	return toTile(bits.Len(uint(v))-1, false)
}

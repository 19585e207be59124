package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 5 // 4-character value plus left border
	cellHeight = 2 // value row plus top border
	hudHeight  = 3
)

// boardSize returns the drawn grid size including borders. A preloaded grid
// may differ from the variant's size, so the board is measured directly.
func (g *Game) boardSize() (int, int) {
	return g.board.Width()*cellWidth + 1, g.board.Height()*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
	dst.DrawTextCentered(boardY+boardH+1, g.Controls())
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	minW, minH := g.minScreenSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the title, move counter and largest tile.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.variant.Title
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	maxStr := fmt.Sprintf("Max: %d", g.board.MaxValue())
	dst.DrawTextColor(max(boardX, boardX+boardW-len(maxStr)), 1, maxStr, core.TileColor(g.board.MaxValue()))

	sizeStr := fmt.Sprintf("%dx%d", g.board.Width(), g.board.Height())
	dst.DrawText(boardX+(boardW-len(sizeStr))/2, 2, sizeStr)
}

// renderBoard draws the grid lines and the tile values, right-justified in
// four characters.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	cols, rows := g.board.Width(), g.board.Height()

	for y := 0; y < rows+1; y++ {
		for x := 0; x < cols+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, junction(x, y, cols, rows))

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for y, row := range g.board.Snapshot() {
		for x, cell := range row {
			if cell.Empty() {
				continue
			}
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			dst.DrawTextColor(cellX, cellY, fmt.Sprintf("%4d", cell.Value), core.TileColor(cell.Value))
		}
	}
}

// junction picks the box-drawing rune at grid intersection (x, y).
func junction(x, y, cols, rows int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == cols:
		return '┐'
	case y == rows && x == 0:
		return '└'
	case y == rows && x == cols:
		return '┘'
	case y == 0:
		return '┬'
	case y == rows:
		return '┴'
	case x == 0:
		return '├'
	case x == cols:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays centered on the board.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	phase := g.board.State()

	switch {
	case phase.IsOver() && phase.Won():
		g.drawOverlay(dst, area, "YOU WIN!", fmt.Sprintf("%d moves", g.moves), "Press R to restart")
	case phase.IsOver():
		g.drawOverlay(dst, area, "GAME OVER", fmt.Sprintf("Max tile: %d", g.board.MaxValue()), "Press R to restart")
	case g.paused:
		g.drawOverlay(dst, area, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a boxed message centered in area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.CenteredIn(maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(box.X+(box.W-len(line))/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}

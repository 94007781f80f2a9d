package tui

import (
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/view"
)

const (
	cellWidth  = 5
	cellHeight = 3

	boardWidth  = entity.BoardSize*cellWidth + entity.BoardSize - 1
	boardHeight = entity.BoardSize*cellHeight + entity.BoardSize - 1
)

// layout places the board on screen. Cells are separated by one column or row of grid lines.
type layout struct {
	x, y int
}

var defaultLayout = layout{x: 2, y: 2}

func (that layout) statusY() int {
	return 0
}

func (that layout) cellOrigin(cell int) (int, int) {
	row, col := entity.RowCol(cell)
	return that.x + col*(cellWidth+1), that.y + row*(cellHeight+1)
}

// cellAt - maps a screen position to the cell under it. Grid lines belong to no cell.
func (that layout) cellAt(x, y int) (int, bool) {
	dx, dy := x-that.x, y-that.y
	if dx < 0 || dy < 0 || dx >= boardWidth || dy >= boardHeight {
		return 0, false
	}

	if dx%(cellWidth+1) == cellWidth || dy%(cellHeight+1) == cellHeight {
		return 0, false
	}

	return entity.CellIndex(dy/(cellHeight+1), dx/(cellWidth+1)), true
}

func (that layout) resetY() int {
	return that.y + boardHeight + 1
}

func (that layout) resetButton() string {
	return "[ " + view.ResetLabel + " ]"
}

func (that layout) onReset(x, y int) bool {
	return y == that.resetY() && x >= that.x && x < that.x+len(that.resetButton())
}

func (that layout) helpY() int {
	return that.resetY() + 2
}

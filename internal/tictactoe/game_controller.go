package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// WinCombos lists the rows, columns and diagonals in the order they are evaluated.
var WinCombos = entity.WinCombos

// Reset - returns a fresh game.
func Reset() entity.GameState {
	return entity.NewGameState()
}

// ApplyMove - puts the current player's mark on cell and returns the resulting state.
// Moves on a finished game, on an occupied cell or outside the board are ignored and
// the state is returned unchanged; ValidateMove tells which rule rejected the move.
func ApplyMove(state entity.GameState, cell int) entity.GameState {
	if err := ValidateMove(state, cell); err != nil {
		return state
	}

	return state.Place(cell)
}

// ValidateMove - checks if the move is valid.
func ValidateMove(state entity.GameState, cell int) error {
	if state.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !state.Cell(cell).IsEmpty() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// Evaluate - derives the outcome from the board.
func Evaluate(board entity.Board) entity.Outcome {
	return entity.DetermineOutcome(board)
}

// WinningLine - returns the first completed combo.
func WinningLine(board entity.Board) ([3]int, bool) {
	return entity.WinningLine(board)
}

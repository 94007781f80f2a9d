// Package view turns engine state into what a renderer draws. It holds no rules of its own.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const NoCell = -1

const ResetLabel = "Reset Game"

type Model struct {
	Cells       [entity.CellCount]string
	Status      string
	Highlighted int
	Winning     [entity.CellCount]bool
	Finished    bool
}

// Build - creates the model for state. highlighted is the cell to emphasise, or NoCell.
func Build(state entity.GameState, highlighted int) Model {
	model := Model{
		Status:      StatusLine(state),
		Highlighted: NoCell,
		Finished:    state.IsFinished(),
	}

	board := state.Board()
	for i, cell := range board {
		model.Cells[i] = Label(cell)
	}

	if entity.IsValidCell(highlighted) {
		model.Highlighted = highlighted
	}

	if line, ok := tictactoe.WinningLine(board); ok {
		for _, i := range line {
			model.Winning[i] = true
		}
	}

	return model
}

// StatusLine - the text shown above the board.
func StatusLine(state entity.GameState) string {
	outcome := state.Outcome()

	switch {
	case outcome.IsWon():
		return fmt.Sprintf("%s wins!", outcome.Winner)
	case outcome.IsTie():
		return "It's a tie!"
	default:
		return fmt.Sprintf("Player %s's turn", state.CurrentPlayer())
	}
}

func Label(mark entity.Mark) string {
	if mark.IsEmpty() {
		return " "
	}
	return mark.String()
}

// ParseCell - converts the 1-9 numbering shown to users into a board index.
func ParseCell(input string) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return NoCell, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, input)
	}

	cell := number - 1
	if !entity.IsValidCell(cell) {
		return NoCell, fmt.Errorf("%w: %d", apperror.ErrInvalidCell, number)
	}

	return cell, nil
}

package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

func play(cells ...int) entity.GameState {
	state := tictactoe.Reset()
	for _, cell := range cells {
		state = tictactoe.ApplyMove(state, cell)
	}
	return state
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "Player X's turn", StatusLine(play()))
	assert.Equal(t, "Player O's turn", StatusLine(play(4)))
	assert.Equal(t, "X wins!", StatusLine(play(0, 1, 4, 2, 8)))
	assert.Equal(t, "O wins!", StatusLine(play(0, 3, 1, 4, 8, 5)))
	assert.Equal(t, "It's a tie!", StatusLine(play(0, 1, 2, 4, 3, 5, 7, 6, 8)))
}

func TestBuild(t *testing.T) {
	t.Run("Ongoing game", func(t *testing.T) {
		// Given: X on 0 and O on 4
		state := play(0, 4)

		// When: building the model with cell 4 highlighted
		model := Build(state, 4)

		// Then: labels, status and highlight are filled in
		assert.Equal(t, [entity.CellCount]string{"X", " ", " ", " ", "O", " ", " ", " ", " "}, model.Cells)
		assert.Equal(t, "Player X's turn", model.Status)
		assert.Equal(t, 4, model.Highlighted)
		assert.Equal(t, [entity.CellCount]bool{}, model.Winning)
		assert.False(t, model.Finished)
	})

	t.Run("Winning line is marked", func(t *testing.T) {
		model := Build(play(0, 1, 4, 2, 8), NoCell)

		assert.True(t, model.Finished)
		assert.Equal(t, NoCell, model.Highlighted)
		assert.Equal(t, [entity.CellCount]bool{0: true, 4: true, 8: true}, model.Winning)
	})

	t.Run("Out of range highlight is dropped", func(t *testing.T) {
		model := Build(play(), 12)

		assert.Equal(t, NoCell, model.Highlighted)
	})
}

func TestParseCell(t *testing.T) {
	for number := 1; number <= 9; number++ {
		cell, err := ParseCell(" " + string(rune('0'+number)) + "\n")

		require.NoError(t, err)
		assert.Equal(t, number-1, cell)
	}

	for _, input := range []string{"0", "10", "-1", "x", ""} {
		cell, err := ParseCell(input)

		require.ErrorIs(t, err, apperror.ErrInvalidCell, "input %q", input)
		assert.Equal(t, NoCell, cell)
	}
}

func TestHighlight(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Active for the configured duration", func(t *testing.T) {
		// Given: a 300ms highlight selected at start
		highlight := NewHighlight(300 * time.Millisecond)
		highlight.Select(5, start)

		// Then: the cell is highlighted until the duration passes
		assert.Equal(t, 5, highlight.Cell(start))
		assert.Equal(t, 5, highlight.Cell(start.Add(299*time.Millisecond)))
		assert.Equal(t, NoCell, highlight.Cell(start.Add(300*time.Millisecond)))
		assert.Equal(t, start.Add(300*time.Millisecond), highlight.ExpiresAt())
	})

	t.Run("Nothing highlighted initially or after clear", func(t *testing.T) {
		highlight := NewHighlight(time.Second)
		assert.False(t, highlight.Active(start))

		highlight.Select(0, start)
		highlight.Clear()

		assert.Equal(t, NoCell, highlight.Cell(start))
	})
}

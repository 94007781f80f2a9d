package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeMethods(t *testing.T) {
	t.Run("IsInProgress returns true for a running game", func(t *testing.T) {
		// Given: the in-progress outcome
		outcome := InProgress

		// Then: only IsInProgress is true
		assert.True(t, outcome.IsInProgress())
		assert.False(t, outcome.IsWon())
		assert.False(t, outcome.IsTie())
	})

	t.Run("IsWon returns true and keeps the winner", func(t *testing.T) {
		// Given: an outcome won by O
		outcome := WonBy(MarkO)

		// Then: it is won by O
		assert.True(t, outcome.IsWon())
		assert.Equal(t, MarkO, outcome.Winner)
		assert.False(t, outcome.IsInProgress())
	})

	t.Run("IsTie returns true for a tie", func(t *testing.T) {
		assert.True(t, Tie.IsTie())
		assert.Equal(t, MarkEmpty, Tie.Winner)
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
	assert.Equal(t, MarkEmpty, MarkEmpty.Opponent())
}

func TestNewGameState(t *testing.T) {
	// When: creating a new game state
	state := NewGameState()

	// Then: it should be the canonical initial state
	assert.Equal(t, Board{}, state.Board())
	assert.Equal(t, MarkX, state.CurrentPlayer())
	assert.Equal(t, InProgress, state.Outcome())
	assert.False(t, state.IsFinished())
	assert.Equal(t, 0, state.MoveCount())
}

func TestGameState_Accessors(t *testing.T) {
	// Given: a state with a few marks
	state := NewGameState().Place(0).Place(4).Place(8)

	// Then: cells are addressable by index and by row and column
	assert.Equal(t, MarkX, state.Cell(0))
	assert.Equal(t, MarkO, state.CellAt(1, 1))
	assert.Equal(t, MarkX, state.CellAt(2, 2))
	assert.Equal(t, MarkEmpty, state.Cell(9))
	assert.Equal(t, MarkEmpty, state.Cell(-1))
	assert.Equal(t, MarkEmpty, state.CellAt(3, 0))
	assert.Equal(t, 3, state.MoveCount())

	// Then: Board returns a copy
	copied := state.Board()
	copied[1] = MarkO
	assert.Equal(t, MarkEmpty, state.Cell(1))
}

func TestGameState_Place(t *testing.T) {
	t.Run("Marks the cell and passes the turn", func(t *testing.T) {
		// When: X plays the centre
		state := NewGameState().Place(4)

		// Then: the cell is X and O is next
		assert.Equal(t, MarkX, state.Cell(4))
		assert.Equal(t, MarkO, state.CurrentPlayer())
		assert.Equal(t, InProgress, state.Outcome())
	})

	t.Run("Keeps the winner to move and finishes the game", func(t *testing.T) {
		// When: X completes the top row
		state := NewGameState().Place(0).Place(3).Place(1).Place(4).Place(2)

		// Then: X has won and the game is finished
		assert.Equal(t, WonBy(MarkX), state.Outcome())
		assert.Equal(t, MarkX, state.CurrentPlayer())
		assert.True(t, state.IsFinished())
	})

	t.Run("Ignores illegal placements", func(t *testing.T) {
		// Given: a game with X in the corner
		state := NewGameState().Place(0)

		// Then: occupied and off-board cells change nothing
		assert.Equal(t, state, state.Place(0))
		assert.Equal(t, state, state.Place(-1))
		assert.Equal(t, state, state.Place(CellCount))
	})

	t.Run("Outcome always matches the board", func(t *testing.T) {
		// Given: a long sequence of placements, including repeated cells
		state := NewGameState()
		for _, index := range []int{4, 4, 0, 8, 2, 6, 3, 5, 1, 7, 7} {
			state = state.Place(index)

			// Then: every state carries the outcome of its own board
			assert.Equal(t, DetermineOutcome(state.Board()), state.Outcome())
		}
	})
}

func TestDetermineOutcome(t *testing.T) {
	// Given: a full board without a line
	board := Board{
		MarkX, MarkO, MarkX,
		MarkX, MarkO, MarkO,
		MarkO, MarkX, MarkX,
	}

	// Then: it is a tie
	assert.Equal(t, Tie, DetermineOutcome(board))

	// When: the empty board is evaluated
	// Then: the game is in progress
	assert.Equal(t, InProgress, DetermineOutcome(Board{}))
}

func TestRowCol(t *testing.T) {
	for i := 0; i < CellCount; i++ {
		row, col := RowCol(i)

		assert.Equal(t, i/3, row)
		assert.Equal(t, i%3, col)
		assert.Equal(t, i, CellIndex(row, col))
	}
}

package entity

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusTie        = "tie"
)

// Board holds the nine cells, row by row: index i is row i/3, column i%3.
type Board [CellCount]Mark

// Outcome is the status of a game derived from its board. Winner is set only when Status is StatusWon.
type Outcome struct {
	Status string `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

var InProgress = Outcome{Status: StatusInProgress}

var Tie = Outcome{Status: StatusTie}

func WonBy(mark Mark) Outcome {
	return Outcome{Status: StatusWon, Winner: mark}
}

func (that Outcome) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that Outcome) IsWon() bool {
	return that.Status == StatusWon
}

func (that Outcome) IsTie() bool {
	return that.Status == StatusTie
}

// WinCombos lists the rows, columns and diagonals in the order they are evaluated.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// DetermineOutcome derives the outcome from the board.
func DetermineOutcome(board Board) Outcome {
	if line, ok := WinningLine(board); ok {
		return WonBy(board[line[0]])
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell.IsEmpty() {
			return InProgress
		}
	}

	return Tie
}

// WinningLine returns the first completed combo.
func WinningLine(board Board) ([3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return combo, true
		}
	}

	return [3]int{}, false
}

// GameState is an immutable snapshot of a game. Values are created by NewGameState and
// advanced only by Place, so the outcome always matches the board.
type GameState struct {
	board         Board
	currentPlayer Mark
	outcome       Outcome
}

// NewGameState returns the initial state: empty board, X to move, game in progress.
func NewGameState() GameState {
	return GameState{
		currentPlayer: MarkX,
		outcome:       InProgress,
	}
}

// Place puts the current player's mark on index and returns the following state.
// A finished game, an index off the board or an occupied cell leave the state unchanged.
func (that GameState) Place(index int) GameState {
	if that.IsFinished() || !IsValidCell(index) || !that.board[index].IsEmpty() {
		return that
	}

	board := that.board
	board[index] = that.currentPlayer

	next := GameState{
		board:         board,
		currentPlayer: that.currentPlayer,
		outcome:       DetermineOutcome(board),
	}
	if next.outcome.IsInProgress() {
		next.currentPlayer = that.currentPlayer.Opponent()
	}

	return next
}

func (that GameState) Board() Board {
	return that.board
}

// Cell returns the mark at index, or MarkEmpty when index is off the board.
func (that GameState) Cell(index int) Mark {
	if !IsValidCell(index) {
		return MarkEmpty
	}
	return that.board[index]
}

func (that GameState) CellAt(row, col int) Mark {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return MarkEmpty
	}
	return that.board[CellIndex(row, col)]
}

func (that GameState) CurrentPlayer() Mark {
	return that.currentPlayer
}

func (that GameState) Outcome() Outcome {
	return that.outcome
}

func (that GameState) IsFinished() bool {
	return !that.outcome.IsInProgress()
}

func (that GameState) MoveCount() int {
	count := 0
	for _, cell := range that.board {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

func IsValidCell(index int) bool {
	return index >= 0 && index < CellCount
}

func CellIndex(row, col int) int {
	return row*BoardSize + col
}

func RowCol(index int) (int, int) {
	return index / BoardSize, index % BoardSize
}

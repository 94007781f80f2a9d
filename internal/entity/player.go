package entity

// Mark is the symbol a player puts on a cell.
type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// Opponent returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

func (that Mark) IsEmpty() bool {
	return that == MarkEmpty
}

func (that Mark) String() string {
	return string(that)
}

package board

import "fmt"

// Mark identifies the occupant of a cell.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

// Move is a cell position. Layer stays 0 on 2D boards.
type Move struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Layer int `json:"layer"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d,%d)", that.Row, that.Col, that.Layer)
}

// Status is the terminal state of a board.
type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

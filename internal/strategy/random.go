package strategy

import (
	"math/rand"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/board"
)

// Random picks uniformly among the empty cells.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = newRand(0)
	}

	return &Random{rng: rng}
}

func (that *Random) ChooseMove(b *board.Board) (board.Move, error) {
	availableCells := b.EmptyCells()
	if len(availableCells) == 0 {
		return board.Move{}, apperror.ErrNoMoveAvailable
	}

	return availableCells[that.rng.Intn(len(availableCells))], nil
}

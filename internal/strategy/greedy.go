package strategy

import (
	"math/rand"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/board"
)

// GreedyBlocking wins if it can, blocks if it must, and plays randomly
// otherwise.
type GreedyBlocking struct {
	mark     board.Mark
	fallback *Random
}

func NewGreedyBlocking(mark board.Mark, rng *rand.Rand) (*GreedyBlocking, error) {
	if err := validateMark(mark); err != nil {
		return nil, err
	}

	return &GreedyBlocking{
		mark:     mark,
		fallback: NewRandom(rng),
	}, nil
}

func (that *GreedyBlocking) ChooseMove(b *board.Board) (board.Move, error) {
	if b.IsFull() {
		return board.Move{}, apperror.ErrNoMoveAvailable
	}

	// 1. take a winning cell
	if move, ok := completingMove(b, that.mark); ok {
		return move, nil
	}

	// 2. block the opponent
	if move, ok := completingMove(b, that.mark.Opponent()); ok {
		return move, nil
	}

	return that.fallback.ChooseMove(b)
}

// completingMove returns the first empty cell that gives mark a line.
func completingMove(b *board.Board, mark board.Mark) (board.Move, bool) {
	for _, m := range b.EmptyCells() {
		b.Place(m, mark)
		won := b.CheckWin(mark)
		b.Clear(m)

		if won {
			return m, true
		}
	}

	return board.Move{}, false
}

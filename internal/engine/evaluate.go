package engine

import "github.com/rocketscienceinc/inarow/internal/board"

const (
	centerWeight = 3
	cornerWeight = 2
)

// Evaluate scores a non-terminal position from mark's point of view:
// center and corner control on layer 0, plus one point per line that mark
// could still complete minus one per line the opponent could still complete.
func Evaluate(b *board.Board, mark board.Mark) int {
	opponent := mark.Opponent()
	score := 0

	last := b.Size() - 1
	center := board.Move{Row: b.Size() / 2, Col: b.Size() / 2}
	score += centerWeight * occupancy(b.At(center), mark, opponent)

	for _, corner := range []board.Move{
		{Row: 0, Col: 0},
		{Row: 0, Col: last},
		{Row: last, Col: 0},
		{Row: last, Col: last},
	} {
		score += cornerWeight * occupancy(b.At(corner), mark, opponent)
	}

	b.ForEachLine(func(marks []board.Mark) {
		var own, their int
		for _, cell := range marks {
			switch cell {
			case mark:
				own++
			case opponent:
				their++
			}
		}

		switch {
		case own > 0 && their == 0:
			score++
		case their > 0 && own == 0:
			score--
		}
	})

	return score
}

func occupancy(cell, mark, opponent board.Mark) int {
	switch cell {
	case mark:
		return 1
	case opponent:
		return -1
	default:
		return 0
	}
}

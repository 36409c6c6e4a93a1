package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/inarow/internal/apperror"
)

const (
	MinSize         = 3
	MaxSize         = 10
	MinWinCondition = 3
	MaxWinCondition = 7
)

// Board is the mutable grid of one game. It is not safe for concurrent use.
type Board struct {
	size         int
	winCondition int
	is3D         bool
	layers       int

	// cells are indexed layer*size*size + row*size + col.
	cells []Mark
	lines [][]int
}

// New validates the geometry and returns an empty board.
func New(size, winCondition int, is3D bool) (*Board, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: size %d is outside [%d, %d]", apperror.ErrInvalidConfiguration, size, MinSize, MaxSize)
	}

	if winCondition < MinWinCondition || winCondition > MaxWinCondition {
		return nil, fmt.Errorf("%w: win condition %d is outside [%d, %d]",
			apperror.ErrInvalidConfiguration, winCondition, MinWinCondition, MaxWinCondition)
	}

	if winCondition > size {
		return nil, fmt.Errorf("%w: win condition %d exceeds size %d", apperror.ErrInvalidConfiguration, winCondition, size)
	}

	layers := 1
	if is3D {
		layers = size
	}

	that := &Board{
		size:         size,
		winCondition: winCondition,
		is3D:         is3D,
		layers:       layers,
		cells:        make([]Mark, layers*size*size),
	}
	that.lines = that.enumerateLines()

	return that, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) WinCondition() int {
	return that.winCondition
}

func (that *Board) Is3D() bool {
	return that.is3D
}

func (that *Board) Layers() int {
	return that.layers
}

func (that *Board) IsValidPosition(m Move) bool {
	return m.Layer >= 0 && m.Layer < that.layers &&
		m.Row >= 0 && m.Row < that.size &&
		m.Col >= 0 && m.Col < that.size
}

// IsEmpty reports false for invalid positions.
func (that *Board) IsEmpty(m Move) bool {
	return that.IsValidPosition(m) && that.cells[that.index(m)] == Empty
}

// At returns Empty for invalid positions.
func (that *Board) At(m Move) Mark {
	if !that.IsValidPosition(m) {
		return Empty
	}

	return that.cells[that.index(m)]
}

// Place puts mark on an empty valid cell. It reports false and leaves the
// board untouched otherwise.
func (that *Board) Place(m Move, mark Mark) bool {
	if !mark.IsPlayer() || !that.IsEmpty(m) {
		return false
	}

	that.cells[that.index(m)] = mark

	return true
}

// Clear resets a cell to Empty whatever it holds. Invalid positions are ignored.
func (that *Board) Clear(m Move) {
	if !that.IsValidPosition(m) {
		return
	}

	that.cells[that.index(m)] = Empty
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// CheckWin reports whether any winning line is fully held by mark.
func (that *Board) CheckWin(mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, line := range that.lines {
		if that.holdsLine(line, mark) {
			return true
		}
	}

	return false
}

// Winner returns the mark holding a winning line, or Empty.
func (that *Board) Winner() Mark {
	switch {
	case that.CheckWin(X):
		return X
	case that.CheckWin(O):
		return O
	default:
		return Empty
	}
}

func (that *Board) Status() Status {
	if that.Winner() != Empty {
		return StatusWon
	}

	// the game will continue until all the cells are full
	if that.IsFull() {
		return StatusDraw
	}

	return StatusOngoing
}

// EmptyCells lists empty cells ordered by row, then column, then layer.
// Search and strategies rely on this order to break ties.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, len(that.cells))

	for row := range that.size {
		for col := range that.size {
			for layer := range that.layers {
				m := Move{Row: row, Col: col, Layer: layer}
				if that.cells[that.index(m)] == Empty {
					moves = append(moves, m)
				}
			}
		}
	}

	return moves
}

// ForEachLine calls fn with the marks of every candidate winning line.
// The slice is reused between calls.
func (that *Board) ForEachLine(fn func(marks []Mark)) {
	marks := make([]Mark, that.winCondition)

	for _, line := range that.lines {
		for i, idx := range line {
			marks[i] = that.cells[idx]
		}
		fn(marks)
	}
}

func (that *Board) LineCount() int {
	return len(that.lines)
}

func (that *Board) Clone() *Board {
	clone := *that
	clone.cells = make([]Mark, len(that.cells))
	copy(clone.cells, that.cells)

	return &clone
}

// Key is a compact snapshot of geometry and cells, e.g. "3x3x1/3:X.O......".
func (that *Board) Key() string {
	var sb strings.Builder

	sb.Grow(len(that.cells) + 16)
	fmt.Fprintf(&sb, "%dx%dx%d/%d:", that.size, that.size, that.layers, that.winCondition)

	for _, cell := range that.cells {
		if cell == Empty {
			sb.WriteByte('.')
			continue
		}
		sb.WriteString(string(cell))
	}

	return sb.String()
}

func (that *Board) index(m Move) int {
	return m.Layer*that.size*that.size + m.Row*that.size + m.Col
}

func (that *Board) holdsLine(line []int, mark Mark) bool {
	for _, idx := range line {
		if that.cells[idx] != mark {
			return false
		}
	}

	return true
}

package engine

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/board"
)

// Unbounded disables the depth limit.
const Unbounded = -1

const winScore = 10

type Options struct {
	MaxDepth int
	Pruning  bool
}

func (that Options) validate() error {
	if that.MaxDepth != Unbounded && that.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth %d", apperror.ErrInvalidConfiguration, that.MaxDepth)
	}

	return nil
}

// Result is the outcome of one search.
type Result struct {
	Move  board.Move
	Score int
	// Nodes counts positions scored below the root.
	Nodes int
}

// Engine runs minimax, optionally with alpha-beta pruning, over a shared
// board using place/undo. Its configuration never changes after New, so one
// Engine may serve any number of sequential searches.
type Engine struct {
	opts Options
}

func New(opts Options) (*Engine, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Engine{opts: opts}, nil
}

func (that *Engine) Options() Options {
	return that.opts
}

// Search returns the best move for mark. Among equally scored moves the first
// one in board.EmptyCells order wins. b is restored before Search returns.
func (that *Engine) Search(b *board.Board, mark board.Mark) (Result, error) {
	if !mark.IsPlayer() {
		return Result{}, fmt.Errorf("%w: mark %q", apperror.ErrInvalidConfiguration, mark)
	}

	moves := b.EmptyCells()
	if len(moves) == 0 {
		return Result{}, apperror.ErrNoMoveAvailable
	}

	s := &search{
		board:    b,
		mark:     mark,
		opponent: mark.Opponent(),
		maxDepth: that.opts.MaxDepth,
	}

	best := Result{Move: moves[0], Score: math.MinInt}
	alpha := math.MinInt

	for _, m := range moves {
		s.place(m, mark)

		var score int
		if that.opts.Pruning {
			score = s.alphaBeta(0, false, alpha, math.MaxInt)
		} else {
			score = s.minimax(0, false)
		}

		s.undo(m, mark)

		if score > best.Score {
			best.Move = m
			best.Score = score
		}

		// candidates that cannot beat the running best only need a bound
		alpha = max(alpha, score)
	}

	best.Nodes = s.nodes

	return best, nil
}

type search struct {
	board    *board.Board
	mark     board.Mark
	opponent board.Mark
	maxDepth int
	nodes    int
}

// terminal scores finished or depth-limited positions.
func (that *search) terminal(depth int) (int, bool) {
	that.nodes++

	switch {
	case that.board.CheckWin(that.mark):
		return winScore - depth, true
	case that.board.CheckWin(that.opponent):
		return depth - winScore, true
	case that.board.IsFull():
		return 0, true
	case that.maxDepth != Unbounded && depth >= that.maxDepth:
		return Evaluate(that.board, that.mark), true
	}

	return 0, false
}

func (that *search) minimax(depth int, maximizing bool) int {
	if score, done := that.terminal(depth); done {
		return score
	}

	mover, best := that.opponent, math.MaxInt
	if maximizing {
		mover, best = that.mark, math.MinInt
	}

	for _, m := range that.board.EmptyCells() {
		that.place(m, mover)
		score := that.minimax(depth+1, !maximizing)
		that.undo(m, mover)

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

func (that *search) alphaBeta(depth int, maximizing bool, alpha, beta int) int {
	if score, done := that.terminal(depth); done {
		return score
	}

	mover, best := that.opponent, math.MaxInt
	if maximizing {
		mover, best = that.mark, math.MinInt
	}

	for _, m := range that.board.EmptyCells() {
		that.place(m, mover)
		score := that.alphaBeta(depth+1, !maximizing, alpha, beta)
		that.undo(m, mover)

		if maximizing {
			best = max(best, score)
			alpha = max(alpha, score)
		} else {
			best = min(best, score)
			beta = min(beta, score)
		}

		if beta <= alpha {
			break
		}
	}

	return best
}

func (that *search) place(m board.Move, mark board.Mark) {
	if !that.board.Place(m, mark) {
		panic(fmt.Sprintf("engine: cannot place %s at %v", mark, m))
	}
}

// undo clears a trial placement. A cell that no longer holds the trial mark
// means the make/unmake sequence is broken.
func (that *search) undo(m board.Move, mark board.Mark) {
	if got := that.board.At(m); got != mark {
		panic(fmt.Sprintf("engine: undo %v expected %s, found %q", m, mark, got))
	}

	that.board.Clear(m)
}

package strategy

import (
	"fmt"

	"github.com/rocketscienceinc/inarow/internal/board"
	"github.com/rocketscienceinc/inarow/internal/engine"
)

// Search plays the engine's best move for its mark.
type Search struct {
	mark   board.Mark
	engine *engine.Engine
}

func NewSearch(mark board.Mark, opts engine.Options) (*Search, error) {
	if err := validateMark(mark); err != nil {
		return nil, err
	}

	e, err := engine.New(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return &Search{mark: mark, engine: e}, nil
}

func (that *Search) ChooseMove(b *board.Board) (board.Move, error) {
	result, err := that.engine.Search(b, that.mark)
	if err != nil {
		return board.Move{}, fmt.Errorf("search failed: %w", err)
	}

	return result.Move, nil
}

func (that *Search) Fingerprint() string {
	opts := that.engine.Options()

	return fmt.Sprintf("search:%s:depth=%d:pruning=%t", that.mark, opts.MaxDepth, opts.Pruning)
}

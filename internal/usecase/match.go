package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/board"
	"github.com/rocketscienceinc/inarow/internal/strategy"
)

type moveCache interface {
	Get(ctx context.Context, fingerprint, boardKey string) (board.Move, error)
	Set(ctx context.Context, fingerprint, boardKey string, move board.Move) error
}

// Turn is one applied move.
type Turn struct {
	Mark board.Mark `json:"mark"`
	Move board.Move `json:"move"`
}

// Match is the record of one game played by MatchRunner.
type Match struct {
	ID     string       `json:"id"`
	Turns  []Turn       `json:"turns"`
	Winner board.Mark   `json:"winner"`
	Status board.Status `json:"status"`
}

// MatchRunner drives two strategies over one board until it is won or full.
type MatchRunner struct {
	logger *slog.Logger
	cache  moveCache
}

// NewMatchRunner - cache may be nil, then every move is searched.
func NewMatchRunner(logger *slog.Logger, cache moveCache) *MatchRunner {
	return &MatchRunner{
		logger: logger.With("component", "match"),
		cache:  cache,
	}
}

// Play alternates x and o on b, starting with the side to move, and returns
// the finished match. On error the partial match is returned with it.
func (that *MatchRunner) Play(ctx context.Context, b *board.Board, x, o strategy.Strategy) (*Match, error) {
	match := &Match{
		ID:     uuid.NewString(),
		Winner: b.Winner(),
		Status: b.Status(),
	}

	log := that.logger.With("method", "Play", "matchID", match.ID)
	players := map[board.Mark]strategy.Strategy{
		board.X: x,
		board.O: o,
	}

	for mark := sideToMove(b); match.Status == board.StatusOngoing; mark = mark.Opponent() {
		if err := ctx.Err(); err != nil {
			return match, fmt.Errorf("match interrupted: %w", err)
		}

		move, err := that.chooseMove(ctx, log, b, players[mark])
		if err != nil {
			return match, fmt.Errorf("player %s failed to choose move: %w", mark, err)
		}

		if !b.Place(move, mark) {
			return match, fmt.Errorf("%w: player %s at %v", apperror.ErrIllegalMove, mark, move)
		}

		match.Turns = append(match.Turns, Turn{Mark: mark, Move: move})
		match.Winner = b.Winner()
		match.Status = b.Status()

		log.Debug("turn applied", "mark", mark, "move", move.String())
	}

	log.Info("match finished", "status", match.Status, "winner", match.Winner, "turns", len(match.Turns))

	return match, nil
}

func (that *MatchRunner) chooseMove(ctx context.Context, log *slog.Logger, b *board.Board, s strategy.Strategy) (board.Move, error) {
	cacheable, ok := s.(strategy.Cacheable)
	if !ok || that.cache == nil {
		return s.ChooseMove(b)
	}

	fingerprint, boardKey := cacheable.Fingerprint(), b.Key()

	cached, err := that.cache.Get(ctx, fingerprint, boardKey)
	switch {
	case err == nil && b.IsEmpty(cached):
		return cached, nil
	case err == nil:
		log.Warn("ignoring stale cached move", "move", cached.String(), "board", boardKey)
	case !errors.Is(err, apperror.ErrMoveNotCached):
		log.Error("failed to read move cache", "error", err)
	}

	move, err := s.ChooseMove(b)
	if err != nil {
		return board.Move{}, err
	}

	if err = that.cache.Set(ctx, fingerprint, boardKey, move); err != nil {
		log.Error("failed to write move cache", "error", err)
	}

	return move, nil
}

func sideToMove(b *board.Board) board.Mark {
	cells := b.Layers() * b.Size() * b.Size()
	if (cells-len(b.EmptyCells()))%2 == 0 {
		return board.X
	}

	return board.O
}

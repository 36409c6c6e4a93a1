package strategy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/board"
	"github.com/rocketscienceinc/inarow/internal/engine"
)

// Strategy picks a move for a non-full board. The returned cell is empty on
// b, and b is left as it was found.
type Strategy interface {
	ChooseMove(b *board.Board) (board.Move, error)
}

// Cacheable strategies always answer the same board with the same move.
// Fingerprint identifies the strategy configuration.
type Cacheable interface {
	Strategy
	Fingerprint() string
}

type Kind string

const (
	KindRandom Kind = "random"
	KindGreedy Kind = "greedy"
	KindSearch Kind = "search"
)

type Config struct {
	Kind Kind
	Mark board.Mark

	// Difficulty selects a search preset. When empty, MaxDepth and Pruning
	// are used as given.
	Difficulty engine.Difficulty
	MaxDepth   int
	Pruning    bool

	// Seed feeds the random choices; zero seeds from the clock.
	Seed int64
}

// New builds the strategy variant named by cfg.Kind.
func New(cfg Config) (Strategy, error) {
	switch cfg.Kind {
	case KindRandom:
		return NewRandom(newRand(cfg.Seed)), nil
	case KindGreedy:
		return NewGreedyBlocking(cfg.Mark, newRand(cfg.Seed))
	case KindSearch:
		opts := engine.Options{MaxDepth: cfg.MaxDepth, Pruning: cfg.Pruning}
		if cfg.Difficulty != "" {
			var err error
			if opts, err = cfg.Difficulty.Options(); err != nil {
				return nil, err
			}
		}

		return NewSearch(cfg.Mark, opts)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", apperror.ErrInvalidConfiguration, string(cfg.Kind))
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) //nolint: gosec // game moves, not secrets
}

func validateMark(mark board.Mark) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: mark %q", apperror.ErrInvalidConfiguration, string(mark))
	}

	return nil
}

package engine

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/inarow/internal/apperror"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Options returns the search preset for the difficulty.
func (that Difficulty) Options() (Options, error) {
	switch that {
	case Easy:
		return Options{MaxDepth: 1}, nil
	case Medium:
		return Options{MaxDepth: 4}, nil
	case Hard:
		return Options{MaxDepth: Unbounded, Pruning: true}, nil
	default:
		return Options{}, fmt.Errorf("%w: unknown difficulty %q", apperror.ErrInvalidConfiguration, string(that))
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	difficulty := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, err := difficulty.Options(); err != nil {
		return "", err
	}

	return difficulty, nil
}

// NewForDifficulty builds an engine from a preset.
func NewForDifficulty(difficulty Difficulty) (*Engine, error) {
	opts, err := difficulty.Options()
	if err != nil {
		return nil, err
	}

	return New(opts)
}

package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrNoMoveAvailable      = errors.New("no move available")
	ErrIllegalMove          = errors.New("illegal move")
	ErrMoveNotCached        = errors.New("move not cached")
)

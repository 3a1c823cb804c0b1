package puzzle

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is the only failure Place reports. Every rejection below
// wraps it, so callers that only need to discard a drop can test for it alone.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrNotStarted       = fmt.Errorf("%w: no game in progress", ErrInvalidMove)
	ErrGameOver         = fmt.Errorf("%w: game is over", ErrInvalidMove)
	ErrUnknownPiece     = fmt.Errorf("%w: piece is not in the active set", ErrInvalidMove)
	ErrIllegalPlacement = fmt.Errorf("%w: piece does not fit at anchor", ErrInvalidMove)
	ErrInvalidColor     = fmt.Errorf("%w: cannot place an empty color", ErrInvalidMove)
)

var (
	ErrAlreadyStarted = errors.New("game already started")
	ErrEmptyShape     = errors.New("shape has no occupied cells")
	ErrInvalidShape   = errors.New("invalid shape")
	ErrInvalidBoard   = errors.New("invalid board")
)

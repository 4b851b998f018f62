package ledger

import (
	"errors"

	domain "ecoshop/internal/errors"
)

// Domain errors surfaced by the engine. Callers map these to user-facing
// messages; none of them is fatal.
var (
	ErrInsufficientBalance = domain.ErrInsufficientBalance
	ErrInsufficientFiat    = domain.ErrInsufficientFiat
	ErrInvalidAmount       = domain.ErrInvalidAmount
	ErrInvestmentNotFound  = domain.ErrInvestmentNotFound
	ErrNothingToProcess    = domain.ErrNothingToProcess
)

// ErrCacheMiss is internal to the cache port; it never escapes the engine.
var ErrCacheMiss = errors.New("snapshot not in cache")

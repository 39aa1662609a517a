package semantic

import "errors"

// Sentinel errors for strategy construction.
var (
	ErrInvalidStrategy = errors.New("invalid strategy")
	ErrInvalidWeight   = errors.New("invalid weight")
)

package glossary

import "errors"

// Error values for consistent error handling by callers.
var (
	ErrNotFound      = errors.New("entry not found")
	ErrInvalidEntry  = errors.New("invalid entry")
	ErrMissingColumn = errors.New("missing column")
)

package registry

import "errors"

// Sentinel errors for consistent error handling.
var (
	ErrNoStore         = errors.New("glossary store is required")
	ErrNoTranslator    = errors.New("translation is not configured")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrExecutionFailed = errors.New("tool execution failed")
	ErrNotConnected    = errors.New("client not connected")
)

package translate

import "errors"

var (
	// ErrNoModel is returned when no model handle or factory is configured.
	ErrNoModel = errors.New("no translation model configured")

	// ErrEmptyText is returned when the text to translate is blank.
	ErrEmptyText = errors.New("empty text")

	// ErrMissingAPIKey is returned when an Anthropic model has no API key.
	ErrMissingAPIKey = errors.New("missing API key")
)

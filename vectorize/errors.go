package vectorize

import (
	"errors"
	"fmt"
)

// Reasons a corpus cannot be vectorized.
var (
	ErrEmptyCorpus     = errors.New("empty corpus")
	ErrEmptyVocabulary = errors.New("empty vocabulary")
)

// Error reports a corpus too degenerate to build TF-IDF features from.
type Error struct {
	// Reason is ErrEmptyCorpus or ErrEmptyVocabulary.
	Reason error
	// Documents is the number of texts in the rejected corpus.
	Documents int
}

func (e *Error) Error() string {
	return fmt.Sprintf("vectorize: %v (%d documents)", e.Reason, e.Documents)
}

func (e *Error) Unwrap() error {
	return e.Reason
}

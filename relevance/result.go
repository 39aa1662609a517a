package relevance

import (
	"github.com/jonwraymond/termdiscovery/glossary"
)

// ScoreType indicates how a result's score was computed.
type ScoreType string

const (
	// ScoreBlended is the exact/lexical/cosine blend of the primary path.
	ScoreBlended ScoreType = "blended"

	// ScoreLexical is a lexical-only fallback score.
	ScoreLexical ScoreType = "lexical"

	// ScoreExact is a fallback exact substring match, scored 1.0.
	ScoreExact ScoreType = "exact"
)

// Result is one glossary entry with its relevance score.
type Result struct {
	// Entry is the glossary entry, unmodified.
	Entry glossary.Entry

	// Score is the relevance in [0, 1].
	Score float64

	// ScoreType indicates how Score was computed.
	ScoreType ScoreType

	// Components holds the unweighted exact, lexical and cosine scores on
	// the primary path. Nil for fallback results.
	Components []float64
}

// Results is a slice of Result with helper methods.
type Results []Result

// Entries returns just the entries, in result order.
func (r Results) Entries() []glossary.Entry {
	entries := make([]glossary.Entry, len(r))
	for i, result := range r {
		entries[i] = result.Entry
	}
	return entries
}

// SourceTerms returns just the source terms, in result order.
func (r Results) SourceTerms() []string {
	terms := make([]string, len(r))
	for i, result := range r {
		terms[i] = result.Entry.SourceTerm
	}
	return terms
}

// FilterByMinScore returns results with score >= minScore.
func (r Results) FilterByMinScore(minScore float64) Results {
	filtered := Results{}
	for _, result := range r {
		if result.Score >= minScore {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// FilterByOrigin returns results whose entry has the given origin.
func (r Results) FilterByOrigin(origin string) Results {
	filtered := Results{}
	for _, result := range r {
		if result.Entry.Origin == origin {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// Package lexical computes character-level similarity between glossary
// terms and input text.
//
// The measure is the Ratcliff/Obershelp matching ratio: the longest common
// contiguous block is found, the search recurses into the unmatched text on
// either side, and the matched lengths M are summed. The ratio is
// 2*M / (len(a) + len(b)), counted in runes.
//
// Matching is delegated to go-difflib's SequenceMatcher, including its
// auto-junk heuristic that ignores runes occurring in more than 1% of a
// sequence of 200 runes or more.
package lexical

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/jonwraymond/termdiscovery/textnorm"
)

// Similarity returns the matching ratio of a and b after case folding.
// Two empty strings are identical (1.0); strings with no rune in common
// score 0.0.
func Similarity(a, b string) float64 {
	ra := runes(textnorm.Fold(a))
	rb := runes(textnorm.Fold(b))
	if len(ra)+len(rb) == 0 {
		return 1.0
	}
	return difflib.NewMatcher(ra, rb).Ratio()
}

// runes splits s into one-rune strings, the element type SequenceMatcher
// compares.
func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

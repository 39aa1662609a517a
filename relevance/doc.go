// Package relevance selects the glossary entries that matter for a sentence.
//
// It combines the lexical, vectorize and semantic packages into the single
// operation a translation pipeline needs: given a Vietnamese sentence and a
// glossary, return the entries likely to appear in or relate to it, best
// first.
//
// # Basic Usage
//
//	entries := relevance.ExtractRelevantTerms(
//	    "Hệ thống máy học sử dụng thuật toán",
//	    g, relevance.DefaultThreshold, relevance.DefaultLimit)
//
// # Scoring
//
// Every call builds a TF-IDF space over the sentence and all source terms,
// then scores each entry as
//
//	score = min((1.0*exact + 0.4*lexical + 0.6*cosine) / 2.0, 1.0)
//
// where exact is 1 when the source term occurs verbatim in the folded
// sentence. Entries scoring below the threshold are dropped, the rest are
// sorted by score (ties keep glossary order) and truncated to the limit.
//
// When the corpus cannot be vectorized (every text is empty or made only of
// single-rune tokens) the call is answered entirely by the lexical fallback:
// an exact substring scores 1.0 and is always kept, anything else is kept
// when its lexical ratio reaches the threshold.
//
// # Scored Results
//
// [Scorer.Score] and [Scorer.ScoreSimple] return [Results] carrying each
// entry's score and [ScoreType]; ExtractRelevantTerms and ExtractSimple
// return just the entries.
//
// # Thread Safety
//
// Scorers hold no mutable state and every call builds its own vector space,
// so all functions are safe for concurrent use.
package relevance

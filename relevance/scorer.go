package relevance

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/jonwraymond/termdiscovery/glossary"
	"github.com/jonwraymond/termdiscovery/lexical"
	"github.com/jonwraymond/termdiscovery/semantic"
	"github.com/jonwraymond/termdiscovery/textnorm"
	"github.com/jonwraymond/termdiscovery/vectorize"
)

// Defaults for callers of the primary and fallback paths.
const (
	DefaultThreshold  = 0.3
	DefaultLimit      = 10
	FallbackThreshold = 0.5
)

// Options configures a Scorer.
type Options struct {
	// Strategy blends the per-entry signals. If nil, uses
	// semantic.DefaultBlend().
	Strategy *semantic.WeightedStrategy

	// Vectorize configures the per-call TF-IDF space.
	Vectorize vectorize.Options

	// Logger receives a debug record whenever a call falls back to lexical
	// scoring. If nil, nothing is logged.
	Logger *slog.Logger
}

// Scorer ranks glossary entries against input text.
type Scorer struct {
	strategy  *semantic.WeightedStrategy
	vectorize vectorize.Options
	logger    *slog.Logger
}

// NewScorer creates a Scorer with the given options.
func NewScorer(opts Options) *Scorer {
	s := &Scorer{
		strategy:  opts.Strategy,
		vectorize: opts.Vectorize,
		logger:    opts.Logger,
	}
	if s.strategy == nil {
		s.strategy = semantic.DefaultBlend()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

var defaultScorer = NewScorer(Options{})

// ExtractRelevantTerms returns the entries of g relevant to text, best
// first, using the default Scorer.
func ExtractRelevantTerms(text string, g glossary.Glossary, threshold float64, limit int) []glossary.Entry {
	return defaultScorer.Extract(text, g, threshold, limit)
}

// ExtractSimple runs only the lexical fallback.
func ExtractSimple(text string, g glossary.Glossary, threshold float64, limit int) []glossary.Entry {
	return defaultScorer.ScoreSimple(text, g, threshold, limit).Entries()
}

// Extract returns the entries of g relevant to text, best first.
func (s *Scorer) Extract(text string, g glossary.Glossary, threshold float64, limit int) []glossary.Entry {
	return s.Score(text, g, threshold, limit).Entries()
}

// Score ranks the entries of g against text, keeping scores >= threshold
// and at most limit results. It falls back to ScoreSimple when the corpus
// cannot be vectorized.
func (s *Scorer) Score(text string, g glossary.Glossary, threshold float64, limit int) Results {
	if len(g) == 0 || textnorm.IsBlank(text) || limit <= 0 {
		return Results{}
	}

	q := textnorm.FoldTrim(text)
	terms := make([]string, len(g))
	corpus := make([]string, 0, len(g)+1)
	corpus = append(corpus, q)
	for i, e := range g {
		terms[i] = textnorm.FoldTrim(e.SourceTerm)
		corpus = append(corpus, terms[i])
	}

	res := vectorize.Vectorize(corpus, s.vectorize)
	if !res.OK() {
		s.logger.Debug("vectorization failed, using lexical fallback",
			"error", res.Err, "entries", len(g))
		return s.ScoreSimple(text, g, threshold, limit)
	}

	query := semantic.Query{Text: q, Vector: res.Space.Row(0)}
	scored := make(Results, 0, len(g))
	for i, e := range g {
		c := semantic.Candidate{Term: terms[i], Vector: res.Space.Row(i + 1)}
		components := s.strategy.Components(query, c)
		score := s.strategy.Blend(components)
		if score < threshold {
			continue
		}
		scored = append(scored, Result{
			Entry:      e,
			Score:      score,
			ScoreType:  ScoreBlended,
			Components: components,
		})
	}

	return rank(scored, limit)
}

// ScoreSimple is the lexical fallback. Exact substring matches score 1.0
// and are kept regardless of threshold; other entries are kept when their
// lexical ratio reaches threshold.
func (s *Scorer) ScoreSimple(text string, g glossary.Glossary, threshold float64, limit int) Results {
	if len(g) == 0 || textnorm.IsBlank(text) || limit <= 0 {
		return Results{}
	}

	q := textnorm.FoldTrim(text)
	scored := make(Results, 0, len(g))
	for _, e := range g {
		term := textnorm.FoldTrim(e.SourceTerm)
		if semantic.Contains(q, term) {
			scored = append(scored, Result{Entry: e, Score: 1.0, ScoreType: ScoreExact})
			continue
		}
		score := lexical.Similarity(q, term)
		if score >= threshold {
			scored = append(scored, Result{Entry: e, Score: score, ScoreType: ScoreLexical})
		}
	}

	return rank(scored, limit)
}

// rank sorts by score descending, keeping glossary order on ties, and
// truncates to limit.
func rank(scored Results, limit int) Results {
	slices.SortStableFunc(scored, func(a, b Result) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

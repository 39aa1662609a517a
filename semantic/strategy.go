package semantic

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/termdiscovery/lexical"
	"github.com/jonwraymond/termdiscovery/vectorize"
)

// Query is the folded, trimmed input text and its row in the vector space.
type Query struct {
	Text   string
	Vector vectorize.Vector
}

// Candidate is a folded glossary source term and its row in the same space.
type Candidate struct {
	Term   string
	Vector vectorize.Vector
}

// Strategy scores a candidate against a query.
type Strategy interface {
	Score(q Query, c Candidate) float64
}

// ExactStrategy scores 1 when the candidate term is a substring of the
// query. An empty term never matches.
type ExactStrategy struct{}

// Score implements Strategy.
func (ExactStrategy) Score(q Query, c Candidate) float64 {
	if Contains(q.Text, c.Term) {
		return 1
	}
	return 0
}

// Contains reports whether term occurs in text. Both must already be folded.
func Contains(text, term string) bool {
	return term != "" && strings.Contains(text, term)
}

// LexicalStrategy scores with lexical.Similarity.
type LexicalStrategy struct{}

// Score implements Strategy.
func (LexicalStrategy) Score(q Query, c Candidate) float64 {
	return lexical.Similarity(q.Text, c.Term)
}

// CosineStrategy scores with Cosine over the TF-IDF rows.
type CosineStrategy struct{}

// Score implements Strategy.
func (CosineStrategy) Score(q Query, c Candidate) float64 {
	return Cosine(q.Vector, c.Vector)
}

// Weighted pairs a strategy with its weight in a blend.
type Weighted struct {
	Strategy Strategy
	Weight   float64
}

// WeightedStrategy sums weighted component scores and divides by a fixed
// divisor. The result is clamped to [0, 1].
type WeightedStrategy struct {
	parts   []Weighted
	divisor float64
}

// NewWeightedStrategy creates a blend of parts scaled by 1/divisor.
func NewWeightedStrategy(divisor float64, parts ...Weighted) (*WeightedStrategy, error) {
	if divisor <= 0 {
		return nil, fmt.Errorf("%w: divisor %v must be positive", ErrInvalidWeight, divisor)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no components", ErrInvalidStrategy)
	}
	for i, p := range parts {
		if p.Strategy == nil {
			return nil, fmt.Errorf("%w: component %d is nil", ErrInvalidStrategy, i)
		}
		if p.Weight < 0 {
			return nil, fmt.Errorf("%w: component %d weight %v", ErrInvalidWeight, i, p.Weight)
		}
	}
	cp := make([]Weighted, len(parts))
	copy(cp, parts)
	return &WeightedStrategy{parts: cp, divisor: divisor}, nil
}

// Blend weights. The divisor equals the sum of the weights, the highest raw
// score attainable.
const (
	ExactWeight   = 1.0
	LexicalWeight = 0.4
	CosineWeight  = 0.6
	BlendDivisor  = 2.0
)

// DefaultBlend returns the exact/lexical/cosine blend used for glossary
// relevance.
func DefaultBlend() *WeightedStrategy {
	return &WeightedStrategy{
		parts: []Weighted{
			{Strategy: ExactStrategy{}, Weight: ExactWeight},
			{Strategy: LexicalStrategy{}, Weight: LexicalWeight},
			{Strategy: CosineStrategy{}, Weight: CosineWeight},
		},
		divisor: BlendDivisor,
	}
}

// Score implements Strategy.
func (w *WeightedStrategy) Score(q Query, c Candidate) float64 {
	return w.Blend(w.Components(q, c))
}

// Blend combines component scores, as returned by Components, into the
// final clamped score. Missing components count as zero.
func (w *WeightedStrategy) Blend(components []float64) float64 {
	var raw float64
	for i, p := range w.parts {
		if i < len(components) {
			raw += p.Weight * components[i]
		}
	}
	return Clamp(raw / w.divisor)
}

// Components returns each component's unweighted score, in construction
// order.
func (w *WeightedStrategy) Components(q Query, c Candidate) []float64 {
	out := make([]float64, len(w.parts))
	for i, p := range w.parts {
		out[i] = p.Strategy.Score(q, c)
	}
	return out
}

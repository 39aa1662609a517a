package vectorize

import (
	"math"
	"slices"
	"sort"

	"github.com/blevesearch/bleve/v2/analysis"
	"gonum.org/v1/gonum/floats"
)

// DefaultMaxFeatures caps the vocabulary size.
const DefaultMaxFeatures = 1000

// DefaultMaxNGram produces unigrams and bigrams.
const DefaultMaxNGram = 2

// Options configures Vectorize. Zero values select the defaults.
type Options struct {
	// MaxFeatures is the vocabulary cap. Default: 1000.
	MaxFeatures int

	// MaxNGram is the longest n-gram turned into a term. Default: 2.
	MaxNGram int

	// MinTokenLen drops shorter tokens before n-grams are formed.
	// Default: 2. Ignored when Analyzer is set.
	MinTokenLen int

	// Analyzer overrides the default analysis chain.
	Analyzer analysis.Analyzer
}

func (o Options) withDefaults() Options {
	if o.MaxFeatures <= 0 {
		o.MaxFeatures = DefaultMaxFeatures
	}
	if o.MaxNGram <= 0 {
		o.MaxNGram = DefaultMaxNGram
	}
	if o.Analyzer == nil {
		o.Analyzer = NewAnalyzer(o.MinTokenLen)
	}
	return o
}

// Space is a TF-IDF vector space over one corpus.
type Space struct {
	// Vocabulary maps a term to its column.
	Vocabulary map[string]int
	// Terms maps a column back to its term.
	Terms []string
	// IDF holds the inverse document frequency of each column.
	IDF []float64
	// Rows holds one unit-length vector per input text, in input order.
	Rows []Vector
}

// Dim returns the number of columns.
func (s *Space) Dim() int {
	return len(s.Terms)
}

// Row returns the vector of document i, or an empty vector when i is out
// of range.
func (s *Space) Row(i int) Vector {
	if i < 0 || i >= len(s.Rows) {
		return Vector{}
	}
	return s.Rows[i]
}

// Result is the outcome of Vectorize: exactly one of Space and Err is set.
type Result struct {
	Space *Space
	Err   error
}

// OK reports whether vectorization succeeded.
func (r Result) OK() bool {
	return r.Err == nil && r.Space != nil
}

// Vectorize builds a Space with one row per text.
func Vectorize(texts []string, opts Options) Result {
	if len(texts) == 0 {
		return Result{Err: &Error{Reason: ErrEmptyCorpus}}
	}
	opts = opts.withDefaults()

	counts := make([]map[string]int, len(texts))
	total := make(map[string]int)
	df := make(map[string]int)
	for i, text := range texts {
		c := make(map[string]int)
		for _, term := range NGrams(Tokens(opts.Analyzer, text), opts.MaxNGram) {
			c[term]++
		}
		for term, n := range c {
			total[term] += n
			df[term]++
		}
		counts[i] = c
	}
	if len(df) == 0 {
		return Result{Err: &Error{Reason: ErrEmptyVocabulary, Documents: len(texts)}}
	}

	terms := selectTerms(total, opts.MaxFeatures)
	vocab := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(texts))
	for col, term := range terms {
		vocab[term] = col
		idf[col] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	rows := make([]Vector, len(texts))
	for i, c := range counts {
		rows[i] = weigh(c, vocab, idf)
	}

	return Result{Space: &Space{
		Vocabulary: vocab,
		Terms:      terms,
		IDF:        idf,
		Rows:       rows,
	}}
}

// selectTerms keeps the limit most frequent terms (ties by term ascending)
// and returns them in ascending term order.
func selectTerms(total map[string]int, limit int) []string {
	terms := make([]string, 0, len(total))
	for term := range total {
		terms = append(terms, term)
	}
	if len(terms) > limit {
		sort.Slice(terms, func(i, j int) bool {
			if total[terms[i]] != total[terms[j]] {
				return total[terms[i]] > total[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:limit]
	}
	slices.Sort(terms)
	return terms
}

// weigh turns raw term counts into a unit-length TF-IDF row.
func weigh(counts map[string]int, vocab map[string]int, idf []float64) Vector {
	type cell struct {
		col   int
		count int
	}
	cells := make([]cell, 0, len(counts))
	for term, n := range counts {
		if col, ok := vocab[term]; ok {
			cells = append(cells, cell{col: col, count: n})
		}
	}
	if len(cells) == 0 {
		return Vector{}
	}
	slices.SortFunc(cells, func(a, b cell) int { return a.col - b.col })

	v := Vector{
		Indices: make([]int, len(cells)),
		Values:  make([]float64, len(cells)),
	}
	for i, c := range cells {
		v.Indices[i] = c.col
		v.Values[i] = float64(c.count) * idf[c.col]
	}
	if norm := floats.Norm(v.Values, 2); norm > 0 {
		floats.Scale(1/norm, v.Values)
	}
	return v
}

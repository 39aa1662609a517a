package vectorize

import (
	"strings"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/token/length"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	unicodetok "github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"

	"github.com/jonwraymond/termdiscovery/textnorm"
)

// DefaultMinTokenLen drops single-rune tokens, matching the \w\w+ token
// pattern glossaries were tuned against.
const DefaultMinTokenLen = 2

// NewAnalyzer returns the analysis chain used to split documents into
// tokens: unicode tokenizer -> lowercase -> length(minLen).
func NewAnalyzer(minLen int) *analysis.DefaultAnalyzer {
	if minLen <= 0 {
		minLen = DefaultMinTokenLen
	}
	return &analysis.DefaultAnalyzer{
		Tokenizer: unicodetok.NewUnicodeTokenizer(),
		TokenFilters: []analysis.TokenFilter{
			lowercase.NewLowerCaseFilter(),
			length.NewLengthFilter(minLen, -1),
		},
	}
}

// Tokens returns the analyzed tokens of text in order.
func Tokens(a analysis.Analyzer, text string) []string {
	text = textnorm.Fold(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	stream := a.Analyze([]byte(text))
	tokens := make([]string, 0, len(stream))
	for _, tok := range stream {
		tokens = append(tokens, string(tok.Term))
	}
	return tokens
}

// NGrams expands tokens into every contiguous n-gram for n in [1, maxN],
// unigrams first. Members of an n-gram are joined by a single space.
func NGrams(tokens []string, maxN int) []string {
	if maxN < 1 {
		maxN = 1
	}
	out := make([]string, 0, len(tokens)*maxN)
	out = append(out, tokens...)
	for n := 2; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

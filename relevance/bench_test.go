package relevance

import (
	"fmt"
	"testing"

	"github.com/jonwraymond/termdiscovery/glossary"
)

var benchWords = []string{
	"hệ", "thống", "máy", "học", "thuật", "toán", "dữ", "liệu",
	"mô", "hình", "mạng", "neural", "phân", "loại", "tối", "ưu",
}

func makeBenchGlossary(n int) glossary.Glossary {
	g := make(glossary.Glossary, n)
	for i := range n {
		a := benchWords[i%len(benchWords)]
		b := benchWords[(i/len(benchWords)+i+1)%len(benchWords)]
		g[i] = glossary.Entry{
			SourceTerm: fmt.Sprintf("%s %s", a, b),
			TargetTerm: fmt.Sprintf("term %d", i),
		}
	}
	return g
}

const benchText = "Hệ thống máy học này sử dụng thuật toán phân loại trên dữ liệu lớn"

func BenchmarkScore_Small(b *testing.B) {
	s := NewScorer(Options{})
	g := makeBenchGlossary(20)

	for b.Loop() {
		_ = s.Score(benchText, g, DefaultThreshold, DefaultLimit)
	}
}

func BenchmarkScore_Large(b *testing.B) {
	s := NewScorer(Options{})
	g := makeBenchGlossary(1000)

	for b.Loop() {
		_ = s.Score(benchText, g, DefaultThreshold, DefaultLimit)
	}
}

func BenchmarkScoreSimple_Large(b *testing.B) {
	s := NewScorer(Options{})
	g := makeBenchGlossary(1000)

	for b.Loop() {
		_ = s.ScoreSimple(benchText, g, FallbackThreshold, DefaultLimit)
	}
}

func BenchmarkScore_Parallel(b *testing.B) {
	s := NewScorer(Options{})
	g := makeBenchGlossary(200)

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = s.Score(benchText, g, DefaultThreshold, DefaultLimit)
		}
	})
}

package vectorize

import (
	"errors"
	"math"
	"reflect"
	"slices"
	"testing"
)

const epsilon = 1e-9

func TestTokens(t *testing.T) {
	a := NewAnalyzer(0)
	got := Tokens(a, "Hệ thống MÁY HỌC, sử dụng a thuật-toán!")
	want := []string{"hệ", "thống", "máy", "học", "sử", "dụng", "thuật", "toán"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens() = %q, want %q", got, want)
	}
}

func TestTokens_Blank(t *testing.T) {
	if got := Tokens(NewAnalyzer(0), "   "); got != nil {
		t.Errorf("Tokens(blank) = %q, want nil", got)
	}
}

func TestNGrams(t *testing.T) {
	got := NGrams([]string{"hệ", "thống", "máy"}, 2)
	want := []string{"hệ", "thống", "máy", "hệ thống", "thống máy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NGrams() = %q, want %q", got, want)
	}

	if got := NGrams([]string{"máy"}, 2); !reflect.DeepEqual(got, []string{"máy"}) {
		t.Errorf("NGrams(single) = %q", got)
	}
	if got := NGrams([]string{"máy", "học"}, 0); len(got) != 2 {
		t.Errorf("NGrams(maxN=0) = %q, want unigrams only", got)
	}
}

func TestVectorize_EmptyCorpus(t *testing.T) {
	res := Vectorize(nil, Options{})
	if res.OK() {
		t.Fatal("expected failure for empty corpus")
	}
	if !errors.Is(res.Err, ErrEmptyCorpus) {
		t.Errorf("err = %v, want ErrEmptyCorpus", res.Err)
	}
	var verr *Error
	if !errors.As(res.Err, &verr) {
		t.Fatalf("err = %T, want *Error", res.Err)
	}
	if verr.Documents != 0 {
		t.Errorf("Documents = %d, want 0", verr.Documents)
	}
}

func TestVectorize_EmptyVocabulary(t *testing.T) {
	tests := [][]string{
		{"", ""},
		{"   ", "\t"},
		{"a", "b c", "?!"},
	}
	for _, texts := range tests {
		res := Vectorize(texts, Options{})
		if res.OK() {
			t.Errorf("Vectorize(%q) succeeded, want ErrEmptyVocabulary", texts)
			continue
		}
		if !errors.Is(res.Err, ErrEmptyVocabulary) {
			t.Errorf("Vectorize(%q) err = %v", texts, res.Err)
		}
		if res.Space != nil {
			t.Error("expected nil Space on failure")
		}
	}
}

func TestVectorize_Vocabulary(t *testing.T) {
	res := Vectorize([]string{"hệ thống máy học", "máy học"}, Options{})
	if !res.OK() {
		t.Fatalf("Vectorize failed: %v", res.Err)
	}
	s := res.Space

	want := []string{"học", "hệ", "hệ thống", "máy", "máy học", "thống", "thống máy"}
	slices.Sort(want)
	if !reflect.DeepEqual(s.Terms, want) {
		t.Errorf("Terms = %q, want %q", s.Terms, want)
	}
	for col, term := range s.Terms {
		if s.Vocabulary[term] != col {
			t.Errorf("Vocabulary[%q] = %d, want %d", term, s.Vocabulary[term], col)
		}
	}
	if s.Dim() != len(want) {
		t.Errorf("Dim = %d", s.Dim())
	}
}

func TestVectorize_IDF(t *testing.T) {
	res := Vectorize([]string{"máy học", "máy tính"}, Options{})
	if !res.OK() {
		t.Fatalf("Vectorize failed: %v", res.Err)
	}
	s := res.Space

	// "máy" occurs in both documents, "học" in one.
	shared := s.IDF[s.Vocabulary["máy"]]
	single := s.IDF[s.Vocabulary["học"]]
	if math.Abs(shared-1.0) > epsilon {
		t.Errorf("idf(máy) = %v, want 1.0", shared)
	}
	if want := math.Log(3.0/2.0) + 1; math.Abs(single-want) > epsilon {
		t.Errorf("idf(học) = %v, want %v", single, want)
	}
}

func TestVectorize_RowsAreUnitLength(t *testing.T) {
	texts := []string{
		"hệ thống máy học sử dụng thuật toán",
		"hệ thống",
		"máy học",
		"thuật toán",
		"deep learning",
	}
	res := Vectorize(texts, Options{})
	if !res.OK() {
		t.Fatalf("Vectorize failed: %v", res.Err)
	}
	if len(res.Space.Rows) != len(texts) {
		t.Fatalf("rows = %d, want %d", len(res.Space.Rows), len(texts))
	}
	for i, row := range res.Space.Rows {
		if math.Abs(row.Norm()-1.0) > epsilon {
			t.Errorf("row %d norm = %v, want 1.0", i, row.Norm())
		}
		if !slices.IsSorted(row.Indices) {
			t.Errorf("row %d indices not sorted: %v", i, row.Indices)
		}
	}
}

func TestVectorize_DocumentWithoutTerms(t *testing.T) {
	res := Vectorize([]string{"máy học", "x"}, Options{})
	if !res.OK() {
		t.Fatalf("Vectorize failed: %v", res.Err)
	}
	row := res.Space.Row(1)
	if row.Len() != 0 || row.Norm() != 0 {
		t.Errorf("expected zero row, got %+v", row)
	}
}

func TestVectorize_SingleTermWeights(t *testing.T) {
	res := Vectorize([]string{"máy", "máy máy"}, Options{})
	if !res.OK() {
		t.Fatalf("Vectorize failed: %v", res.Err)
	}
	// one column: both rows normalize to exactly 1
	for i := range 2 {
		row := res.Space.Row(i)
		if row.Len() != 1 || math.Abs(row.Values[0]-1) > epsilon {
			t.Errorf("row %d = %+v, want single unit cell", i, row)
		}
	}
}

func TestVectorize_MaxFeatures(t *testing.T) {
	texts := []string{"alpha beta gamma", "alpha beta", "alpha"}
	res := Vectorize(texts, Options{MaxFeatures: 2, MaxNGram: 1})
	if !res.OK() {
		t.Fatalf("Vectorize failed: %v", res.Err)
	}
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(res.Space.Terms, want) {
		t.Errorf("Terms = %q, want %q", res.Space.Terms, want)
	}
	if res.Space.Row(2).Len() != 1 {
		t.Errorf("row 2 = %+v, want only alpha", res.Space.Row(2))
	}
}

func TestVectorize_MaxFeaturesTieBreak(t *testing.T) {
	res := Vectorize([]string{"delta charlie bravo"}, Options{MaxFeatures: 2, MaxNGram: 1})
	if !res.OK() {
		t.Fatalf("Vectorize failed: %v", res.Err)
	}
	want := []string{"bravo", "charlie"}
	if !reflect.DeepEqual(res.Space.Terms, want) {
		t.Errorf("Terms = %q, want %q", res.Space.Terms, want)
	}
}

func TestVectorize_Deterministic(t *testing.T) {
	texts := []string{"mạng neural sâu", "mạng neural", "trí tuệ nhân tạo"}
	a := Vectorize(texts, Options{})
	b := Vectorize(texts, Options{})
	if !reflect.DeepEqual(a.Space, b.Space) {
		t.Error("expected identical spaces for identical input")
	}
}

func TestVector_Norm(t *testing.T) {
	v := Vector{Indices: []int{1, 4}, Values: []float64{0.6, 0.8}}
	if v.Len() != 2 {
		t.Errorf("Len = %d, want 2", v.Len())
	}
	if math.Abs(v.Norm()-1.0) > epsilon {
		t.Errorf("Norm = %v", v.Norm())
	}
}

func TestSpace_RowOutOfRange(t *testing.T) {
	s := &Space{}
	if s.Row(3).Len() != 0 || s.Row(-1).Len() != 0 {
		t.Error("expected empty vector out of range")
	}
}

package semantic

import (
	"math"
	"testing"

	"github.com/jonwraymond/termdiscovery/vectorize"
)

const epsilon = 1e-9

func TestCosine_Self(t *testing.T) {
	v := vectorize.Vector{Indices: []int{0, 3, 7}, Values: []float64{1, 2, 3}}
	if got := Cosine(v, v); math.Abs(got-1.0) > epsilon {
		t.Errorf("Cosine(v, v) = %v, want 1.0", got)
	}
}

func TestCosine_Zero(t *testing.T) {
	v := vectorize.Vector{Indices: []int{1}, Values: []float64{0.5}}
	if got := Cosine(v, vectorize.Vector{}); got != 0 {
		t.Errorf("Cosine(v, 0) = %v, want 0", got)
	}
	if got := Cosine(vectorize.Vector{}, vectorize.Vector{}); got != 0 {
		t.Errorf("Cosine(0, 0) = %v, want 0", got)
	}
}

func TestCosine_Orthogonal(t *testing.T) {
	u := vectorize.Vector{Indices: []int{0, 2}, Values: []float64{1, 1}}
	v := vectorize.Vector{Indices: []int{1, 3}, Values: []float64{1, 1}}
	if got := Cosine(u, v); got != 0 {
		t.Errorf("Cosine = %v, want 0", got)
	}
}

func TestCosine_Partial(t *testing.T) {
	u := vectorize.Vector{Indices: []int{0, 1}, Values: []float64{1, 1}}
	v := vectorize.Vector{Indices: []int{1}, Values: []float64{1}}
	want := 1 / math.Sqrt2
	if got := Cosine(u, v); math.Abs(got-want) > epsilon {
		t.Errorf("Cosine = %v, want %v", got, want)
	}
}

func TestCosine_SpaceRows(t *testing.T) {
	res := vectorize.Vectorize([]string{"máy học", "máy học", "thuật toán"}, vectorize.Options{})
	if !res.OK() {
		t.Fatalf("Vectorize failed: %v", res.Err)
	}
	s := res.Space
	if got := Cosine(s.Row(0), s.Row(1)); math.Abs(got-1) > epsilon {
		t.Errorf("identical docs cosine = %v", got)
	}
	if got := Cosine(s.Row(0), s.Row(2)); got != 0 {
		t.Errorf("disjoint docs cosine = %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.0000001, 1},
		{math.NaN(), 0},
		{math.Inf(1), 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package vectorize

import (
	"gonum.org/v1/gonum/floats"
)

// Vector is a sparse row of a Space. Indices are strictly increasing column
// numbers; Values holds the weight for each index.
type Vector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero cells.
func (v Vector) Len() int {
	return len(v.Indices)
}

// Norm returns the L2 norm of v.
func (v Vector) Norm() float64 {
	if len(v.Values) == 0 {
		return 0
	}
	return floats.Norm(v.Values, 2)
}

package semantic

import (
	"github.com/jonwraymond/termdiscovery/vectorize"
)

// Cosine returns the cosine similarity of two sparse rows of the same
// space, clamped to [0, 1]. A zero vector on either side yields 0.
func Cosine(u, v vectorize.Vector) float64 {
	nu, nv := u.Norm(), v.Norm()
	if nu == 0 || nv == 0 {
		return 0
	}

	var dot float64
	i, j := 0, 0
	for i < len(u.Indices) && j < len(v.Indices) {
		switch {
		case u.Indices[i] == v.Indices[j]:
			dot += u.Values[i] * v.Values[j]
			i++
			j++
		case u.Indices[i] < v.Indices[j]:
			i++
		default:
			j++
		}
	}
	return Clamp(dot / (nu * nv))
}

// Clamp limits x to [0, 1]. NaN maps to 0.
func Clamp(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x >= 0:
		return x
	default:
		return 0
	}
}

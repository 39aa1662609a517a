// Package semantic scores a query against glossary terms.
//
// It defines pluggable scoring strategies over a [Query] and a [Candidate],
// both carrying folded text and a TF-IDF row from the same vector space.
//
// # Strategies
//
// Three built-in strategies are provided:
//
//   - [ExactStrategy]: 1 when the term occurs verbatim in the query, else 0
//   - [LexicalStrategy]: Ratcliff/Obershelp matching ratio of the two strings
//   - [CosineStrategy]: cosine similarity of the two TF-IDF rows
//
// [WeightedStrategy] blends any number of strategies with fixed weights and
// divides the sum by a constant, clamping the result to [0, 1]:
//
//	blend, _ := semantic.NewWeightedStrategy(2.0,
//	    semantic.Weighted{Strategy: semantic.ExactStrategy{}, Weight: 1.0},
//	    semantic.Weighted{Strategy: semantic.LexicalStrategy{}, Weight: 0.4},
//	    semantic.Weighted{Strategy: semantic.CosineStrategy{}, Weight: 0.6},
//	)
//
// [DefaultBlend] returns exactly that configuration.
//
// # Thread Safety
//
// All strategies are stateless and safe for concurrent Score calls.
//
// # Error Handling
//
// The package defines these sentinel errors:
//   - [ErrInvalidStrategy]: a weighted component has no strategy
//   - [ErrInvalidWeight]: a weight is negative or the divisor is not positive
package semantic

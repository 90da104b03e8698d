// Package random provides the biased random source used to shuffle rows
// and to pick random quick sort pivots.
//
// The package is built around a single interface:
//
//   - [Source]: uniform float64 generator in [0, 1)
//   - [Gamma], [Beta]: shape-parameterised samplers drawing from a Source
//   - [Biased]: Beta(alpha, beta) source, itself a Source
//   - [Shuffle]: Fisher–Yates over any Source
//
// # Example
//
//	src := random.NewSource(42)
//	b, _ := random.NewBiased(src, 1, 1)
//	random.Shuffle(b, row, 0, len(row))
//
// With alpha == beta == 1 the biased source is uniform and the shuffle is
// an ordinary Fisher–Yates shuffle.
package random

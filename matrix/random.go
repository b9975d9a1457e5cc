// SPDX-License-Identifier: MIT
// Package: matrix
//
// random.go - RandomSparse(n, p, rng, maxWeight) adjacency generator.
//
// Canonical model:
//   - Erdős–Rényi-like digraph: each ordered pair (i,j), i≠j, carries an edge
//     independently with probability p.
//   - Edge weights are drawn uniformly from [0, maxWeight].
//   - Diagonal is always Finite(0); absent edges are Unreachable.
//
// Determinism:
//   - Stable trial order: i asc, j asc. One Bernoulli draw per pair, followed
//     by one weight draw when the edge is kept, so a fixed seed always yields
//     the same matrix.

package matrix

import (
	"fmt"
	"math/rand"
)

// File-local constants (stable method tag and domains).
const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse samples an n×n adjacency matrix with edge probability p and
// weights in [0, maxWeight], maxWeight ≤ MaxFinite. rng may be nil only when p ∈ {0, 1} and
// maxWeight == 0, since nothing needs to be sampled then.
// Complexity: O(n²) time and memory.
func RandomSparse(n int, p float64, rng *rand.Rand, maxWeight int64) (*Dense, error) {
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	if maxWeight < 0 {
		return nil, fmt.Errorf("%s: maxWeight=%d: %w", methodRandomSparse, maxWeight, ErrNegativeWeight)
	}
	if maxWeight > MaxFinite {
		return nil, fmt.Errorf("%s: maxWeight=%d: %w", methodRandomSparse, maxWeight, ErrWeightTooLarge)
	}
	if rng == nil && ((p > probMin && p < probMax) || maxWeight > 0) {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
	}

	m, err := NewIdentity(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}

	var i, j int
	var keep bool
	var w int64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng == nil {
				keep = p == probMax
			} else {
				keep = rng.Float64() < p
			}
			if !keep {
				continue
			}
			w = 0
			if maxWeight > 0 {
				w = rng.Int63n(maxWeight + 1)
			}
			m.data[i*n+j] = Finite(w)
		}
	}

	return m, nil
}

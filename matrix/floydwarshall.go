// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Serves as the reference oracle the tropical engine is checked against.
//
// Contract:
//   - Square matrix; Unreachable means “no path”; diagonal should be 0.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest path distances in-place on m.
//
// Contract:
//   - m must be square (n×n).
//   - Unreachable denotes “no edge” off-diagonal; the diagonal should be 0.
//
// Determinism:
//   - Loop order is fixed (k → i → j); relaxation happens on strict
//     improvement only.
//
// Complexity: Time O(n^3), Extra space O(1) (fully in-place).
func FloydWarshall(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, err)
	}

	n := m.r
	data := m.data

	var (
		k, i, j      int    // loop indices
		baseK, baseI int    // row base offsets for K and I in the flat buffer
		ik, kj, cand Weight // d[i,k], d[k,j], candidate via k
	)
	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		baseK = k * n
		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			if !ik.finite { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = data[baseK+j]
				if !kj.finite {
					continue
				}
				cand = ik.Add(kj)
				data[baseI+j] = data[baseI+j].Min(cand) // keeps the old value on ties
			}
		}
	}

	return nil
}

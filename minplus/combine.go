// SPDX-License-Identifier: MIT
// Package: minplus
//
// Purpose:
//   - Min-plus (tropical) composition of two square weight matrices with
//     argmin tracking.
//
// Contract:
//   - Both operands n×n; Unreachable entries are absorbing, never an error.
//   - Predecessor is written on strict improvement only (lowest k on ties).
//   - A running minimum of 0 cannot improve under non-negative weights, so
//     the k-scan for that cell stops there.

package minplus

import (
	"fmt"

	"github.com/katalvlaran/tropath/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opCombine = "Combine"
	opBuild   = "Build"
)

// Combine returns C = A ⊗ B under min-plus arithmetic and the predecessor
// matrix P, where C[i][j] = min over k of A[i][k] + B[k][j] and P[i][j] is the
// k attaining it. Cells without a finite term are Unreachable with
// P[i][j] = NoPredecessor.
//
// Neither operand is modified.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (wrapped).
// Complexity: Time O(n³), Space O(n²).
func Combine(a, b *matrix.Dense) (*matrix.Dense, *Predecessors, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opCombine, err)
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opCombine, err)
	}

	n := a.Rows()
	c, err := matrix.NewDense(n, n) // every cell starts Unreachable
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opCombine, err)
	}
	p := newPredecessors(n)

	// B is read column-wise in the hot loop; snapshot it row-major once so
	// the scan does not go through bounds-checked accessors n³ times.
	bw := make([]matrix.Weight, n*n)
	rowA := make([]matrix.Weight, n)

	var (
		i, j, k     int
		best, cand  matrix.Weight
		arg         int
		aik         matrix.Weight
		baseI, colK int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			bw[i*n+j], _ = b.At(i, j) // safe after shape validation
		}
	}

	for i = 0; i < n; i++ { // row of A
		for k = 0; k < n; k++ {
			rowA[k], _ = a.At(i, k)
		}
		baseI = i * n
		for j = 0; j < n; j++ { // column of B
			best = matrix.Unreachable() // identity of min
			arg = NoPredecessor
			for k = 0; k < n; k++ { // intermediate vertex
				aik = rowA[k]
				if !aik.IsFinite() {
					continue
				}
				colK = k*n + j
				if !bw[colK].IsFinite() {
					continue
				}
				cand = aik.Add(bw[colK])
				if cand.Less(best) { // strict improvement only
					best = cand
					arg = k
					if best.IsZero() {
						break
					}
				}
			}
			_ = c.Set(i, j, best)
			p.data[baseI+j] = arg
		}
	}

	return c, p, nil
}

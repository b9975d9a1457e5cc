// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/structure checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Structural checks scan row-major and fail on the first violation.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateZeroDiagonal checks that every diagonal entry of the square
// matrix m is Finite(0).
// Complexity: O(n).
func ValidateZeroDiagonal(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}
	for i := 0; i < m.r; i++ {
		if !m.data[i*m.c+i].IsZero() {
			return validatorErrorf("ValidateZeroDiagonal",
				fmt.Errorf("[%d,%d]=%s: %w", i, i, m.data[i*m.c+i], ErrNonZeroDiagonal))
		}
	}

	return nil
}

// ValidateNonNegative checks that no finite cell of m is below zero.
// Unreachable cells are accepted.
// Complexity: O(r*c).
func ValidateNonNegative(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	var i, j int
	var w Weight
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			w = m.data[i*m.c+j]
			if w.finite && w.val < 0 {
				return validatorErrorf("ValidateNonNegative",
					fmt.Errorf("[%d,%d]=%d: %w", i, j, w.val, ErrNegativeWeight))
			}
		}
	}

	return nil
}

// ValidateAdjacency is the composite used by strict builders:
// Square → ZeroDiagonal → NonNegative.
// Complexity: O(n²).
func ValidateAdjacency(m *Dense) error {
	if err := ValidateZeroDiagonal(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}
	if err := ValidateNonNegative(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}

	return nil
}

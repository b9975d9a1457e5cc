// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("op: %w", ErrX);
// callers match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. combining an n×n matrix with an m×m one, or a non-square input.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows signals that row-wise input did not have equal row lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNonZeroDiagonal signals that an adjacency diagonal entry is not 0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegativeWeight signals a finite weight below zero.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrWeightTooLarge signals a requested weight bound above MaxFinite.
	ErrWeightTooLarge = errors.New("matrix: weight exceeds MaxFinite")

	// ErrInvalidProbability is returned by RandomSparse when p is outside [0,1].
	ErrInvalidProbability = errors.New("matrix: probability must be in [0,1]")

	// ErrNeedRandSource is returned by RandomSparse when sampling needs an RNG.
	ErrNeedRandSource = errors.New("matrix: random source is required")
)

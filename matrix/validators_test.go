// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/tropath/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) *matrix.Dense {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	sq, _ := matrix.NewDense(3, 3)
	rect, _ := matrix.NewDense(3, 2)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
}

// TestValidateAdjacency covers the strict composite: diagonal, then sign.
func TestValidateAdjacency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]int64
		wantErr error
	}{
		{"valid", [][]int64{{0, 2}, {inf, 0}}, nil},
		{"non-zero diagonal", [][]int64{{1, 2}, {inf, 0}}, matrix.ErrNonZeroDiagonal},
		{"unreachable diagonal", [][]int64{{0, 2}, {inf, inf}}, matrix.ErrNonZeroDiagonal},
		{"negative weight", [][]int64{{0, -2}, {inf, 0}}, matrix.ErrNegativeWeight},
		{"non-square", [][]int64{{0, 1, 2}, {1, 0, 2}}, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewFromRows(tc.rows)
			require.NoError(t, err)
			err = matrix.ValidateAdjacency(m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateNonNegative accepts Unreachable cells.
func TestValidateNonNegative(t *testing.T) {
	t.Parallel()

	m, _ := matrix.NewDense(2, 2)
	require.NoError(t, matrix.ValidateNonNegative(m))
	require.ErrorIs(t, matrix.ValidateNonNegative(nil), matrix.ErrNilMatrix)
}

package minplus_test

import (
	"testing"

	"github.com/katalvlaran/tropath/matrix"
	"github.com/katalvlaran/tropath/minplus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine_Errors(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewIdentity(3)
	b, _ := matrix.NewIdentity(4)
	rect, _ := matrix.NewDense(3, 4)

	_, _, err := minplus.Combine(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, _, err = minplus.Combine(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, _, err = minplus.Combine(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, _, err = minplus.Combine(rect, rect)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// Combining with the min-plus identity (0 diagonal, Unreachable elsewhere)
// returns the other operand unchanged, on either side.
func TestCombine_Identity(t *testing.T) {
	t.Parallel()

	b := mustRows(t, fourVertexRows)
	id, _ := matrix.NewIdentity(4)

	right, _, err := minplus.Combine(b, id)
	require.NoError(t, err)
	assert.True(t, right.Equal(b), "B ⊗ I = B, got\n%s", right)

	left, _, err := minplus.Combine(id, b)
	require.NoError(t, err)
	assert.True(t, left.Equal(b), "I ⊗ B = B, got\n%s", left)
}

// A converged shortest-distance matrix is a fixed point of self-composition.
func TestCombine_IdempotentOnConverged(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		d := randomAdjacency(t, 7, 0.35, seed)
		require.NoError(t, matrix.FloydWarshall(d))

		c, _, err := minplus.Combine(d, d)
		require.NoError(t, err)
		assert.True(t, c.Equal(d), "seed %d: D ⊗ D != D", seed)
	}
}

// Unreachable operands are absorbing and yield NoPredecessor.
func TestCombine_AllUnreachable(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewDense(3, 3)
	c, p, err := minplus.Combine(a, a)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			w, _ := c.At(i, j)
			assert.False(t, w.IsFinite())
			k, _ := p.At(i, j)
			assert.Equal(t, minplus.NoPredecessor, k)
		}
	}
}

// A worse finite candidate scanned after the minimum must not overwrite the
// recorded predecessor.
func TestCombine_PredecessorTracksMinimum(t *testing.T) {
	t.Parallel()

	// Row 0 of A: via k=1 costs 1+1=2, via k=2 costs 1+5=6 (scanned later).
	a := mustRows(t, [][]int64{
		{0, 1, 1},
		{inf, 0, inf},
		{inf, inf, 0},
	})
	b := mustRows(t, [][]int64{
		{inf, inf, 10},
		{inf, 0, 1},
		{inf, inf, 5},
	})

	c, p, err := minplus.Combine(a, b)
	require.NoError(t, err)
	w, _ := c.At(0, 2)
	assert.Equal(t, matrix.Finite(2), w)
	k, _ := p.At(0, 2)
	assert.Equal(t, 1, k)
}

// Ties resolve to the lowest intermediate index.
func TestCombine_TieBreakLowestIndex(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int64{
		{inf, 2, 1},
		{inf, inf, inf},
		{inf, inf, inf},
	})
	b := mustRows(t, [][]int64{
		{inf, inf, inf},
		{inf, inf, 1},
		{inf, inf, 2},
	})

	c, p, err := minplus.Combine(a, b)
	require.NoError(t, err)
	w, _ := c.At(0, 2)
	assert.Equal(t, matrix.Finite(3), w)
	k, _ := p.At(0, 2)
	assert.Equal(t, 1, k)
}

// A zero-cost composition stops the scan; the first zero wins.
func TestCombine_ZeroShortCircuit(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int64{
		{0, 0},
		{inf, 0},
	})
	c, p, err := minplus.Combine(a, a)
	require.NoError(t, err)
	w, _ := c.At(0, 1)
	assert.True(t, w.IsZero())
	k, _ := p.At(0, 1)
	assert.Equal(t, 0, k)
}

// Combine must not modify its operands.
func TestCombine_Pure(t *testing.T) {
	t.Parallel()

	a := mustRows(t, fourVertexRows)
	before := a.Clone()
	_, _, err := minplus.Combine(a, a)
	require.NoError(t, err)
	assert.True(t, a.Equal(before))
}

// Saturating sums stay finite and never wrap around.
func TestCombine_NoOverflow(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int64{
		{0, matrix.MaxFinite},
		{matrix.MaxFinite, 0},
	})
	c, _, err := minplus.Combine(a, a)
	require.NoError(t, err)
	w, _ := c.At(0, 1)
	assert.Equal(t, matrix.Finite(matrix.MaxFinite), w)
	w, _ = c.At(0, 0)
	assert.True(t, w.IsZero())
}

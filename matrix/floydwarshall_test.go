package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tropath/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- FloydWarshall ----------

func TestFloydWarshall_Errors(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)

	ns, _ := matrix.NewDense(3, 4)
	require.ErrorIs(t, matrix.FloydWarshall(ns), matrix.ErrDimensionMismatch)
}

// Four-vertex directed example with a cycle 2→3→4→2.
func TestFloydWarshall_FourVertices(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]int64{
		{0, 5, 9, inf},
		{inf, 0, 1, inf},
		{inf, inf, 0, 2},
		{inf, 3, inf, 0},
	})
	require.NoError(t, err)
	require.NoError(t, matrix.FloydWarshall(m))

	assert.Equal(t, [][]int64{
		{0, 5, 6, 8},
		{inf, 0, 1, 3},
		{inf, 5, 0, 2},
		{inf, 3, 4, 0},
	}, m.Raw())
}

// Unreachable must never be summed into a finite value.
func TestFloydWarshall_DisconnectedStaysUnreachable(t *testing.T) {
	t.Parallel()

	m, _ := matrix.NewIdentity(3)
	require.NoError(t, m.Set(0, 1, matrix.Finite(matrix.MaxFinite)))
	require.NoError(t, matrix.FloydWarshall(m))

	w, _ := m.At(0, 2)
	assert.False(t, w.IsFinite())
	w, _ = m.At(1, 0)
	assert.False(t, w.IsFinite())
	w, _ = m.At(0, 1)
	assert.Equal(t, matrix.Finite(matrix.MaxFinite), w)
}

package minplus_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tropath/matrix"
	"github.com/stretchr/testify/require"
)

const inf = matrix.Sentinel

// fourVertexRows is the demo digraph: 1→2=5, 1→3=9, 2→3=1, 3→4=2, 4→2=3.
var fourVertexRows = [][]int64{
	{0, 5, 9, inf},
	{inf, 0, 1, inf},
	{inf, inf, 0, 2},
	{inf, 3, inf, 0},
}

// mustRows builds a Dense from raw rows or fails the test.
func mustRows(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()

	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomAdjacency samples a strictly positive-weight digraph so shortest
// walks are simple paths.
func randomAdjacency(t testing.TB, n int, p float64, seed int64) *matrix.Dense {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.RandomSparse(n, p, rng, 19)
	require.NoError(t, err)
	var w matrix.Weight
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w, _ = m.At(i, j)
			if v, ok := w.Value(); ok && i != j {
				require.NoError(t, m.Set(i, j, matrix.Finite(v+1)))
			}
		}
	}

	return m
}

// randomZeroHeavyAdjacency samples weights in [0, 2] so zero-weight edges
// and equal-cost alternatives are common.
func randomZeroHeavyAdjacency(t testing.TB, n int, p float64, seed int64) *matrix.Dense {
	t.Helper()

	m, err := matrix.RandomSparse(n, p, rand.New(rand.NewSource(seed)), 2)
	require.NoError(t, err)

	return m
}

// pathWeight sums adjacency weights along 1-based vertices.
func pathWeight(t testing.TB, adj *matrix.Dense, vertices []int) matrix.Weight {
	t.Helper()

	total := matrix.Finite(0)
	for idx := 1; idx < len(vertices); idx++ {
		w, err := adj.At(vertices[idx-1]-1, vertices[idx]-1)
		require.NoError(t, err)
		total = total.Add(w)
	}

	return total
}

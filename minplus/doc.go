// Package minplus computes all-pairs shortest paths on weighted directed
// graphs by iterated min-plus (tropical) matrix composition.
//
// Overview:
//
//   - Combine composes two n×n weight matrices: C[i][j] = min over k of
//     A[i][k] + B[k][j], recording in P[i][j] the k that attained it.
//   - Build composes the adjacency matrix with itself step after step,
//     producing a Table whose step k holds the best distances using at most
//     k edges, for k = 1..n−1, together with the predecessor matrix of that
//     step.
//   - (*Table).ShortestPath and Query read the final step for the distance
//     and unwind the predecessor matrices back to step 1 to recover the
//     vertex path.
//
// Weights:
//
//   - matrix.Weight is either finite or Unreachable. Composition is total:
//     Unreachable absorbs, finite sums saturate and never overflow.
//   - Negative weights and non-zero diagonals are NOT validated by default
//     and produce unspecified results. Opt in with WithStrict to reject them.
//
// Determinism:
//
//   - Predecessors are updated on strict improvement only, so ties resolve
//     to the lowest intermediate index.
//   - A running minimum of 0 ends the scan for that cell early.
//
// Complexity:
//
//   - Combine: O(n³) time, O(n²) memory.
//   - Build:   n−2 compositions, O(n⁴) time, O(n³) memory for the table.
//     Squaring or in-place relaxation (see matrix.FloydWarshall) are
//     asymptotically better; this engine is meant for small graphs.
//   - Query:   O(n) after Build.
//
// Thread safety:
//
//   - A Table is immutable once Build returns. Any number of goroutines may
//     query it concurrently without synchronization.
//
// Example:
//
//	adj, _ := matrix.NewFromRows([][]int64{
//	    {0, 5, 9, matrix.Sentinel},
//	    {matrix.Sentinel, 0, 1, matrix.Sentinel},
//	    {matrix.Sentinel, matrix.Sentinel, 0, 2},
//	    {matrix.Sentinel, 3, matrix.Sentinel, 0},
//	})
//	t, err := minplus.Build(adj)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(minplus.Query(t, 1, 4)) // 1->2->3->4= 8
package minplus

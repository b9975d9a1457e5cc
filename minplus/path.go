// SPDX-License-Identifier: MIT
// Package: minplus
//
// Purpose:
//   - Answer (source, target) queries against a finished Table: total
//     distance from the final step, vertex path from the predecessor chain.

package minplus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tropath/matrix"
)

// Path is the answer to a shortest-path query. Vertices are 1-based, start
// with Source and end with Target. For an Unreachable pair Vertices holds
// only the two endpoints.
type Path struct {
	Source   int
	Target   int
	Vertices []int
	Distance matrix.Weight

	unreachableText string
}

// Reachable reports whether a finite path exists.
func (p Path) Reachable() bool { return p.Distance.IsFinite() }

// String renders "<source>-><v1>...-><target>= <distance>". Unreachable
// distances print as the raw sentinel unless the table was built with
// WithUnreachableText.
func (p Path) String() string {
	var sb strings.Builder
	for idx, v := range p.Vertices {
		if idx > 0 {
			sb.WriteString("->")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString("= ")
	if !p.Distance.IsFinite() && p.unreachableText != "" {
		sb.WriteString(p.unreachableText)
	} else {
		sb.WriteString(strconv.FormatInt(p.Distance.Raw(), 10))
	}

	return sb.String()
}

// ShortestPath answers a query for 1-based vertices source and target.
//
// The distance is the final step's cell (source−1, target−1). The path is
// recovered by walking the predecessor matrices from the last step down to
// step 2, reading at each step the predecessor of the current column:
//   - a predecessor equal to the current column means the same distance was
//     already reachable with one edge fewer, so nothing is emitted;
//   - a predecessor equal to the source ends the walk;
//   - otherwise it is emitted and becomes the current column.
//
// Errors: ErrNilTable, ErrIncorrectVertices (index outside [1, n] or empty
// table). The table is not consulted when validation fails.
// Complexity: O(n).
func (t *Table) ShortestPath(source, target int) (Path, error) {
	if t == nil {
		return Path{}, ErrNilTable
	}
	if len(t.dist) == 0 ||
		source < 1 || source > t.n ||
		target < 1 || target > t.n {
		return Path{}, fmt.Errorf("ShortestPath(%d,%d) on %d vertices: %w", source, target, t.n, ErrIncorrectVertices)
	}

	i, j := source-1, target-1
	last := len(t.dist)
	dist, _ := t.dist[last-1].At(i, j) // safe after validation

	res := Path{
		Source:          source,
		Target:          target,
		Distance:        dist,
		unreachableText: t.unreachableText,
	}
	if !dist.IsFinite() {
		res.Vertices = []int{source, target}
		return res, nil
	}

	// Intermediates in reverse (target-side first), 0-based.
	var (
		rev  []int
		cur  = j
		step int
		k    int
	)
	for step = last; step >= 2 && cur != i; step-- {
		k = t.pred[step-1].data[i*t.n+cur]
		if k == NoPredecessor || k == i {
			break
		}
		if k == cur {
			continue
		}
		rev = append(rev, k)
		cur = k
	}

	res.Vertices = make([]int, 0, len(rev)+2)
	res.Vertices = append(res.Vertices, source)
	for idx := len(rev) - 1; idx >= 0; idx-- {
		res.Vertices = append(res.Vertices, rev[idx]+1)
	}
	res.Vertices = append(res.Vertices, target)

	return res, nil
}

// Query answers a query as a single formatted line: the Path string on
// success, IncorrectVerticesMessage otherwise. It never fails.
func Query(t *Table, source, target int) string {
	p, err := t.ShortestPath(source, target)
	if err != nil {
		return IncorrectVerticesMessage
	}

	return p.String()
}

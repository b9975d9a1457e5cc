// SPDX-License-Identifier: MIT
// Package: minplus
//
// Purpose:
//   - Build the per-step distance table from an adjacency matrix.
//
// Layout:
//   - Distances and predecessors live in two sequences indexed by step
//     number k (slot k-1). Step 1 is the adjacency matrix and has no
//     predecessor matrix; slot 0 of the predecessor sequence stays nil.

package minplus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tropath/matrix"
)

// Table is the immutable result of Build: for every step k in [1, n−1] the
// best distances using at most k edges and, for k ≥ 2, the predecessor
// matrix of the composition that produced them.
type Table struct {
	n               int             // vertex count
	dist            []*matrix.Dense // dist[k-1]: distances at step k
	pred            []*Predecessors // pred[k-1]: predecessors at step k (nil for k=1)
	unreachableText string          // rendering of Unreachable in Path.String
}

// Build constructs the distance table for the square adjacency matrix adj.
//
// Algorithm:
//   - step 1: a clone of adj (best distance with at most one edge);
//   - step k, 2 ≤ k ≤ n−1: Combine(dist_{k−1}, adj).
//
// The loop runs exactly n−1 times; for n = 1 the table is empty and every
// query reports ErrIncorrectVertices. adj is cloned, so later changes to it
// do not affect the table.
//
// Preconditions and validation (in order):
//  1. adj must be non-nil and square (matrix.ErrNilMatrix, matrix.ErrDimensionMismatch).
//  2. With WithStrict: zero diagonal and non-negative finite weights
//     (matrix.ErrNonZeroDiagonal, matrix.ErrNegativeWeight).
//
// Complexity: Time O(n⁴), Space O(n³).
func Build(adj *matrix.Dense, opts ...Option) (*Table, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	if cfg.Strict {
		if err := matrix.ValidateAdjacency(adj); err != nil {
			return nil, fmt.Errorf("%s: %w", opBuild, err)
		}
	}

	n := adj.Rows()
	steps := n - 1
	base := adj.Clone()
	t := &Table{
		n:               n,
		dist:            make([]*matrix.Dense, 0, steps),
		pred:            make([]*Predecessors, 0, steps),
		unreachableText: cfg.UnreachableText,
	}

	var (
		k    int
		d    *matrix.Dense
		p    *Predecessors
		err  error
		prev *matrix.Dense
	)
	for k = 1; k <= steps; k++ {
		if k == 1 {
			d, p = base, nil
		} else {
			prev = t.dist[k-2]
			d, p, err = Combine(prev, base)
			if err != nil {
				return nil, fmt.Errorf("%s: step %d: %w", opBuild, k, err)
			}
		}
		t.dist = append(t.dist, d)
		t.pred = append(t.pred, p)

		if cfg.Logger != nil && cfg.Logger.Enabled(context.Background(), slog.LevelDebug) {
			cfg.Logger.Debug("minplus: step built",
				slog.Int("step", k),
				slog.Int("vertices", n),
				slog.Int("reachable", countFinite(d)))
		}
	}

	return t, nil
}

// countFinite returns the number of finite cells in m.
func countFinite(m *matrix.Dense) int {
	var cnt, i, j int
	var w matrix.Weight
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			w, _ = m.At(i, j)
			if w.IsFinite() {
				cnt++
			}
		}
	}

	return cnt
}

// Vertices returns the vertex count n of the adjacency matrix.
func (t *Table) Vertices() int { return t.n }

// Steps returns the number of steps in the table (n−1).
func (t *Table) Steps() int { return len(t.dist) }

// checkStep validates a 1-based step number.
func (t *Table) checkStep(step int) error {
	if step < 1 || step > len(t.dist) {
		return fmt.Errorf("step %d not in [1,%d]: %w", step, len(t.dist), ErrStepOutOfRange)
	}

	return nil
}

// DistanceAt returns the best distance from row to col (0-based) using at
// most step edges.
func (t *Table) DistanceAt(step, row, col int) (matrix.Weight, error) {
	if err := t.checkStep(step); err != nil {
		return matrix.Unreachable(), err
	}

	return t.dist[step-1].At(row, col)
}

// PredecessorAt returns the 0-based intermediate vertex recorded for
// (row, col) at step. Step 1 has no predecessor matrix (ErrNoPredecessors).
func (t *Table) PredecessorAt(step, row, col int) (int, error) {
	if err := t.checkStep(step); err != nil {
		return NoPredecessor, err
	}
	if t.pred[step-1] == nil {
		return NoPredecessor, fmt.Errorf("step %d: %w", step, ErrNoPredecessors)
	}

	return t.pred[step-1].At(row, col)
}

// Distances returns a copy of the distance matrix of step.
func (t *Table) Distances(step int) (*matrix.Dense, error) {
	if err := t.checkStep(step); err != nil {
		return nil, err
	}

	return t.dist[step-1].Clone(), nil
}

// Predecessors returns a copy of the predecessor matrix of step (k ≥ 2).
func (t *Table) Predecessors(step int) (*Predecessors, error) {
	if err := t.checkStep(step); err != nil {
		return nil, err
	}
	if t.pred[step-1] == nil {
		return nil, fmt.Errorf("step %d: %w", step, ErrNoPredecessors)
	}

	return t.pred[step-1].Clone(), nil
}

// Final returns a copy of the last step's distance matrix, or nil for an
// empty table.
func (t *Table) Final() *matrix.Dense {
	if len(t.dist) == 0 {
		return nil
	}

	return t.dist[len(t.dist)-1].Clone()
}

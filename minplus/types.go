// Package minplus defines core types and configuration options for the
// tropical (min-plus) all-pairs shortest path engine.
package minplus

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/tropath/matrix"
)

// Sentinel errors returned by the minplus implementation.
var (
	// ErrIncorrectVertices indicates a query vertex outside [1, n], or a query
	// against a table that has no steps (n = 1).
	ErrIncorrectVertices = errors.New("minplus: incorrect vertices")

	// ErrNilTable indicates that a nil *Table was queried.
	ErrNilTable = errors.New("minplus: table is nil")

	// ErrStepOutOfRange indicates a step number outside [1, Steps()].
	ErrStepOutOfRange = errors.New("minplus: step out of range")

	// ErrNoPredecessors indicates a predecessor lookup on step 1, which is
	// the raw adjacency matrix and carries no predecessor matrix.
	ErrNoPredecessors = errors.New("minplus: step has no predecessor matrix")
)

// IncorrectVerticesMessage is the failure line Query renders for invalid
// vertex pairs.
const IncorrectVerticesMessage = "Incorrect vertices. Try inputting valid vertices next time."

// NoPredecessor marks a predecessor cell whose distance is Unreachable.
const NoPredecessor = -1

// Predecessors is an n×n matrix of 0-based intermediate vertex indices.
// Cell (i, j) names the vertex k whose composition A[i][k] ⊗ B[k][j]
// attained the minimum, or NoPredecessor.
type Predecessors struct {
	n    int
	data []int
}

// newPredecessors allocates an n×n matrix filled with NoPredecessor.
func newPredecessors(n int) *Predecessors {
	data := make([]int, n*n)
	for i := range data {
		data[i] = NoPredecessor
	}

	return &Predecessors{n: n, data: data}
}

// Size returns n for an n×n predecessor matrix.
func (p *Predecessors) Size() int { return p.n }

// At returns the predecessor stored at (row, col).
// Returns matrix.ErrOutOfRange for invalid indices.
func (p *Predecessors) At(row, col int) (int, error) {
	if row < 0 || row >= p.n || col < 0 || col >= p.n {
		return NoPredecessor, matrix.ErrOutOfRange
	}

	return p.data[row*p.n+col], nil
}

// Clone returns a deep copy of p.
func (p *Predecessors) Clone() *Predecessors {
	data := make([]int, len(p.data))
	copy(data, p.data)

	return &Predecessors{n: p.n, data: data}
}

// Options configures Build.
//
//	– Strict:          validate zero diagonal and non-negative weights before building.
//	                   Off by default: such inputs are unspecified, not repaired.
//	– Logger:          optional structured logger; Build emits one debug record per step.
//	                   nil disables logging.
//	– UnreachableText: when non-empty, rendered in place of the raw sentinel for
//	                   Unreachable distances.
type Options struct {
	Strict          bool
	Logger          *slog.Logger
	UnreachableText string
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithStrict enables adjacency validation (zero diagonal, non-negative
// finite weights). Violations return matrix.ErrNonZeroDiagonal or
// matrix.ErrNegativeWeight.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithLogger routes per-step build diagnostics to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithUnreachableText renders Unreachable distances as text instead of the
// raw sentinel. An empty text panics, since it would produce an empty
// distance field.
func WithUnreachableText(text string) Option {
	return func(o *Options) {
		if text == "" {
			panic("minplus: WithUnreachableText: text must be non-empty")
		}
		o.UnreachableText = text
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no strict validation, no logger, raw sentinel for Unreachable.
func DefaultOptions() Options {
	return Options{}
}

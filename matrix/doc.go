// Package matrix offers the weight algebra and dense matrix representation
// used by the min-plus shortest-path engine.
//
// The matrix package provides:
//
//   - Weight, a tagged value that is either a finite non-negative integer or
//     Unreachable. Addition over Weight is total: Unreachable absorbs and
//     finite sums saturate instead of overflowing.
//   - Dense, a row-major r×c matrix of Weight with O(1) lookups and O(r·c)
//     memory. The zero value of every cell is Unreachable.
//   - Validators (shape, zero diagonal, non-negative weights) shared by all
//     algorithms in this module.
//   - FloydWarshall, the classical O(n³) relaxation, kept as a reference
//     oracle for the tropical engine.
//   - RandomSparse, a deterministic directed graph generator.
//
// Matrices are best for dense or small graphs where O(V²) memory is
// acceptable.
//
// See the examples in this package and minplus for usage patterns.
package matrix

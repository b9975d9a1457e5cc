// Package matrix provides the dense Weight matrix used by the tropical engine.
// Dense is a row-major matrix storing Weight cells in a flat slice for
// performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of Weight values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int      // number of rows and columns
	data []Weight // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix with every cell Unreachable.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice (zero Weight is Unreachable).
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]Weight, rows*cols)}, nil
}

// NewIdentity returns the n×n min-plus identity: 0 on the diagonal and
// Unreachable elsewhere. Combining any matrix with it yields that matrix.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewIdentity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = Finite(0)
	}

	return m, nil
}

// NewFromRows builds a Dense from row-wise raw weights, mapping Sentinel to
// Unreachable. All rows must share the same length.
// Complexity: O(r*c).
func NewFromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("NewFromRows: %w", err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cells, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
		for j = 0; j < c; j++ {
			m.data[i*c+j] = FromRaw(rows[i][j])
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (Weight, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return Weight{}, err
	}

	return m.data[idx], nil
}

// Set assigns value w at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, w Weight) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = w

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]Weight, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Equal reports whether m and o have the same shape and identical cells.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Raw exports the matrix row-wise, with Sentinel for Unreachable cells.
// It is the inverse of NewFromRows.
// Complexity: O(r*c).
func (m *Dense) Raw() [][]int64 {
	out := make([][]int64, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		out[i] = make([]int64, m.c)
		for j = 0; j < m.c; j++ {
			out[i][j] = m.data[i*m.c+j].Raw()
		}
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Package numat provides a small dense float64 matrix used internally by the
// HDBSCAN pipeline to hold pairwise distances and mutual-reachability weights.
//
// It deliberately carries none of a general-purpose linear-algebra package's
// surface (no eigen/LU/QR, no graph adapters): the clustering core only ever
// needs row-major storage, bounds-checked element access (At, Set), a
// symmetric-write helper (SetSymmetric) for mirroring a value across the
// diagonal, whole-row reads (Row), and a deep copy (Clone).
package numat

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("numat: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("numat: index out of bounds")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major square matrix of float64 values.
// n is the shared row/column count, and data holds n*n elements in row-major order.
type Dense struct {
	n    int       // rows == cols
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Complexity: O(n^2) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// N returns the shared row/column count.
func (m *Dense) N() int { return m.n }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.n {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// SetSymmetric assigns v at both (row, col) and (col, row) in one call.
// Diagonal writes (row == col) simply set that single entry once.
func (m *Dense) SetSymmetric(row, col int, v float64) error {
	if err := m.Set(row, col, v); err != nil {
		return err
	}
	if row == col {
		return nil
	}

	return m.Set(col, row, v)
}

// Row returns a copy of row i, length n.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, denseErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
func (m *Dense) Clone() *Dense {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return &Dense{n: m.n, data: out}
}

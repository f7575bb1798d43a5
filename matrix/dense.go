// File: dense.go
// Role: row-major int64 square matrix with the VRP numeric policy baked in.
package matrix

import "fmt"

// Dense is a row-major, square matrix of int64 values. n is both the row
// and column count, and data holds n*n elements in row-major order.
type Dense struct {
	n    int
	data []int64
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return matrixErrorf(fmt.Sprintf("Dense.%s(%d,%d)", method, row, col), err)
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions if n <= 0.
// Complexity: O(n^2) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}
	return &Dense{n: n, data: make([]int64, n*n)}, nil
}

// Size returns the row/column count of the square matrix.
func (m *Dense) Size() int {
	if m == nil {
		return 0
	}
	return m.n
}

func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf("index", row, col, ErrOutOfRange)
	}
	return row*m.n + col, nil
}

// At retrieves the value at (row, col).
func (m *Dense) At(row, col int) (int64, error) {
	if m == nil {
		return 0, matrixErrorf("Dense.At", ErrNilMatrix)
	}
	idx, err := m.index(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// MustAt indexes the backing slice directly, without a bounds check of its
// own: it panics only when row*n+col falls outside the data, so an
// out-of-range col within the slice reads another row's entry. Used on the
// search hot path where bounds are already guaranteed by ProblemData
// validation.
func (m *Dense) MustAt(row, col int) int64 {
	return m.data[row*m.n+col]
}

// Set assigns value v at (row, col). Returns ErrNegativeEntry for v < 0, or
// ErrOutOfRange for an invalid index.
func (m *Dense) Set(row, col int, v int64) error {
	if m == nil {
		return matrixErrorf("Dense.Set", ErrNilMatrix)
	}
	if v < 0 {
		return denseErrorf("Set", row, col, ErrNegativeEntry)
	}
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy of the Dense matrix.
func (m *Dense) Clone() *Dense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)
	return &Dense{n: m.n, data: cp}
}

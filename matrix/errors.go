package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix package operations. All algorithms MUST return
// these sentinels (wrapped with %w and operation context at the boundary);
// none of them are ever produced by a panic.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNotSquare signals a square matrix was required but rows != cols.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates two matrices have incompatible shapes for the operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonZeroDiagonal signals a diagonal entry is non-zero where the numeric
	// policy requires every self-edge to cost nothing.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal entry is non-zero")

	// ErrNegativeEntry signals a negative distance/duration value, which has no
	// physical meaning in this domain.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrNilMatrix indicates a nil Dense receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps an underlying sentinel with the operation that observed it.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

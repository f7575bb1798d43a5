// File: validators.go
// Role: shape and numeric-policy validators shared by model construction.
package matrix

// ValidateSquare checks that m reports n rows and n cols for the same n, and
// that it is non-nil. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return matrixErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.n <= 0 {
		return matrixErrorf("ValidateSquare", ErrInvalidDimensions)
	}
	return nil
}

// ValidateSameSize checks that a and b share the same dimension n.
// Complexity: O(1).
func ValidateSameSize(a, b *Dense) error {
	if err := ValidateSquare(a); err != nil {
		return matrixErrorf("ValidateSameSize", err)
	}
	if err := ValidateSquare(b); err != nil {
		return matrixErrorf("ValidateSameSize", err)
	}
	if a.n != b.n {
		return matrixErrorf("ValidateSameSize", ErrDimensionMismatch)
	}
	return nil
}

// ValidateZeroDiagonal checks that every m[i][i] is exactly zero.
// Complexity: O(n).
func ValidateZeroDiagonal(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf("ValidateZeroDiagonal", err)
	}
	for i := 0; i < m.n; i++ {
		if m.data[i*m.n+i] != 0 {
			return denseErrorf("ValidateZeroDiagonal", i, i, ErrNonZeroDiagonal)
		}
	}
	return nil
}

// ValidateNonNegative checks that every entry is >= 0 (ForbiddenEdge is a
// large positive sentinel and always passes this check).
// Complexity: O(n^2).
func ValidateNonNegative(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf("ValidateNonNegative", err)
	}
	for i, v := range m.data {
		if v < 0 {
			row, col := i/m.n, i%m.n
			return denseErrorf("ValidateNonNegative", row, col, ErrNegativeEntry)
		}
	}
	return nil
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for nil/shape checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Note:
//  - Composite checks follow a fixed sequence: NotNil -> Shape.

package matrix

// validatorErrorf tags a sentinel with the validator that detected it.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateNotNil ensures every given matrix reference is non-nil.
// Complexity: O(k).
func ValidateNotNil[T Number](ms ...*Matrix[T]) error {
	for _, m := range ms {
		if m == nil || m.buf == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square.
// Complexity: O(1).
func ValidateSquare[T Number](m *Matrix[T]) error {
	if !m.IsSquare() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// validateCol checks 0 <= col < Cols().
func validateCol[T Number](m *Matrix[T], col int) error {
	if col < 0 || col >= m.Cols() {
		return validatorErrorf("validateCol", ErrOutOfRange)
	}

	return nil
}

// validateRow checks 0 <= row < Rows().
func validateRow[T Number](m *Matrix[T], row int) error {
	if row < 0 || row >= m.Rows() {
		return validatorErrorf("validateRow", ErrOutOfRange)
	}

	return nil
}

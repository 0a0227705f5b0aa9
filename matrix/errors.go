// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with an operation tag
// and tests check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linmath/storage"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> dimension mismatch -> numeric (singular) -> unsupported.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions, or a literal list that does not cover rows*cols exactly).
	// It is the storage sentinel re-exported so callers need one import.
	ErrBadShape = storage.ErrBadShape

	// ErrShortInput is returned when an input sequence ends before
	// rows*cols elements were consumed.
	ErrShortInput = storage.ErrShortInput

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub
	// with different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It matches ErrDimensionMismatch as well, since a non-square determinant
	// is a size mismatch.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimensionMismatch)

	// ErrSingular is returned when an integer elimination meets a zero pivot.
	// Floating-point eliminations never return it; they propagate Inf/NaN.
	ErrSingular = errors.New("matrix: zero pivot")

	// ErrNotImplemented marks an intentionally unsupported operation,
	// e.g. the determinant of an integer matrix.
	ErrNotImplemented = errors.New("matrix: operation not implemented")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps an error with a uniform Matrix context and coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

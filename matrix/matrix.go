// SPDX-License-Identifier: MIT

// Package matrix - the rows-and-columns abstraction over storage.Contiguous.
//
// Purpose:
//   - Own exactly one contiguous row-major buffer per Matrix (no shared ownership).
//   - Locate row i at offset i*cols on every access instead of caching row
//     addresses, so replacing the buffer (Transpose, MulInPlace, elimination)
//     can never leave stale row pointers inside the Matrix.
//   - Keep the public surface safe: At/Set/Row return errors instead of panicking.
//
// Complexity quicksheet:
//   - New/Zero/Unity/FromSlice/FromSeq/FromValues: O(r*c); FromStorage: O(1);
//     At/Set/Row: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/linmath/storage"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense rows×cols grid of T in row-major order.
// The zero value is not usable; build one with a constructor.
type Matrix[T Number] struct {
	buf *storage.Contiguous[T] // exclusively owned
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates a rows×cols matrix with every element set to fill.
// Errors: ErrBadShape on negative dimensions.
// Complexity: O(r*c).
func New[T Number](rows, cols int, fill T) (*Matrix[T], error) {
	buf, err := storage.New(rows, cols, fill)
	if err != nil {
		return nil, matrixErrorf("New", err)
	}

	return &Matrix[T]{buf: buf}, nil
}

// FromSlice creates a rows×cols matrix from the first rows*cols elements of
// src, consumed in row-major order.
// Errors: ErrBadShape, ErrShortInput.
func FromSlice[T Number](rows, cols int, src []T) (*Matrix[T], error) {
	buf, err := storage.FromSlice(rows, cols, src)
	if err != nil {
		return nil, matrixErrorf("FromSlice", err)
	}

	return &Matrix[T]{buf: buf}, nil
}

// FromSeq creates a rows×cols matrix by pulling exactly rows*cols elements
// from seq in row-major order.
// Errors: ErrBadShape, ErrShortInput.
func FromSeq[T Number](rows, cols int, seq iter.Seq[T]) (*Matrix[T], error) {
	buf, err := storage.FromSeq(rows, cols, seq)
	if err != nil {
		return nil, matrixErrorf("FromSeq", err)
	}

	return &Matrix[T]{buf: buf}, nil
}

// FromValues creates a rows×cols matrix from a literal row-major list.
// Errors: ErrBadShape when len(vals) != rows*cols.
func FromValues[T Number](rows, cols int, vals ...T) (*Matrix[T], error) {
	buf, err := storage.FromValues(rows, cols, vals...)
	if err != nil {
		return nil, matrixErrorf("FromValues", err)
	}

	return &Matrix[T]{buf: buf}, nil
}

// FromStorage wraps a pre-built buffer. The Matrix takes ownership; the caller
// must not keep mutating buf afterwards.
// Errors: ErrNilMatrix when buf is nil.
func FromStorage[T Number](buf *storage.Contiguous[T]) (*Matrix[T], error) {
	if buf == nil {
		return nil, matrixErrorf("FromStorage", ErrNilMatrix)
	}

	return &Matrix[T]{buf: buf}, nil
}

// Zero returns a rows×cols matrix of zeros.
func Zero[T Number](rows, cols int) (*Matrix[T], error) {
	return New[T](rows, cols, 0)
}

// Unity returns the n×n identity matrix.
func Unity[T Number](n int) (*Matrix[T], error) {
	buf, err := storage.Unity[T](n)
	if err != nil {
		return nil, matrixErrorf("Unity", err)
	}

	return &Matrix[T]{buf: buf}, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.buf.Rows() }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.buf.Cols() }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.buf.Rows(), m.buf.Cols() }

// IsSquare reports whether Rows() == Cols().
func (m *Matrix[T]) IsSquare() bool { return m.buf.Rows() == m.buf.Cols() }

// Storage exposes the owned buffer for read access and bulk interop.
// The pointer is invalidated by operations that replace the buffer.
func (m *Matrix[T]) Storage() *storage.Contiguous[T] { return m.buf }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.buf.Rows() {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.buf.Cols() {
		return 0, ErrOutOfRange
	}

	return m.buf.Offset(row) + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, cellErrorf(ctxAt, row, col, err)
	}

	return m.buf.Data()[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return cellErrorf(ctxSet, row, col, err)
	}
	m.buf.Data()[off] = v

	return nil
}

// Row returns a mutable view of row i.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) Row(i int) (Row[T], error) {
	if i < 0 || i >= m.buf.Rows() {
		return Row[T]{}, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return m.row(i), nil
}

// RowView returns a read-only view of row i.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) RowView(i int) (RowView[T], error) {
	if i < 0 || i >= m.buf.Rows() {
		return RowView[T]{}, fmt.Errorf("Matrix.RowView(%d): %w", i, ErrOutOfRange)
	}

	return m.rowView(i), nil
}

// row is the unchecked internal accessor used by kernels.
func (m *Matrix[T]) row(i int) Row[T] { return Row[T]{data: m.buf.Span(i)} }

// rowView is the unchecked read-only internal accessor.
func (m *Matrix[T]) rowView(i int) RowView[T] { return RowView[T]{data: m.buf.Span(i)} }

// RowViews iterates over (index, read-only row) pairs in order.
func (m *Matrix[T]) RowViews() iter.Seq2[int, RowView[T]] {
	return func(yield func(int, RowView[T]) bool) {
		for i := 0; i < m.buf.Rows(); i++ {
			if !yield(i, m.rowView(i)) {
				return
			}
		}
	}
}

// Clone returns an independent deep copy.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{buf: m.buf.Clone()}
}

// String renders rows as lines with comma-separated values, for diagnostics.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	rows, cols := m.Shape()
	for i := 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j, v := range m.buf.Span(i) {
			fmt.Fprintf(&b, "%v", v)
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

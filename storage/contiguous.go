// SPDX-License-Identifier: MIT

// Package storage - flat row-major buffer underlying every matrix.
//
// Purpose:
//   - Own a single []T of length rows*cols with the index formula i*cols + j.
//   - Offer bulk construction (fill, slice, sequence, literal list) and the
//     identity factory.
//   - Offer whole-buffer scalar multiply/divide.
//
// Complexity quicksheet:
//   - New/FromSlice/FromSeq/FromValues/Unity: O(r*c); Scale/Divide/Transposed: O(r*c);
//     Offset/Span: O(1); Clone/Equal: O(r*c).

package storage

import (
	"iter"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a buffer may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// ---------- constructor tags ----------

const (
	ctxNew        = "New"
	ctxFromSlice  = "FromSlice"
	ctxFromSeq    = "FromSeq"
	ctxFromValues = "FromValues"
	ctxUnity      = "Unity"
)

// Contiguous is a rows×cols buffer in row-major order.
//   - rows, cols are non-negative; zero-area buffers are legal.
//   - data has len == rows*cols; element (i,j) lives at i*cols + j.
type Contiguous[T Number] struct {
	rows, cols int // shape
	data       []T // row-major storage
}

// validShape reports whether rows and cols are usable dimensions: both
// non-negative and with rows*cols representable as an int.
func validShape(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}

	return cols == 0 || rows <= math.MaxInt/cols
}

// New allocates a rows×cols buffer with every element set to fill.
// Errors: ErrBadShape on negative dimensions or when rows*cols overflows int.
// Complexity: O(r*c).
func New[T Number](rows, cols int, fill T) (*Contiguous[T], error) {
	if !validShape(rows, cols) {
		return nil, storageErrorf(ctxNew, rows, cols, ErrBadShape)
	}
	buf := make([]T, rows*cols) // zero-filled by the runtime
	if fill != 0 {
		for k := range buf {
			buf[k] = fill
		}
	}

	return &Contiguous[T]{rows: rows, cols: cols, data: buf}, nil
}

// FromSlice copies the first rows*cols elements of src in row-major order.
// Extra trailing elements are ignored.
// Errors: ErrBadShape on negative dimensions; ErrShortInput when src is too short.
// Complexity: O(r*c).
func FromSlice[T Number](rows, cols int, src []T) (*Contiguous[T], error) {
	if !validShape(rows, cols) {
		return nil, storageErrorf(ctxFromSlice, rows, cols, ErrBadShape)
	}
	n := rows * cols
	if len(src) < n {
		return nil, storageErrorf(ctxFromSlice, rows, cols, ErrShortInput)
	}
	buf := make([]T, n)
	copy(buf, src[:n])

	return &Contiguous[T]{rows: rows, cols: cols, data: buf}, nil
}

// FromSeq pulls exactly rows*cols elements from seq in row-major order and
// stops pulling afterwards.
// Errors: ErrBadShape on negative dimensions; ErrShortInput when seq ends early.
// Complexity: O(r*c).
func FromSeq[T Number](rows, cols int, seq iter.Seq[T]) (*Contiguous[T], error) {
	if !validShape(rows, cols) {
		return nil, storageErrorf(ctxFromSeq, rows, cols, ErrBadShape)
	}
	n := rows * cols
	buf := make([]T, n)
	k := 0
	if n > 0 && seq != nil {
		for v := range seq {
			buf[k] = v
			k++
			if k == n {
				break // consume no more than the shape needs
			}
		}
	}
	if k < n {
		return nil, storageErrorf(ctxFromSeq, rows, cols, ErrShortInput)
	}

	return &Contiguous[T]{rows: rows, cols: cols, data: buf}, nil
}

// FromValues builds a buffer from a literal row-major list whose length must
// equal rows*cols exactly.
// Errors: ErrBadShape on negative dimensions or a length mismatch.
// Complexity: O(r*c).
func FromValues[T Number](rows, cols int, vals ...T) (*Contiguous[T], error) {
	if !validShape(rows, cols) || len(vals) != rows*cols {
		return nil, storageErrorf(ctxFromValues, rows, cols, ErrBadShape)
	}
	buf := make([]T, len(vals))
	copy(buf, vals)

	return &Contiguous[T]{rows: rows, cols: cols, data: buf}, nil
}

// Unity returns the n×n identity buffer (1 on the diagonal, 0 elsewhere).
// Errors: ErrBadShape when n < 0 or n*n overflows int.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Unity[T Number](n int) (*Contiguous[T], error) {
	if !validShape(n, n) {
		return nil, storageErrorf(ctxUnity, n, n, ErrBadShape)
	}
	c := &Contiguous[T]{rows: n, cols: n, data: make([]T, n*n)}
	for i := 0; i < n; i++ {
		c.data[i*n+i] = 1
	}

	return c, nil
}

// Rows returns the row count.
func (c *Contiguous[T]) Rows() int { return c.rows }

// Cols returns the column count.
func (c *Contiguous[T]) Cols() int { return c.cols }

// Len returns rows*cols.
func (c *Contiguous[T]) Len() int { return len(c.data) }

// Data exposes the underlying buffer. Writes through the returned slice are
// visible to the owner; the slice is invalidated by any reallocation of the owner.
func (c *Contiguous[T]) Data() []T { return c.data }

// Offset returns the flat index of the first element of row i.
func (c *Contiguous[T]) Offset(i int) int { return i * c.cols }

// Span returns row i as a slice of exactly cols elements whose capacity is
// capped, so appends can never spill into the next row.
// The caller is responsible for 0 <= i < Rows().
func (c *Contiguous[T]) Span(i int) []T {
	lo := i * c.cols
	hi := lo + c.cols

	return c.data[lo:hi:hi]
}

// Scale multiplies every element by k in place.
// Complexity: O(r*c).
func (c *Contiguous[T]) Scale(k T) {
	for idx := range c.data {
		c.data[idx] *= k
	}
}

// Divide divides every element by k in place.
// Division by zero follows the element type: IEEE Inf/NaN for floats, a
// runtime panic for integers.
// Complexity: O(r*c).
func (c *Contiguous[T]) Divide(k T) {
	for idx := range c.data {
		c.data[idx] /= k
	}
}

// Clone returns an independent copy.
// Complexity: O(r*c).
func (c *Contiguous[T]) Clone() *Contiguous[T] {
	cp := make([]T, len(c.data))
	copy(cp, c.data)

	return &Contiguous[T]{rows: c.rows, cols: c.cols, data: cp}
}

// Transposed returns a new cols×rows buffer holding the transpose of c.
// The element count is unchanged, so the shape needs no re-validation.
// Complexity: O(r*c) time and space.
func (c *Contiguous[T]) Transposed() *Contiguous[T] {
	rows, cols := c.rows, c.cols
	dst := make([]T, len(c.data))
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			dst[j*rows+i] = c.data[base+j]
		}
	}

	return &Contiguous[T]{rows: cols, cols: rows, data: dst}
}

// Equal reports whether both buffers share a shape and every element
// compares equal with ==.
// Complexity: O(r*c).
func (c *Contiguous[T]) Equal(o *Contiguous[T]) bool {
	if c.rows != o.rows || c.cols != o.cols {
		return false
	}
	for idx, v := range c.data {
		if v != o.data[idx] {
			return false
		}
	}

	return true
}

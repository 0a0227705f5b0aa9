// SPDX-License-Identifier: MIT

// Package matrix - row views.
//
// A Row is a transient, non-owning window over exactly Cols() elements of
// the owning Matrix's buffer. Row permits mutation; RowView does not.
// Views alias the buffer at the time they were taken: after Transpose,
// MulInPlace or GaussJordanElimination replace the buffer, a previously
// taken view keeps reading the old data and must be re-acquired.

package matrix

import "iter"

// Row is a mutable view of one matrix row.
type Row[T Number] struct {
	data []T // capped sub-slice of the owner's buffer
}

// RowView is a read-only view of one matrix row.
type RowView[T Number] struct {
	data []T
}

// Len returns the number of elements in the row (the owner's column count).
func (r Row[T]) Len() int { return len(r.data) }

// At returns element j. It panics if j is out of range, like slice indexing.
func (r Row[T]) At(j int) T { return r.data[j] }

// Set stores v at element j. It panics if j is out of range.
func (r Row[T]) Set(j int, v T) { r.data[j] = v }

// View returns the read-only variant of the same window.
func (r Row[T]) View() RowView[T] { return RowView[T]{data: r.data} }

// All iterates over (column, value) pairs.
func (r Row[T]) All() iter.Seq2[int, T] { return r.View().All() }

// Values iterates over the row's values.
func (r Row[T]) Values() iter.Seq[T] { return r.View().Values() }

// CopyFrom copies min(Len, src.Len) elements from src and returns the count.
func (r Row[T]) CopyFrom(src RowView[T]) int { return copy(r.data, src.data) }

// Transform replaces x[k] with f(x[k], other[k]) for k in
// [0, min(Len, other.Len)) and returns the number of elements processed.
// Complexity: O(cols).
func (r Row[T]) Transform(other RowView[T], f func(a, b T) T) int {
	n := min(len(r.data), len(other.data))
	dst, src := r.data[:n], other.data[:n]
	for k := range dst {
		dst[k] = f(dst[k], src[k])
	}

	return n
}

// subScaled performs r[k] -= coef * x[k] over the common prefix.
func (r Row[T]) subScaled(coef T, x RowView[T]) {
	n := min(len(r.data), len(x.data))
	dst, src := r.data[:n], x.data[:n]
	for k := range dst {
		dst[k] -= coef * src[k]
	}
}

// Len returns the number of elements in the row.
func (v RowView[T]) Len() int { return len(v.data) }

// At returns element j. It panics if j is out of range.
func (v RowView[T]) At(j int) T { return v.data[j] }

// All iterates over (column, value) pairs.
func (v RowView[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for j, x := range v.data {
			if !yield(j, x) {
				return
			}
		}
	}
}

// Values iterates over the row's values.
func (v RowView[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}

// CopyTo copies the row into dst and returns the number of elements copied.
func (v RowView[T]) CopyTo(dst []T) int { return copy(dst, v.data) }

// Equal reports whether both views have the same length and equal elements.
func (v RowView[T]) Equal(o RowView[T]) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for k, x := range v.data {
		if x != o.data[k] {
			return false
		}
	}

	return true
}

// Dot returns the inner product over the common prefix of both views.
// Complexity: O(cols).
func (v RowView[T]) Dot(o RowView[T]) T {
	n := min(len(v.data), len(o.data))
	var acc T
	for k := 0; k < n; k++ {
		acc += v.data[k] * o.data[k]
	}

	return acc
}

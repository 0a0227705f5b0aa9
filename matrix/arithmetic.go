// SPDX-License-Identifier: MIT

// Package matrix - arithmetic.
//
// In-place operations (ScaleInPlace, DivideInPlace, AddInPlace, SubInPlace,
// MulInPlace) validate before they mutate, so a rejected call leaves the
// receiver untouched. The free functions (Add, Sub, Mul, Scale, ScaleLeft,
// Divide) copy their left operand and delegate to the in-place form.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opDivide    = "Divide"
	opTranspose = "Transpose"
	opEqual     = "EqualApprox"
)

func plus[T Number](a, b T) T  { return a + b }
func minus[T Number](a, b T) T { return a - b }

// ScaleInPlace multiplies every element by k.
// Complexity: O(r*c).
func (m *Matrix[T]) ScaleInPlace(k T) *Matrix[T] {
	m.buf.Scale(k)

	return m
}

// DivideInPlace divides every element by k. Division by zero is not checked:
// floats follow IEEE semantics, integers panic like any Go integer division.
// Complexity: O(r*c).
func (m *Matrix[T]) DivideInPlace(k T) *Matrix[T] {
	m.buf.Divide(k)

	return m
}

// AddInPlace adds o element-wise into m.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m unchanged).
// Complexity: O(r*c).
func (m *Matrix[T]) AddInPlace(o *Matrix[T]) error {
	return m.combine(opAdd, o, plus[T])
}

// SubInPlace subtracts o element-wise from m.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m unchanged).
// Complexity: O(r*c).
func (m *Matrix[T]) SubInPlace(o *Matrix[T]) error {
	return m.combine(opSub, o, minus[T])
}

// combine validates shapes, then applies f row by row through the row views.
func (m *Matrix[T]) combine(tag string, o *Matrix[T], f func(a, b T) T) error {
	if err := ValidateNotNil(m, o); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(tag, err)
	}
	for i := 0; i < m.Rows(); i++ {
		m.row(i).Transform(o.rowView(i), f)
	}

	return nil
}

// MulInPlace replaces m with the matrix product m × o.
//
// Implementation:
//   - Stage 1: validate m.Cols() == o.Rows().
//   - Stage 2: transpose a copy of o so column j of o becomes row j.
//   - Stage 3: res[i][j] = dot(m row i, oᵀ row j) with both walks sequential.
//   - Stage 4: swap res's buffer into m.
//
// The result is built separately, so m is never observed half-multiplied.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m unchanged).
// Complexity: O(r*n*c) time, O(n*c + r*c) extra space.
func (m *Matrix[T]) MulInPlace(o *Matrix[T]) error {
	if err := ValidateNotNil(m, o); err != nil {
		return matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(m, o); err != nil {
		return matrixErrorf(opMul, err)
	}

	ot := o.Clone()
	ot.Transpose()

	res, err := Zero[T](m.Rows(), o.Cols())
	if err != nil {
		return matrixErrorf(opMul, err)
	}
	var i, j int
	var lhs RowView[T]
	for i = 0; i < m.Rows(); i++ {
		lhs = m.rowView(i)
		out := res.row(i)
		for j = 0; j < ot.Rows(); j++ {
			out.Set(j, lhs.Dot(ot.rowView(j)))
		}
	}

	m.buf, res.buf = res.buf, m.buf

	return nil
}

// Add returns a + b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := a.Clone()
	if err := res.AddInPlace(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Sub returns a - b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := a.Clone()
	if err := res.SubInPlace(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Mul returns the product a × b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := a.Clone()
	if err := res.MulInPlace(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Scale returns m * k as a new matrix.
func Scale[T Number](m *Matrix[T], k T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return m.Clone().ScaleInPlace(k), nil
}

// ScaleLeft returns k * m as a new matrix.
func ScaleLeft[T Number](k T, m *Matrix[T]) (*Matrix[T], error) {
	return Scale(m, k)
}

// Divide returns m / k as a new matrix.
func Divide[T Number](m *Matrix[T], k T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}

	return m.Clone().DivideInPlace(k), nil
}

// Equal reports whether m and o have the same shape and exactly equal
// elements. There is no tolerance: NaN never equals NaN, and floats must be
// bit-for-bit comparable under ==.
// Complexity: O(r*c).
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return false
	}
	for i := 0; i < m.Rows(); i++ {
		if !m.rowView(i).Equal(o.rowView(i)) {
			return false
		}
	}

	return true
}

// Equal is the free form of (*Matrix).Equal.
func Equal[T Number](a, b *Matrix[T]) bool { return a.Equal(b) }

// NotEqual is the negation of Equal.
func NotEqual[T Number](a, b *Matrix[T]) bool { return !a.Equal(b) }

// EqualApprox reports whether a and b have the same shape and every pair of
// elements differs by at most the configured epsilon (WithEpsilon).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func EqualApprox[T Number](a, b *Matrix[T], opts ...Option) (bool, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	eps := gatherOptions(opts...).eps
	bd := b.buf.Data()
	for k, av := range a.buf.Data() {
		if !(math.Abs(float64(av)-float64(bd[k])) <= eps) { // NaN compares unequal
			return false, nil
		}
	}

	return true, nil
}

// SPDX-License-Identifier: MIT

package matrix

// Determinant returns det(m) for floating-point matrices. Integer element
// types do not satisfy Float and are rejected at compile time.
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: eliminate a private copy (m is never mutated).
//   - Stage 3: multiply the diagonal; negate once per odd swap count unless
//     WithLegacySign is given.
//
// A singular input yields 0, ±Inf or NaN rather than an error.
// The determinant of a 0×0 matrix is 1 (empty product).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3) time, O(n^2) space.
func Determinant[F Float](m *Matrix[F], opts ...Option) (F, error) {
	return determinant(m, opts...)
}

// Determinant is the method form of the free Determinant. Because a method
// cannot narrow its type parameter, integer element kinds are rejected at
// run time with ErrNotImplemented.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotImplemented.
func (m *Matrix[T]) Determinant(opts ...Option) (T, error) {
	return determinant(m, opts...)
}

func determinant[T Number](m *Matrix[T], opts ...Option) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if !isFloatKind[T]() {
		return 0, matrixErrorf(opDeterminant, ErrNotImplemented)
	}
	o := gatherOptions(opts...)

	work := m.Clone()
	swaps, err := work.eliminate()
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	n := work.Rows()
	data := work.buf.Data()
	var det T = 1
	for i := 0; i < n; i++ {
		det *= data[i*n+i]
	}
	if o.signCorrection && swaps%2 == 1 {
		det = -det
	}
	log.Debugw("determinant", "n", n, "swaps", swaps, "signCorrection", o.signCorrection)

	return det, nil
}

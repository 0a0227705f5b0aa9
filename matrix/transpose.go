// SPDX-License-Identifier: MIT

package matrix

// Transpose replaces m with its transpose.
//
// Implementation:
//   - Stage 1: copy t[j][i] = m[i][j] into a fresh cols×rows buffer.
//   - Stage 2: swap the new buffer in; the old one is released.
//
// Row views taken before the call keep referring to the old buffer.
// Complexity: O(r*c) time and space.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	m.buf = m.buf.Transposed()

	return m
}

// Transpose returns mᵀ as a new matrix; m is unchanged.
// Errors: ErrNilMatrix.
func Transpose[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Clone().Transpose(), nil
}

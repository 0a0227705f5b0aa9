// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a new *mat.Dense, converting elements to float64.
// gonum cannot represent zero-area matrices; for those ToGonum returns
// ErrBadShape.
// Complexity: O(r*c).
func ToGonum[T Number](m *Matrix[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	rows, cols := m.Shape()
	if rows == 0 || cols == 0 {
		return nil, matrixErrorf("ToGonum", ErrBadShape)
	}
	buf := make([]float64, rows*cols)
	for k, v := range m.buf.Data() {
		buf[k] = float64(v)
	}

	return mat.NewDense(rows, cols, buf), nil
}

// FromGonum copies any gonum matrix into a new Matrix[T], converting each
// element with T(x). Fractional parts are truncated for integer T.
// Complexity: O(r*c).
func FromGonum[T Number](src mat.Matrix) (*Matrix[T], error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	rows, cols := src.Dims()
	res, err := Zero[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	data := res.buf.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = T(src.At(i, j))
		}
	}

	return res, nil
}

// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linmath/matrix"
)

// ExampleDeterminant shows the corrected and legacy sign conventions.
func ExampleDeterminant() {
	a, _ := matrix.FromValues(2, 2, 2.0, 1, 4, 3)

	det, _ := matrix.Determinant(a)
	legacy, _ := matrix.Determinant(a, matrix.WithLegacySign())
	fmt.Println(det, legacy)
	// Output: 2 -2
}

// ExampleTranspose transposes the 4×3 matrix 1..12.
func ExampleTranspose() {
	a, _ := matrix.FromValues(4, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	at, _ := matrix.Transpose(a)
	fmt.Print(at)
	// Output:
	// [1, 4, 7, 10]
	// [2, 5, 8, 11]
	// [3, 6, 9, 12]
}

// ExampleMatrix_MulInPlace multiplies by the identity.
func ExampleMatrix_MulInPlace() {
	a, _ := matrix.FromValues(2, 2, 1, 2, 3, 4)
	id, _ := matrix.Unity[int](2)
	_ = a.MulInPlace(id)
	fmt.Print(a)
	// Output:
	// [1, 2]
	// [3, 4]
}

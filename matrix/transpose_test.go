// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linmath/matrix"
	"github.com/stretchr/testify/require"
)

// TestTransposeShape swaps dimensions of a 4×7 matrix.
func TestTransposeShape(t *testing.T) {
	t.Parallel()

	a, err := matrix.New[float32](4, 7, 0)
	require.NoError(t, err)
	a.Transpose()
	require.Equal(t, 4, a.Cols())
	require.Equal(t, 7, a.Rows())
}

// TestTransposeMethod checks the 4×3 -> 3×4 concrete scenario in place.
func TestTransposeMethod(t *testing.T) {
	t.Parallel()

	a := mustValues(t, 4, 3, seq12()...)
	want := mustValues[float32](t, 3, 4, 1, 4, 7, 10, 2, 5, 8, 11, 3, 6, 9, 12)

	a.Transpose()
	require.True(t, a.Equal(want))
}

// TestTransposeFree leaves the operand intact and returns the transpose.
func TestTransposeFree(t *testing.T) {
	t.Parallel()

	a := mustValues(t, 4, 3, seq12()...)
	want := mustValues[float32](t, 3, 4, 1, 4, 7, 10, 2, 5, 8, 11, 3, 6, 9, 12)

	c, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(c, want))
	require.True(t, matrix.NotEqual(c, a))
	require.Equal(t, 4, a.Rows()) // original unchanged
}

// TestTransposeRoundTrip: transpose(transpose(A)) == A for several shapes.
func TestTransposeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {3, 7}, {6, 6}, {0, 4}} {
		a := randomMatrix(t, shape[0], shape[1], int64(shape[0]*31+shape[1]))
		at, err := matrix.Transpose(a)
		require.NoError(t, err)
		require.Equal(t, a.Cols(), at.Rows())
		require.Equal(t, a.Rows(), at.Cols())

		att, err := matrix.Transpose(at)
		require.NoError(t, err)
		require.True(t, att.Equal(a), "shape %v", shape)
	}
}

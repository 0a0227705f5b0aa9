// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linmath/matrix"
	"github.com/stretchr/testify/require"
)

// TestMaxInColGreaterEq covers the default magnitude search and its tie policy.
func TestMaxInColGreaterEq(t *testing.T) {
	t.Parallel()

	// column 0: 1, -7, 7, 3
	a := mustValues(t, 4, 2, 1, 0, -7, 0, 7, 0, 3, 0)

	tests := []struct {
		name    string
		minRow  int
		wantRow int
		wantVal int
	}{
		{"whole column, tie keeps earliest", 0, 1, -7},
		{"from row 2", 2, 2, 7},
		{"last row only", 3, 3, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row, val, err := a.MaxInColGreaterEq(0, tc.minRow)
			require.NoError(t, err)
			require.Equal(t, tc.wantRow, row)
			require.Equal(t, tc.wantVal, val)
		})
	}

	row, val, err := a.MaxInCol(0)
	require.NoError(t, err)
	require.Equal(t, 1, row)
	require.Equal(t, -7, val)
}

// TestMaxInColSignedMinimum ranks the minimum of a signed type as the largest magnitude.
func TestMaxInColSignedMinimum(t *testing.T) {
	t.Parallel()

	a := mustValues[int8](t, 3, 1, 100, math.MinInt8, -127)
	row, val, err := a.MaxInCol(0)
	require.NoError(t, err)
	require.Equal(t, 1, row)
	require.Equal(t, int8(math.MinInt8), val)

	row, val, err = a.MaxInColGreaterEq(0, 2)
	require.NoError(t, err)
	require.Equal(t, 2, row)
	require.Equal(t, int8(-127), val)

	u := mustValues[uint8](t, 2, 1, 200, 255)
	row, _, err = u.MaxInCol(0)
	require.NoError(t, err)
	require.Equal(t, 1, row)
}

// TestMaxInColCustomComparator selects the smallest magnitude with a reversed comparator.
func TestMaxInColCustomComparator(t *testing.T) {
	t.Parallel()

	greater := func(a, b float64) bool { return a > b }

	a := mustValues(t, 4, 1, 5.0, -2, 2, 9)
	row, val, err := a.MaxInColFunc(0, greater)
	require.NoError(t, err)
	require.Equal(t, 1, row) // |-2| == |2|, earliest wins
	require.Equal(t, -2.0, val)

	row, val, err = a.MaxInColGreaterEqFunc(0, 2, greater)
	require.NoError(t, err)
	require.Equal(t, 2, row)
	require.Equal(t, 2.0, val)
}

// TestMaxInColOutOfRange rejects invalid column or starting row.
func TestMaxInColOutOfRange(t *testing.T) {
	t.Parallel()

	a := mustUnity[float64](t, 3)
	_, _, err := a.MaxInCol(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, _, err = a.MaxInColGreaterEq(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, _, err = a.MaxInColGreaterEq(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSwapRows exchanges row contents and validates indices.
func TestSwapRows(t *testing.T) {
	t.Parallel()

	a := mustValues(t, 3, 2, 1, 2, 3, 4, 5, 6)
	require.NoError(t, a.SwapRows(0, 2))
	require.True(t, a.Equal(mustValues(t, 3, 2, 5, 6, 3, 4, 1, 2)))

	require.NoError(t, a.SwapRows(1, 1)) // no-op
	require.True(t, a.Equal(mustValues(t, 3, 2, 5, 6, 3, 4, 1, 2)))

	require.ErrorIs(t, a.SwapRows(0, 3), matrix.ErrOutOfRange)
}

// TestGaussJordanDiagonalises checks exact values on a small system with one swap.
func TestGaussJordanDiagonalises(t *testing.T) {
	t.Parallel()

	a := mustValues(t, 2, 2, 2.0, 1, 4, 3)
	swaps, err := a.GaussJordanElimination()
	require.NoError(t, err)
	require.Equal(t, 1, swaps)
	require.True(t, a.Equal(mustValues(t, 2, 2, 4.0, 0, 0, -0.5)), a.String())
}

// TestGaussJordanRandomIsDiagonal verifies off-diagonal entries vanish on random input.
func TestGaussJordanRandomIsDiagonal(t *testing.T) {
	t.Parallel()

	const n = 6
	a := randomMatrix(t, n, n, 42)
	_, err := a.GaussJordanElimination()
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				require.InDelta(t, 0, mustAt(t, a, i, j), 1e-9, "(%d,%d)", i, j)
			}
		}
	}
}

// TestGaussJordanRectangular reduces over min(rows, cols) pivot columns.
func TestGaussJordanRectangular(t *testing.T) {
	t.Parallel()

	a := mustValues(t, 2, 3, 1.0, 0, 2, 0, 1, 3)
	swaps, err := a.GaussJordanElimination()
	require.NoError(t, err)
	require.Zero(t, swaps)
	require.True(t, a.Equal(mustValues(t, 2, 3, 1.0, 0, 2, 0, 1, 3)))

	tall := mustValues(t, 3, 1, 1.0, 4, 2)
	swaps, err = tall.GaussJordanElimination()
	require.NoError(t, err)
	require.Equal(t, 1, swaps)
	require.True(t, tall.Equal(mustValues(t, 3, 1, 4.0, 0, 0)))
}

// TestGaussJordanFloatSingularPropagatesNaN documents the absence of singularity detection.
func TestGaussJordanFloatSingularPropagatesNaN(t *testing.T) {
	t.Parallel()

	a := mustValues(t, 2, 2, 1.0, 2, 2, 4)
	_, err := a.GaussJordanElimination()
	require.NoError(t, err)
	require.True(t, math.IsNaN(mustAt(t, a, 0, 0)))
}

// TestGaussJordanIntegerZeroPivot returns ErrSingular and leaves the matrix untouched.
func TestGaussJordanIntegerZeroPivot(t *testing.T) {
	t.Parallel()

	a := mustValues(t, 2, 2, 0, 0, 0, 1)
	before := a.Clone()
	_, err := a.GaussJordanElimination()
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.True(t, a.Equal(before))

	b := mustValues(t, 2, 2, 2, 0, 0, 3)
	swaps, err := b.GaussJordanElimination()
	require.NoError(t, err)
	require.Zero(t, swaps)
	require.True(t, b.Equal(mustValues(t, 2, 2, 2, 0, 0, 3)))
}

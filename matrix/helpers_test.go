// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures so tests read as data, not setup.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linmath/matrix"
	"github.com/stretchr/testify/require"
)

// mustValues builds a rows×cols matrix from a literal list or fails the test.
func mustValues[T matrix.Number](tb testing.TB, rows, cols int, vals ...T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromValues(rows, cols, vals...)
	require.NoError(tb, err)

	return m
}

// mustUnity builds I_n or fails the test.
func mustUnity[T matrix.Number](tb testing.TB, n int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.Unity[T](n)
	require.NoError(tb, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt[T matrix.Number](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// randomMatrix fills an r×c float64 matrix from a fixed seed in [-5, 5).
func randomMatrix(tb testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = rng.Float64()*10 - 5
	}
	m, err := matrix.FromSlice(r, c, vals)
	require.NoError(tb, err)

	return m
}

// seq12 is the row-major sequence 1..12 used by the transpose scenarios.
func seq12() []float32 {
	return []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
}

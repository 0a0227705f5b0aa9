// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan elimination with partial pivoting.
//
// For every pivot column i the row with the largest |value| at or below row
// i is swapped into place, then column i is eliminated from EVERY other row
// (above and below), leaving a diagonal matrix for square input.
//
// Numeric policy:
//   - Floating element types: a zero pivot is not detected; the division
//     produces ±Inf/NaN which propagate silently. Callers needing singularity
//     detection inspect the result.
//   - Integer element types: a zero pivot returns ErrSingular instead of
//     letting the runtime panic on integer division by zero. Coefficients
//     are truncated by integer division.

package matrix

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("matrix")

const (
	opEliminate   = "GaussJordanElimination"
	opDeterminant = "Determinant"
)

// GaussJordanElimination reduces m in place and returns the number of
// effective row swaps (pivot row different from the current row).
//
// Implementation:
//   - Stage 1: run the elimination on a scratch copy.
//   - Stage 2: on success, swap the scratch buffer into m.
//
// Rectangular matrices are reduced over min(rows, cols) pivot columns.
// Errors: ErrNilMatrix; ErrSingular for integer zero pivots (m unchanged).
// Complexity: O(min(r,c) * r * c) time, O(r*c) extra space.
func (m *Matrix[T]) GaussJordanElimination() (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opEliminate, err)
	}
	work := m.Clone()
	swaps, err := work.eliminate()
	if err != nil {
		return 0, matrixErrorf(opEliminate, err)
	}
	m.buf = work.buf

	return swaps, nil
}

// eliminate is the unchecked in-place kernel.
func (m *Matrix[T]) eliminate() (int, error) {
	rows, cols := m.Shape()
	n := min(rows, cols)
	integral := !isFloatKind[T]()
	data := m.buf.Data()

	var (
		i, r, p    int // pivot index, target row, selected pivot row
		swaps      int
		pivot, val T
		pivotRow   RowView[T]
	)
	for i = 0; i < n; i++ {
		p, pivot = m.maxInCol(i, i, nil)
		if p != i {
			m.swapRows(i, p)
			swaps++
		}
		log.Debugw("pivot selected", "col", i, "row", p, "value", pivot)
		if integral && pivot == 0 {
			return swaps, fmt.Errorf("column %d: %w", i, ErrSingular)
		}

		pivotRow = m.rowView(i)
		for r = 0; r < rows; r++ {
			if r == i {
				continue
			}
			val = data[r*cols+i]
			m.row(r).subScaled(val/pivot, pivotRow)
		}
	}

	return swaps, nil
}

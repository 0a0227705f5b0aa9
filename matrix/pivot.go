// SPDX-License-Identifier: MIT

package matrix

// MaxInColGreaterEq finds, among rows [minRow, Rows()) of column col, the
// row whose absolute value is largest. Ties keep the earliest row.
// Returns the row index and the (signed) value stored there.
// Errors: ErrNilMatrix, ErrOutOfRange when col or minRow is outside the matrix.
// Complexity: O(rows - minRow).
func (m *Matrix[T]) MaxInColGreaterEq(col, minRow int) (int, T, error) {
	return m.MaxInColGreaterEqFunc(col, minRow, nil)
}

// MaxInColGreaterEqFunc is MaxInColGreaterEq with a custom comparator.
// lessFn(a, b) is applied to absolute values and must report whether b is
// "more extreme" than a; only a strictly more extreme candidate replaces the
// current best, so ties favour the smaller row index. Passing a
// greater-than comparator therefore selects the smallest magnitude.
// A nil lessFn selects the default magnitude order, which also handles the
// minimum of a signed integer type; a custom lessFn receives abs(v), which
// for that one value wraps back to v itself.
func (m *Matrix[T]) MaxInColGreaterEqFunc(col, minRow int, lessFn func(a, b T) bool) (int, T, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, 0, matrixErrorf("MaxInColGreaterEq", err)
	}
	if err := validateCol(m, col); err != nil {
		return 0, 0, matrixErrorf("MaxInColGreaterEq", err)
	}
	if err := validateRow(m, minRow); err != nil {
		return 0, 0, matrixErrorf("MaxInColGreaterEq", err)
	}
	row, val := m.maxInCol(col, minRow, lessFn)

	return row, val, nil
}

// MaxInCol is MaxInColGreaterEq starting at row 0.
func (m *Matrix[T]) MaxInCol(col int) (int, T, error) {
	return m.MaxInColGreaterEqFunc(col, 0, nil)
}

// MaxInColFunc is MaxInColGreaterEqFunc starting at row 0.
func (m *Matrix[T]) MaxInColFunc(col int, lessFn func(a, b T) bool) (int, T, error) {
	return m.MaxInColGreaterEqFunc(col, 0, lessFn)
}

// maxInCol is the unchecked scan shared by the public search and elimination.
// A nil lessFn uses maxMagnitudeInCol.
func (m *Matrix[T]) maxInCol(col, minRow int, lessFn func(a, b T) bool) (int, T) {
	if lessFn == nil {
		return m.maxMagnitudeInCol(col, minRow)
	}
	data, cols := m.buf.Data(), m.Cols()
	best := minRow
	bestAbs := abs(data[minRow*cols+col])
	for r := minRow + 1; r < m.Rows(); r++ {
		cur := abs(data[r*cols+col])
		if lessFn(bestAbs, cur) {
			best, bestAbs = r, cur
		}
	}

	return best, data[best*cols+col]
}

// maxMagnitudeInCol is the default scan. Integer magnitudes are compared as
// uint64 so the minimum of a signed type ranks above every other value.
func (m *Matrix[T]) maxMagnitudeInCol(col, minRow int) (int, T) {
	data, cols := m.buf.Data(), m.Cols()
	best := minRow
	if isFloatKind[T]() {
		bestAbs := abs(data[minRow*cols+col])
		for r := minRow + 1; r < m.Rows(); r++ {
			if cur := abs(data[r*cols+col]); bestAbs < cur {
				best, bestAbs = r, cur
			}
		}
	} else {
		bestMag := magnitude(data[minRow*cols+col])
		for r := minRow + 1; r < m.Rows(); r++ {
			if cur := magnitude(data[r*cols+col]); bestMag < cur {
				best, bestMag = r, cur
			}
		}
	}

	return best, data[best*cols+col]
}

// SwapRows exchanges the contents of rows i and j. Swapping a row with
// itself is a no-op.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(cols).
func (m *Matrix[T]) SwapRows(i, j int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("SwapRows", err)
	}
	if err := validateRow(m, i); err != nil {
		return matrixErrorf("SwapRows", err)
	}
	if err := validateRow(m, j); err != nil {
		return matrixErrorf("SwapRows", err)
	}
	m.swapRows(i, j)

	return nil
}

// swapRows is the unchecked element exchange.
func (m *Matrix[T]) swapRows(i, j int) {
	if i == j {
		return
	}
	a, b := m.buf.Span(i), m.buf.Span(j)
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

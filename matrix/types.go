// SPDX-License-Identifier: MIT

// Package matrix: numeric type sets.
// Element types are restricted at compile time; the floating subset gates
// the elimination-based determinant.
package matrix

import (
	"reflect"

	"github.com/katalvlaran/linmath/storage"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Matrix may hold.
type Number = storage.Number

// Float is the subset of Number for which Determinant is defined.
type Float interface {
	constraints.Float
}

// isFloatKind reports whether T's underlying kind is float32 or float64.
// Used by the method form of Determinant, where Go cannot narrow the type
// parameter, to route integer kinds to ErrNotImplemented.
func isFloatKind[T Number]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// abs returns |v|. For unsigned types it is the identity. The minimum of a
// signed integer type has no positive counterpart and is returned unchanged.
func abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// magnitude returns |v| as a uint64 for integer T without overflow.
// Only meaningful for integer kinds.
func magnitude[T Number](v T) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}

	return uint64(v)
}

// Package matrix offers a generic, dense, row-major matrix and the
// Gauss-Jordan elimination that underlies its determinant.
//
// The matrix package provides:
//
//   - Matrix[T] over any integer or floating element type, backed by a single
//     storage.Contiguous[T] buffer it owns exclusively.
//   - Row and RowView, non-owning windows over one row, located by offset
//     (i*cols) on every access.
//   - In-place arithmetic (ScaleInPlace, DivideInPlace, AddInPlace, SubInPlace,
//     MulInPlace, Transpose) and copy-then-mutate free functions (Add, Sub,
//     Mul, Scale, ScaleLeft, Divide, Transpose).
//   - Partial-pivot search (MaxInCol, MaxInColGreaterEq), SwapRows and
//     GaussJordanElimination.
//   - Determinant for floating element types, with row-swap sign correction
//     by default and WithLegacySign for the unsigned historical result.
//   - Copy-based interop with gonum (ToGonum, FromGonum).
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNonSquare,
// ErrOutOfRange, ...) wrapped with an operation tag; match them with
// errors.Is. Operations validate before they mutate.
//
// A Matrix is not safe for concurrent mutation.
package matrix

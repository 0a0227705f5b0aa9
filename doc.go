// Package linmath is an in-memory dense linear-algebra toolkit: generic
// matrices, arithmetic, transposition and Gauss-Jordan determinants.
//
// Layout:
//
//	storage/        flat row-major buffer (Contiguous[T]) with bulk constructors
//	matrix/         Matrix[T], row views, arithmetic, elimination, determinant
//	internal/       CLI plumbing: TOML config, YAML/TOML matrix documents, heat-map rendering
//	cmd/linmath/    command-line front end
//
// Quick example:
//
//	a, _ := matrix.FromValues(2, 2, 1.0, 2, 3, 4)
//	det, _ := matrix.Determinant(a) // -2
//
//	go get github.com/katalvlaran/linmath
package linmath

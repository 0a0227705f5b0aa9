// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrix documents.
//
// A document carries its shape and its elements, either flat in row-major
// order or as nested rows:
//
//	rows: 2
//	cols: 2
//	data: [1, 2, 3, 4]
//
//	values:
//	  - [1, 2]
//	  - [3, 4]
//
// YAML is handled by gopkg.in/yaml.v3 and TOML by github.com/BurntSushi/toml.
// Elements are always float64; the CLI works in double precision.
package matrixio

// SPDX-License-Identifier: MIT

// Package storage: sentinel errors for the contiguous buffer.
// Constructors return these sentinels wrapped with a call-site tag; callers
// match them via errors.Is.

package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows/cols, or a literal list whose length disagrees with rows*cols).
	ErrBadShape = errors.New("storage: invalid shape")

	// ErrShortInput is returned when an input sequence ends before
	// rows*cols elements were consumed.
	ErrShortInput = errors.New("storage: input shorter than rows*cols")
)

// storageErrorf tags a sentinel with the constructor that detected it.
func storageErrorf(tag string, rows, cols int, err error) error {
	return fmt.Errorf("storage.%s(%d,%d): %w", tag, rows, cols, err)
}

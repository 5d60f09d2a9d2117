// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All checked accessors return these sentinels, wrapped with the method and
// coordinates; callers match via errors.Is. Unchecked accessors (Elem,
// ElemRef, SubVector) are the iterator hot path and panic on programmer
// errors instead.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when a requested view window or step is invalid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or element) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths, e.g. a data slice
	// whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// denseErrorf wraps err with the method name and coordinates of a Dense call.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// viewErrorf wraps err with a view type, method name and element index.
func viewErrorf(view, method string, i int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", view, method, i, err)
}

// matrixErrorf tags err with a package-level operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

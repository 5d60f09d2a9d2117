// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the shared 2D contracts.
package matrix

import "golang.org/x/exp/constraints"

// Scalar is the element type accepted by every expression in this package.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Matrix is the checked 2D surface shared by Dense, Block and Transposed.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Scalar] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns v at (i, j).
	// Returns ErrOutOfRange for invalid indices, ErrNaNInf under the numeric policy.
	Set(i, j int, v T) error
}

// Sequence is a vector-shaped expression readable by logical index.
type Sequence[T Scalar] interface {
	Len() int
	Elem(i int) T
}

// grid is unchecked cell addressing, implemented by the 2D expressions.
// Computed views (Reshaped) go through it.
type grid[T Scalar] interface {
	Rows() int
	Cols() int
	cell(i, j int) *T
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[float64] = (*Block[float64])(nil)
	_ Matrix[float64] = (*Transposed[float64])(nil)

	_ grid[float64] = (*Dense[float64])(nil)
	_ grid[float64] = (*Block[float64])(nil)
	_ grid[float64] = (*Transposed[float64])(nil)

	_ Sequence[float64] = (*Vector[float64])(nil)
	_ Sequence[float64] = (*Strided[float64])(nil)
	_ Sequence[float64] = (*Reversed[float64])(nil)
	_ Sequence[float64] = (*ReadOnly[float64])(nil)
	_ Sequence[float64] = (*Reshaped[float64])(nil)
	_ Sequence[float64] = (*Mapped[float64])(nil)
)

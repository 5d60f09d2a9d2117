// SPDX-License-Identifier: MIT

// Package matrix - Transposed: the no-copy transpose of a Dense.
//
// Rows of the transpose are columns of the base and vice versa, so its
// sub-vectors are the base's column and row views with their strides
// swapped. Walking the whole transpose element by element has no uniform
// stride; Reshaped() covers that through indexed iteration.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvstl/stl"
)

const viewTransposed = "Transposed"

// Transposed presents base with rows and columns exchanged.
type Transposed[T Scalar] struct {
	base *Dense[T]
}

// Rows returns base.Cols().
func (t *Transposed[T]) Rows() int { return t.base.c }

// Cols returns base.Rows().
func (t *Transposed[T]) Cols() int { return t.base.r }

// Shape packs Rows() and Cols().
func (t *Transposed[T]) Shape() (rows, cols int) { return t.base.c, t.base.r }

// T returns the original Dense.
func (t *Transposed[T]) T() *Dense[T] { return t.base }

// At returns the element at (i, j), which is base (j, i).
func (t *Transposed[T]) At(i, j int) (T, error) {
	if i < 0 || i >= t.Rows() || j < 0 || j >= t.Cols() {
		var zero T
		return zero, fmt.Errorf("%s.%s(%d,%d): %w", viewTransposed, ctxAt, i, j, ErrOutOfRange)
	}

	return *t.cell(i, j), nil
}

// Set stores v at (i, j) under the base's numeric policy.
func (t *Transposed[T]) Set(i, j int, v T) error {
	if i < 0 || i >= t.Rows() || j < 0 || j >= t.Cols() {
		return fmt.Errorf("%s.%s(%d,%d): %w", viewTransposed, ctxSet, i, j, ErrOutOfRange)
	}
	if t.base.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("%s.%s(%d,%d): %w", viewTransposed, ctxSet, i, j, ErrNaNInf)
	}
	*t.cell(i, j) = v

	return nil
}

func (t *Transposed[T]) cell(i, j int) *T { return t.base.cell(j, i) }

// Reshaped returns the transpose as a column-major vector, which is the
// base in row-major order. No copy.
func (t *Transposed[T]) Reshaped() *Reshaped[T] { return newReshaped[T](t) }

// SubVectors returns the column count for stl.DirVertical and the row count
// for stl.DirHorizontal.
func (t *Transposed[T]) SubVectors(d stl.Direction) int {
	if d == stl.DirVertical {
		return t.Cols()
	}

	return t.Rows()
}

// SubVector extracts column i (base row i) or row i (base column i).
// Panics with ErrOutOfRange on a bad index.
func (t *Transposed[T]) SubVector(d stl.Direction, i int) *Strided[T] {
	if i < 0 || i >= t.SubVectors(d) {
		panic(fmt.Errorf("%s.%s(%s,%d): %w", viewTransposed, ctxSubVector, d, i, ErrOutOfRange))
	}
	if d == stl.DirVertical {
		return t.base.rowView(i)
	}

	return t.base.colView(i)
}

// ConstSubVector is the read-only counterpart of SubVector.
func (t *Transposed[T]) ConstSubVector(d stl.Direction, i int) *ReadOnly[T] {
	return t.SubVector(d, i).Const()
}

// AllRows ranges over the rows of the transpose.
func (t *Transposed[T]) AllRows() stl.SubVectorsProxy[*Transposed[T], *Strided[T], *ReadOnly[T], stl.Horizontal] {
	return stl.AllRows[*Strided[T], *ReadOnly[T]](t)
}

// AllCols ranges over the columns of the transpose.
func (t *Transposed[T]) AllCols() stl.SubVectorsProxy[*Transposed[T], *Strided[T], *ReadOnly[T], stl.Vertical] {
	return stl.AllCols[*Strided[T], *ReadOnly[T]](t)
}

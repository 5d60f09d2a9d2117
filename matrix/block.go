// SPDX-License-Identifier: MIT

// Package matrix - Block: a no-copy rectangular window over a Dense.
//
// Purpose:
//   - Expose a sub-matrix [r0:r0+r, c0:c0+c) of a Dense without copying.
//   - Hand out row/column views that keep the base's strides, so blocks of
//     blocks of a Dense still iterate by pointer.
//
// AI-Hints:
//   - Writes through a Block (Set, rows, columns, iterators) land in the base.
//   - Block rows are contiguous; Block columns are strided by base.Cols().
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvstl/stl"
)

const viewBlock = "Block"

// Block is a window into a Dense. Indices are local to the window.
type Block[T Scalar] struct {
	base   *Dense[T]
	r0, c0 int // top-left corner in base coordinates
	r, c   int // window shape
}

// Rows returns the window's row count.
func (b *Block[T]) Rows() int { return b.r }

// Cols returns the window's column count.
func (b *Block[T]) Cols() int { return b.c }

// Shape packs Rows() and Cols().
func (b *Block[T]) Shape() (rows, cols int) { return b.r, b.c }

// Base returns the Dense this window reads from.
func (b *Block[T]) Base() *Dense[T] { return b.base }

// At returns the element at local (i, j), or ErrOutOfRange.
func (b *Block[T]) At(i, j int) (T, error) {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		var zero T
		return zero, fmt.Errorf("%s.%s(%d,%d): %w", viewBlock, ctxAt, i, j, ErrOutOfRange)
	}

	return *b.cell(i, j), nil
}

// Set stores v at local (i, j) under the base's numeric policy.
func (b *Block[T]) Set(i, j int, v T) error {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return fmt.Errorf("%s.%s(%d,%d): %w", viewBlock, ctxSet, i, j, ErrOutOfRange)
	}
	if b.base.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("%s.%s(%d,%d): %w", viewBlock, ctxSet, i, j, ErrNaNInf)
	}
	*b.cell(i, j) = v

	return nil
}

func (b *Block[T]) cell(i, j int) *T { return b.base.cell(b.r0+i, b.c0+j) }

// rowView is local row i, contiguous in the base buffer.
func (b *Block[T]) rowView(i int) *Strided[T] {
	m := b.base
	return newStrided(m.data, (b.r0+i)*m.c+b.c0, b.c, 1, m.validateNaNInf)
}

// colView is local column j, strided by the base row length.
func (b *Block[T]) colView(j int) *Strided[T] {
	m := b.base
	return newStrided(m.data, b.r0*m.c+b.c0+j, b.r, m.c, m.validateNaNInf)
}

// Row returns local row i as a no-copy view, or ErrOutOfRange.
func (b *Block[T]) Row(i int) (*Strided[T], error) {
	if i < 0 || i >= b.r {
		return nil, viewErrorf(viewBlock, ctxRow, i, ErrOutOfRange)
	}

	return b.rowView(i), nil
}

// Col returns local column j as a no-copy view, or ErrOutOfRange.
func (b *Block[T]) Col(j int) (*Strided[T], error) {
	if j < 0 || j >= b.c {
		return nil, viewErrorf(viewBlock, ctxCol, j, ErrOutOfRange)
	}

	return b.colView(j), nil
}

// View narrows the window further. Coordinates are local.
// Errors: ErrBadShape when the window does not fit.
func (b *Block[T]) View(r0, c0, rows, cols int) (*Block[T], error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > b.r || c0+cols > b.c {
		return nil, fmt.Errorf("%s.%s(%d,%d,%d,%d): %w", viewBlock, ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &Block[T]{base: b.base, r0: b.r0 + r0, c0: b.c0 + c0, r: rows, c: cols}, nil
}

// Reshaped returns the window as a column-major vector. No copy.
func (b *Block[T]) Reshaped() *Reshaped[T] { return newReshaped[T](b) }

// SubVectors returns the column count for stl.DirVertical and the row count
// for stl.DirHorizontal.
func (b *Block[T]) SubVectors(d stl.Direction) int {
	if d == stl.DirVertical {
		return b.c
	}

	return b.r
}

// SubVector extracts local column i (stl.DirVertical) or row i (stl.DirHorizontal).
// Panics with ErrOutOfRange on a bad index.
func (b *Block[T]) SubVector(d stl.Direction, i int) *Strided[T] {
	if i < 0 || i >= b.SubVectors(d) {
		panic(fmt.Errorf("%s.%s(%s,%d): %w", viewBlock, ctxSubVector, d, i, ErrOutOfRange))
	}
	if d == stl.DirVertical {
		return b.colView(i)
	}

	return b.rowView(i)
}

// ConstSubVector is the read-only counterpart of SubVector.
func (b *Block[T]) ConstSubVector(d stl.Direction, i int) *ReadOnly[T] {
	return b.SubVector(d, i).Const()
}

// AllRows ranges over the window's rows.
func (b *Block[T]) AllRows() stl.SubVectorsProxy[*Block[T], *Strided[T], *ReadOnly[T], stl.Horizontal] {
	return stl.AllRows[*Strided[T], *ReadOnly[T]](b)
}

// AllCols ranges over the window's columns.
func (b *Block[T]) AllCols() stl.SubVectorsProxy[*Block[T], *Strided[T], *ReadOnly[T], stl.Vertical] {
	return stl.AllCols[*Strided[T], *ReadOnly[T]](b)
}

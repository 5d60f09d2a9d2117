// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Hand out no-copy row/column/block/transposed views that the stl
//     iterators walk directly.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Rows are contiguous (stride 1), columns are strided by Cols().
//   - Use AllRows/AllCols to iterate sub-vectors without collecting them.
//   - Dense is 2D: it has no Begin/End. Use Reshaped() to walk every element.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); views: O(1).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvstl/stl"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxRow       = "Row"       // view tag for Dense.Row
	ctxCol       = "Col"       // view tag for Dense.Col
	ctxView      = "View"      // ctor tag for Dense.View
	ctxSubVector = "SubVector" // unchecked extraction tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense[T Scalar] struct {
	r, c           int  // row and column counts
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set when true
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: resolve numeric policy from options.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
// MAIN DESCRIPTION:
//   - Construct and fill in one step; the caller keeps ownership of data.
//
// Implementation:
//   - Stage 1: validate shape and len(data) == rows*cols.
//   - Stage 2: enforce the numeric policy over every value.
//   - Stage 3: copy into a fresh buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom[T Scalar](rows, cols int, data []T, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): len(data)=%d: %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for k, v := range data {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxSet, k/cols, k%cols, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// cell addresses (i, j) without bounds checks beyond the slice's own.
func (m *Dense[T]) cell(i, j int) *T { return &m.data[i*m.c+j] }

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// String renders rows as lines with comma-separated values.
// Not for hot paths; intended for logs and debugging.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// ---------- views ----------

// rowView is row i as a contiguous strided view.
func (m *Dense[T]) rowView(i int) *Strided[T] {
	return newStrided(m.data, i*m.c, m.c, 1, m.validateNaNInf)
}

// colView is column j, strided by the row length.
func (m *Dense[T]) colView(j int) *Strided[T] {
	return newStrided(m.data, j, m.r, m.c, m.validateNaNInf)
}

// Row returns row i as a no-copy view, or ErrOutOfRange.
// Writes through the view land in m.
func (m *Dense[T]) Row(i int) (*Strided[T], error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.rowView(i), nil
}

// Col returns column j as a no-copy view, or ErrOutOfRange.
func (m *Dense[T]) Col(j int) (*Strided[T], error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return m.colView(j), nil
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// MAIN DESCRIPTION:
//   - Lightweight submatrix referencing the base buffer (shared storage).
//
// Errors:
//   - ErrBadShape when the window is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) View(r0, c0, rows, cols int) (*Block[T], error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &Block[T]{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// T returns the transposed view of m. No copy.
func (m *Dense[T]) T() *Transposed[T] { return &Transposed[T]{base: m} }

// Reshaped returns m as a vector in column-major order. No copy.
// Row-major storage read column-major has no uniform stride, so the view
// iterates through element access.
func (m *Dense[T]) Reshaped() *Reshaped[T] { return newReshaped[T](m) }

// ---------- sub-vector host (stl.SubVectorHost) ----------

// SubVectors returns the column count for stl.DirVertical and the row count
// for stl.DirHorizontal.
func (m *Dense[T]) SubVectors(d stl.Direction) int {
	if d == stl.DirVertical {
		return m.c
	}

	return m.r
}

// SubVector extracts column i (stl.DirVertical) or row i (stl.DirHorizontal).
// Panics with ErrOutOfRange when i is not a valid sub-vector index.
func (m *Dense[T]) SubVector(d stl.Direction, i int) *Strided[T] {
	if i < 0 || i >= m.SubVectors(d) {
		panic(fmt.Errorf("Dense.%s(%s,%d): %w", ctxSubVector, d, i, ErrOutOfRange))
	}
	if d == stl.DirVertical {
		return m.colView(i)
	}

	return m.rowView(i)
}

// ConstSubVector is the read-only counterpart of SubVector.
func (m *Dense[T]) ConstSubVector(d stl.Direction, i int) *ReadOnly[T] {
	return m.SubVector(d, i).Const()
}

// AllRows ranges over the rows of m.
func (m *Dense[T]) AllRows() stl.SubVectorsProxy[*Dense[T], *Strided[T], *ReadOnly[T], stl.Horizontal] {
	return stl.AllRows[*Strided[T], *ReadOnly[T]](m)
}

// AllCols ranges over the columns of m.
func (m *Dense[T]) AllCols() stl.SubVectorsProxy[*Dense[T], *Strided[T], *ReadOnly[T], stl.Vertical] {
	return stl.AllCols[*Strided[T], *ReadOnly[T]](m)
}

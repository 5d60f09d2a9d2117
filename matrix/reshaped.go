// Package matrix - Reshaped: a 2D expression read as one column-major vector.
//
// Element k is cell (k mod rows, k div rows). Over row-major storage that
// order has no uniform stride, so Reshaped exposes element access only and
// its iterators are indexed.
//
// Indexed iterators compare by expression identity: keep one *Reshaped and
// take Begin/End from it. Two Reshaped() calls are two expressions.
package matrix

import "github.com/katalvlaran/lvstl/stl"

const viewReshaped = "Reshaped"

// Reshaped is a column-major vector view of a 2D expression.
type Reshaped[T Scalar] struct {
	src  grid[T]
	rows int
	n    int
}

func newReshaped[T Scalar](src grid[T]) *Reshaped[T] {
	r := src.Rows()
	return &Reshaped[T]{src: src, rows: r, n: r * src.Cols()}
}

// Len returns Rows()*Cols() of the source.
func (v *Reshaped[T]) Len() int { return v.n }

// Elem returns element k. Unchecked.
func (v *Reshaped[T]) Elem(k int) T { return *v.ElemRef(k) }

// ElemRef returns the address of element k. Unchecked.
func (v *Reshaped[T]) ElemRef(k int) *T { return v.src.cell(k%v.rows, k/v.rows) }

// At returns element k, or ErrOutOfRange.
func (v *Reshaped[T]) At(k int) (T, error) {
	if k < 0 || k >= v.n {
		var zero T
		return zero, viewErrorf(viewReshaped, ctxAt, k, ErrOutOfRange)
	}

	return v.Elem(k), nil
}

// Begin returns a mutable indexed iterator on element 0.
func (v *Reshaped[T]) Begin() stl.GenericIterator[*Reshaped[T], T] { return stl.IndexedBegin[T](v) }

// End returns a mutable indexed iterator one past the last element.
func (v *Reshaped[T]) End() stl.GenericIterator[*Reshaped[T], T] { return stl.IndexedEnd[T](v) }

// CBegin returns a read-only indexed iterator on element 0.
func (v *Reshaped[T]) CBegin() stl.ConstGenericIterator[*Reshaped[T], T] {
	return stl.IndexedCBegin[T](v)
}

// CEnd returns a read-only indexed iterator one past the last element.
func (v *Reshaped[T]) CEnd() stl.ConstGenericIterator[*Reshaped[T], T] {
	return stl.IndexedCEnd[T](v)
}

// Values copies the elements into a new slice.
func (v *Reshaped[T]) Values() []T {
	return stl.Collect(make([]T, 0, v.n), v.CBegin().Until(v.CEnd()))
}

// String renders the elements as "[a, b, c]".
func (v *Reshaped[T]) String() string { return formatSeq[T](v) }

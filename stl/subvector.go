// Package stl - iteration over the rows or columns of a 2D expression.
package stl

// subVectorRef extracts mutable row/column views along D.
type subVectorRef[E SubVectorHost[V, C], V, C any, D Axis] struct{}

func (subVectorRef[E, V, C, D]) deref(e E, i int) V {
	var d D
	return e.SubVector(d.Direction(), i)
}

func (a subVectorRef[E, V, C, D]) arrow(e E, i int) *V {
	v := a.deref(e, i)
	return &v
}

// subVectorConst extracts read-only row/column views along D.
type subVectorConst[E SubVectorHost[V, C], V, C any, D Axis] struct{}

func (subVectorConst[E, V, C, D]) deref(e E, i int) C {
	var d D
	return e.ConstSubVector(d.Direction(), i)
}

func (a subVectorConst[E, V, C, D]) arrow(e E, i int) *C {
	v := a.deref(e, i)
	return &v
}

// SubVectorIterator walks the columns (D = Vertical) or rows (D = Horizontal)
// of E. Deref returns a fresh view; the view is produced, never stored.
type SubVectorIterator[E SubVectorHost[V, C], V, C any, D Axis] = IndexBased[E, V, *V, subVectorRef[E, V, C, D]]

// ConstSubVectorIterator is SubVectorIterator yielding read-only views.
type ConstSubVectorIterator[E SubVectorHost[V, C], V, C any, D Axis] = IndexBased[E, C, *C, subVectorConst[E, V, C, D]]

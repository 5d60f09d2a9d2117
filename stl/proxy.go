// SPDX-License-Identifier: MIT

// Package stl - range adaptor over all rows or all columns.
package stl

import "iter"

// SubVectorsProxy exposes begin/end over every row or every column of a 2D
// expression without building an intermediate collection.
// The end position is the sub-vector count along D: column count for
// Vertical, row count for Horizontal.
type SubVectorsProxy[E SubVectorHost[V, C], V, C any, D Axis] struct {
	xpr E
}

// Len returns the number of sub-vectors.
func (p SubVectorsProxy[E, V, C, D]) Len() int {
	var d D
	return p.xpr.SubVectors(d.Direction())
}

// Begin returns an iterator on the first sub-vector.
func (p SubVectorsProxy[E, V, C, D]) Begin() SubVectorIterator[E, V, C, D] {
	return SubVectorIterator[E, V, C, D]{xpr: p.xpr, index: 0}
}

// End returns an iterator one past the last sub-vector.
func (p SubVectorsProxy[E, V, C, D]) End() SubVectorIterator[E, V, C, D] {
	return SubVectorIterator[E, V, C, D]{xpr: p.xpr, index: p.Len()}
}

// CBegin returns a read-only iterator on the first sub-vector.
func (p SubVectorsProxy[E, V, C, D]) CBegin() ConstSubVectorIterator[E, V, C, D] {
	return ConstSubVectorIterator[E, V, C, D]{xpr: p.xpr, index: 0}
}

// CEnd returns a read-only iterator one past the last sub-vector.
func (p SubVectorsProxy[E, V, C, D]) CEnd() ConstSubVectorIterator[E, V, C, D] {
	return ConstSubVectorIterator[E, V, C, D]{xpr: p.xpr, index: p.Len()}
}

// All yields (index, view) pairs in order.
func (p SubVectorsProxy[E, V, C, D]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		it, n := p.Begin(), p.Len()
		for i := 0; i < n; i++ {
			if !yield(i, it.Deref()) {
				return
			}
			it.Inc()
		}
	}
}

// CAll yields (index, read-only view) pairs in order.
func (p SubVectorsProxy[E, V, C, D]) CAll() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		it, n := p.CBegin(), p.Len()
		for i := 0; i < n; i++ {
			if !yield(i, it.Deref()) {
				return
			}
			it.Inc()
		}
	}
}

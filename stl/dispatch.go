// SPDX-License-Identifier: MIT

// Package stl - entry points.
//
// Go has no specialization on a type's capabilities, so strategy selection is
// made once per expression type: its Begin/End/CBegin/CEnd methods call either
// the direct constructors (Begin, End, CBegin, CEnd) or the indexed ones
// (IndexedBegin, ...). Both sets require a Vector; 2D expressions fail to
// compile here and use AllRows/AllCols instead.
//
// Type parameters are ordered so callers name only the element type (and the
// stride type for direct access); the expression type is inferred:
//
//	func (v *Vec[T]) Begin() stl.PointerIterator[T, stl.Unit] { return stl.Begin[T, stl.Unit](v) }
package stl

// Begin returns a mutable pointer iterator on element 0 of e.
func Begin[T any, S Stride, E DirectLvalue[T, S]](e E) PointerIterator[T, S] {
	return pointerAt[T, S, *T, *T, addressOf[T]](e.Data(), e.Offset(), e.InnerStride(), 0)
}

// End returns a mutable pointer iterator one past the last element of e.
func End[T any, S Stride, E DirectLvalue[T, S]](e E) PointerIterator[T, S] {
	return pointerAt[T, S, *T, *T, addressOf[T]](e.Data(), e.Offset(), e.InnerStride(), e.Len())
}

// CBegin returns a read-only pointer iterator on element 0 of e.
func CBegin[T any, S Stride, E DirectAccess[T, S]](e E) ConstPointerIterator[T, S] {
	return pointerAt[T, S, T, *T, valueOf[T]](e.Data(), e.Offset(), e.InnerStride(), 0)
}

// CEnd returns a read-only pointer iterator one past the last element of e.
func CEnd[T any, S Stride, E DirectAccess[T, S]](e E) ConstPointerIterator[T, S] {
	return pointerAt[T, S, T, *T, valueOf[T]](e.Data(), e.Offset(), e.InnerStride(), e.Len())
}

// IndexedBegin returns a mutable indexed iterator on element 0 of e.
func IndexedBegin[T any, E Lvalue[T]](e E) GenericIterator[E, T] {
	return GenericIterator[E, T]{xpr: e, index: 0}
}

// IndexedEnd returns a mutable indexed iterator one past the last element of e.
func IndexedEnd[T any, E Lvalue[T]](e E) GenericIterator[E, T] {
	return GenericIterator[E, T]{xpr: e, index: e.Len()}
}

// IndexedCBegin returns a read-only indexed iterator on element 0 of e.
func IndexedCBegin[T any, E Readable[T]](e E) ConstGenericIterator[E, T] {
	return ConstGenericIterator[E, T]{xpr: e, index: 0}
}

// IndexedCEnd returns a read-only indexed iterator one past the last element of e.
func IndexedCEnd[T any, E Readable[T]](e E) ConstGenericIterator[E, T] {
	return ConstGenericIterator[E, T]{xpr: e, index: e.Len()}
}

// AllRows returns a range over the rows of e.
func AllRows[V, C any, E SubVectorHost[V, C]](e E) SubVectorsProxy[E, V, C, Horizontal] {
	return SubVectorsProxy[E, V, C, Horizontal]{xpr: e}
}

// AllCols returns a range over the columns of e.
func AllCols[V, C any, E SubVectorHost[V, C]](e E) SubVectorsProxy[E, V, C, Vertical] {
	return SubVectorsProxy[E, V, C, Vertical]{xpr: e}
}

// Package stl - indexed iteration over computed expressions.
// Transposed, reshaped and transformed views have no element address to step
// through, so every dereference calls back into the expression.
package stl

// elemRef dereferences through ElemRef, yielding a genuine reference.
type elemRef[E Lvalue[T], T any] struct{}

func (elemRef[E, T]) deref(e E, i int) *T { return e.ElemRef(i) }
func (elemRef[E, T]) arrow(e E, i int) *T { return e.ElemRef(i) }

// elemValue dereferences through Elem, yielding a copy. Some computed views
// cannot produce a reference, so read-only iteration is by value.
type elemValue[E Readable[T], T any] struct{}

func (elemValue[E, T]) deref(e E, i int) T { return e.Elem(i) }
func (elemValue[E, T]) arrow(e E, i int) *T {
	v := e.Elem(i)
	return &v
}

// GenericIterator walks an lvalue expression by logical index; Deref returns
// the element's address.
type GenericIterator[E Lvalue[T], T any] = IndexBased[E, *T, *T, elemRef[E, T]]

// ConstGenericIterator walks a readable expression by logical index; Deref
// returns the element by value.
type ConstGenericIterator[E Readable[T], T any] = IndexBased[E, T, *T, elemValue[E, T]]

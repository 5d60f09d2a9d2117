// Package matrix - Mapped: a lazy element-wise transform of a sequence.
//
// A Mapped element is computed on access and has no address, so the
// expression is not an lvalue: every iterator it returns is read-only.
package matrix

import "github.com/katalvlaran/lvstl/stl"

// Mapped applies fn to each element of src on demand.
type Mapped[T Scalar] struct {
	src Sequence[T]
	fn  func(T) T
}

// Map returns the lazy view fn(src[i]). No copy.
func Map[T Scalar](src Sequence[T], fn func(T) T) *Mapped[T] {
	return &Mapped[T]{src: src, fn: fn}
}

// Len returns src.Len().
func (m *Mapped[T]) Len() int { return m.src.Len() }

// Elem returns fn(src.Elem(i)).
func (m *Mapped[T]) Elem(i int) T { return m.fn(m.src.Elem(i)) }

// Begin is CBegin: computed elements cannot be written.
func (m *Mapped[T]) Begin() stl.ConstGenericIterator[*Mapped[T], T] { return m.CBegin() }

// End is CEnd.
func (m *Mapped[T]) End() stl.ConstGenericIterator[*Mapped[T], T] { return m.CEnd() }

// CBegin returns a read-only indexed iterator on element 0.
func (m *Mapped[T]) CBegin() stl.ConstGenericIterator[*Mapped[T], T] {
	return stl.IndexedCBegin[T](m)
}

// CEnd returns a read-only indexed iterator one past the last element.
func (m *Mapped[T]) CEnd() stl.ConstGenericIterator[*Mapped[T], T] {
	return stl.IndexedCEnd[T](m)
}

// Values evaluates every element into a new slice.
func (m *Mapped[T]) Values() []T {
	return stl.Collect(make([]T, 0, m.Len()), m.CBegin().Until(m.CEnd()))
}

// String renders the elements as "[a, b, c]".
func (m *Mapped[T]) String() string { return formatSeq[T](m) }

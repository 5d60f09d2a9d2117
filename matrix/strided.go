// SPDX-License-Identifier: MIT

// Package matrix - strided vector views over shared storage.
//
// Strided is what Dense rows/columns, Block rows/columns and Vector.Every
// return. ReadOnly is the same view without write access; it is what the
// read-only sub-vector iterators yield.
//
// Both expose their storage (Data/Offset/InnerStride), so their Begin/End
// are pointer iterators with a runtime stride.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvstl/stl"
)

const (
	viewStrided  = "Strided"
	viewReadOnly = "ReadOnly"
)

// Strided is a mutable vector view: element i lives at data[off + i*stride].
type Strided[T Scalar] struct {
	data           []T  // whole backing buffer of the owner
	off            int  // position of element 0
	n              int  // element count
	stride         int  // distance between neighbours, may be negative
	validateNaNInf bool // owner's numeric policy
}

// newStrided builds a view; callers guarantee the view fits in data.
func newStrided[T Scalar](data []T, off, n, stride int, validateNaNInf bool) *Strided[T] {
	return &Strided[T]{data: data, off: off, n: n, stride: stride, validateNaNInf: validateNaNInf}
}

// Len returns the element count.
func (s *Strided[T]) Len() int { return s.n }

// Elem returns element i. Unchecked: i must be in [0, Len).
func (s *Strided[T]) Elem(i int) T { return s.data[s.off+i*s.stride] }

// ElemRef returns the address of element i. Unchecked.
func (s *Strided[T]) ElemRef(i int) *T { return &s.data[s.off+i*s.stride] }

// Data returns the owner's whole buffer.
func (s *Strided[T]) Data() []T { return s.data }

// Offset returns the position of element 0 in Data().
func (s *Strided[T]) Offset() int { return s.off }

// InnerStride returns the runtime stride.
func (s *Strided[T]) InnerStride() stl.Dynamic { return stl.Dynamic(s.stride) }

// At returns element i, or ErrOutOfRange.
func (s *Strided[T]) At(i int) (T, error) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, viewErrorf(viewStrided, ctxAt, i, ErrOutOfRange)
	}

	return s.Elem(i), nil
}

// Set stores v at element i under the owner's numeric policy.
func (s *Strided[T]) Set(i int, v T) error {
	if i < 0 || i >= s.n {
		return viewErrorf(viewStrided, ctxSet, i, ErrOutOfRange)
	}
	if s.validateNaNInf && isNonFinite(v) {
		return viewErrorf(viewStrided, ctxSet, i, ErrNaNInf)
	}
	*s.ElemRef(i) = v

	return nil
}

// Begin returns a mutable iterator on element 0.
func (s *Strided[T]) Begin() stl.PointerIterator[T, stl.Dynamic] {
	return stl.Begin[T, stl.Dynamic](s)
}

// End returns a mutable iterator one past the last element.
func (s *Strided[T]) End() stl.PointerIterator[T, stl.Dynamic] {
	return stl.End[T, stl.Dynamic](s)
}

// CBegin returns a read-only iterator on element 0.
func (s *Strided[T]) CBegin() stl.ConstPointerIterator[T, stl.Dynamic] {
	return stl.CBegin[T, stl.Dynamic](s)
}

// CEnd returns a read-only iterator one past the last element.
func (s *Strided[T]) CEnd() stl.ConstPointerIterator[T, stl.Dynamic] {
	return stl.CEnd[T, stl.Dynamic](s)
}

// Const returns a read-only view of the same elements.
func (s *Strided[T]) Const() *ReadOnly[T] { return &ReadOnly[T]{view: *s} }

// Values copies the elements into a new slice.
func (s *Strided[T]) Values() []T {
	return stl.Collect(make([]T, 0, s.n), s.CBegin().Until(s.CEnd()))
}

// String renders the elements as "[a, b, c]".
func (s *Strided[T]) String() string { return formatSeq[T](s) }

// ReadOnly is a Strided view without write access.
// It has no ElemRef, so it is not an lvalue: Begin/End return read-only
// iterators, and stl.Begin does not accept it.
type ReadOnly[T Scalar] struct {
	view Strided[T]
}

// Len returns the element count.
func (r *ReadOnly[T]) Len() int { return r.view.n }

// Elem returns element i. Unchecked.
func (r *ReadOnly[T]) Elem(i int) T { return r.view.Elem(i) }

// Data returns the owner's whole buffer. Callers must not write to it.
func (r *ReadOnly[T]) Data() []T { return r.view.data }

// Offset returns the position of element 0 in Data().
func (r *ReadOnly[T]) Offset() int { return r.view.off }

// InnerStride returns the runtime stride.
func (r *ReadOnly[T]) InnerStride() stl.Dynamic { return stl.Dynamic(r.view.stride) }

// At returns element i, or ErrOutOfRange.
func (r *ReadOnly[T]) At(i int) (T, error) {
	if i < 0 || i >= r.view.n {
		var zero T
		return zero, viewErrorf(viewReadOnly, ctxAt, i, ErrOutOfRange)
	}

	return r.view.Elem(i), nil
}

// Begin is CBegin: a read-only expression only hands out read-only iterators.
func (r *ReadOnly[T]) Begin() stl.ConstPointerIterator[T, stl.Dynamic] { return r.CBegin() }

// End is CEnd.
func (r *ReadOnly[T]) End() stl.ConstPointerIterator[T, stl.Dynamic] { return r.CEnd() }

// CBegin returns a read-only iterator on element 0.
func (r *ReadOnly[T]) CBegin() stl.ConstPointerIterator[T, stl.Dynamic] {
	return stl.CBegin[T, stl.Dynamic](r)
}

// CEnd returns a read-only iterator one past the last element.
func (r *ReadOnly[T]) CEnd() stl.ConstPointerIterator[T, stl.Dynamic] {
	return stl.CEnd[T, stl.Dynamic](r)
}

// Values copies the elements into a new slice.
func (r *ReadOnly[T]) Values() []T {
	return stl.Collect(make([]T, 0, r.view.n), r.CBegin().Until(r.CEnd()))
}

// String renders the elements as "[a, b, c]".
func (r *ReadOnly[T]) String() string { return formatSeq[T](r) }

// formatSeq renders any sequence as "[a, b, c]".
func formatSeq[T Scalar](s Sequence[T]) string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	n := s.Len()
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%v", s.Elem(i))
		if i+1 < n {
			b.WriteString(_fmtSep)
		}
	}
	b.WriteString("]")

	return b.String()
}

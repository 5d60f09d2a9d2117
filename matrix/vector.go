// SPDX-License-Identifier: MIT

// Package matrix - owned contiguous vectors and their reversed view.
//
// Vector is the common 1D expression: unit stride known at compile time, so
// its pointer iterators carry no stride field. Reversed walks the same buffer
// with the compile-time stride -1.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvstl/stl"
)

const (
	viewVector   = "Vector"
	viewReversed = "Reversed"
	ctxEvery     = "Every"
)

// Vector owns a contiguous buffer of elements.
type Vector[T Scalar] struct {
	data           []T
	validateNaNInf bool
}

// NewVector creates a vector holding a copy of values.
// Errors:
//   - ErrNaNInf when the numeric policy is on and a value is not finite.
//
// Complexity: O(n).
func NewVector[T Scalar](values []T, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for i, v := range values {
			if isNonFinite(v) {
				return nil, viewErrorf(viewVector, ctxSet, i, ErrNaNInf)
			}
		}
	}
	data := make([]T, len(values))
	copy(data, values)

	return &Vector[T]{data: data, validateNaNInf: o.validateNaNInf}, nil
}

// NewZeroVector creates a vector of n zeros.
func NewZeroVector[T Scalar](n int, opts ...Option) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("NewZeroVector(%d): %w", n, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Vector[T]{data: make([]T, n), validateNaNInf: o.validateNaNInf}, nil
}

// Len returns the element count.
func (v *Vector[T]) Len() int { return len(v.data) }

// Elem returns element i. Unchecked.
func (v *Vector[T]) Elem(i int) T { return v.data[i] }

// ElemRef returns the address of element i. Unchecked.
func (v *Vector[T]) ElemRef(i int) *T { return &v.data[i] }

// Data returns the backing buffer.
func (v *Vector[T]) Data() []T { return v.data }

// Offset is always 0.
func (v *Vector[T]) Offset() int { return 0 }

// InnerStride is the compile-time unit stride.
func (v *Vector[T]) InnerStride() stl.Unit { return stl.Unit{} }

// At returns element i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, viewErrorf(viewVector, ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at element i under the numeric policy.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return viewErrorf(viewVector, ctxSet, i, ErrOutOfRange)
	}
	if v.validateNaNInf && isNonFinite(x) {
		return viewErrorf(viewVector, ctxSet, i, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// Begin returns a mutable iterator on element 0.
func (v *Vector[T]) Begin() stl.PointerIterator[T, stl.Unit] { return stl.Begin[T, stl.Unit](v) }

// End returns a mutable iterator one past the last element.
func (v *Vector[T]) End() stl.PointerIterator[T, stl.Unit] { return stl.End[T, stl.Unit](v) }

// CBegin returns a read-only iterator on element 0.
func (v *Vector[T]) CBegin() stl.ConstPointerIterator[T, stl.Unit] {
	return stl.CBegin[T, stl.Unit](v)
}

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T]) CEnd() stl.ConstPointerIterator[T, stl.Unit] {
	return stl.CEnd[T, stl.Unit](v)
}

// Reverse returns a view walking v back to front. No copy.
func (v *Vector[T]) Reverse() *Reversed[T] { return &Reversed[T]{data: v.data} }

// Every returns the view of elements 0, step, 2*step, ... No copy.
// Errors:
//   - ErrBadShape when step <= 0.
func (v *Vector[T]) Every(step int) (*Strided[T], error) {
	if step <= 0 {
		return nil, fmt.Errorf("%s.%s(%d): %w", viewVector, ctxEvery, step, ErrBadShape)
	}
	n := (len(v.data) + step - 1) / step

	return newStrided(v.data, 0, n, step, v.validateNaNInf), nil
}

// Const returns a read-only view of v.
func (v *Vector[T]) Const() *ReadOnly[T] {
	return newStrided(v.data, 0, len(v.data), 1, v.validateNaNInf).Const()
}

// Values copies the elements into a new slice.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// String renders the elements as "[a, b, c]".
func (v *Vector[T]) String() string { return formatSeq[T](v) }

// Reversed is a Vector walked back to front: element i is data[len-1-i].
// Logical element 0 sits at the end of the buffer and the stride is the
// compile-time -1.
type Reversed[T Scalar] struct {
	data []T
}

// Len returns the element count.
func (r *Reversed[T]) Len() int { return len(r.data) }

// Elem returns element i. Unchecked.
func (r *Reversed[T]) Elem(i int) T { return r.data[len(r.data)-1-i] }

// ElemRef returns the address of element i. Unchecked.
func (r *Reversed[T]) ElemRef(i int) *T { return &r.data[len(r.data)-1-i] }

// Data returns the backing buffer.
func (r *Reversed[T]) Data() []T { return r.data }

// Offset is the position of the last stored element.
func (r *Reversed[T]) Offset() int { return len(r.data) - 1 }

// InnerStride is the compile-time stride -1.
func (r *Reversed[T]) InnerStride() stl.Reverse { return stl.Reverse{} }

// At returns element i, or ErrOutOfRange.
func (r *Reversed[T]) At(i int) (T, error) {
	if i < 0 || i >= len(r.data) {
		var zero T
		return zero, viewErrorf(viewReversed, ctxAt, i, ErrOutOfRange)
	}

	return r.Elem(i), nil
}

// Begin returns a mutable iterator on logical element 0 (the last stored one).
func (r *Reversed[T]) Begin() stl.PointerIterator[T, stl.Reverse] {
	return stl.Begin[T, stl.Reverse](r)
}

// End returns a mutable iterator one past the last logical element.
func (r *Reversed[T]) End() stl.PointerIterator[T, stl.Reverse] {
	return stl.End[T, stl.Reverse](r)
}

// CBegin returns a read-only iterator on logical element 0.
func (r *Reversed[T]) CBegin() stl.ConstPointerIterator[T, stl.Reverse] {
	return stl.CBegin[T, stl.Reverse](r)
}

// CEnd returns a read-only iterator one past the last logical element.
func (r *Reversed[T]) CEnd() stl.ConstPointerIterator[T, stl.Reverse] {
	return stl.CEnd[T, stl.Reverse](r)
}

// Values copies the elements, in logical order, into a new slice.
func (r *Reversed[T]) Values() []T {
	return stl.Collect(make([]T, 0, len(r.data)), r.CBegin().Until(r.CEnd()))
}

// String renders the elements as "[a, b, c]".
func (r *Reversed[T]) String() string { return formatSeq[T](r) }

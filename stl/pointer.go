// SPDX-License-Identifier: MIT

// Package stl - direct-memory iteration.
//
// Purpose:
//   - Walk expressions with addressable, uniformly strided storage without
//     going through the expression's element access on every step.
//
// Implementation:
//   - Stage 1 (construction): pos = Offset() + index·stride, computed once.
//   - Stage 2 (stepping): pos += stride (or stride·n); no index is kept.
//   - Stage 3 (dereference): &data[pos], loaded as *T or T by the loader L.
//
// Behavior highlights:
//   - Unit and Reverse strides are zero-size; Dynamic costs one int.
//   - Ordering follows logical order for negative strides as well.
//   - Comparisons check shared storage and equal stride, not expression
//     identity: two views over the same buffer compare by position.
package stl

import (
	"cmp"
	"iter"
	"unsafe"
)

// Loader turns an element address into the dereferenced value R and the
// member-access value P.
type Loader[T, R, P any] interface {
	load(p *T) R
	addr(p *T) P
}

// addressOf yields genuine references.
type addressOf[T any] struct{}

func (addressOf[T]) load(p *T) *T { return p }
func (addressOf[T]) addr(p *T) *T { return p }

// valueOf yields copies.
type valueOf[T any] struct{}

func (valueOf[T]) load(p *T) T { return *p }
func (valueOf[T]) addr(p *T) *T {
	v := *p
	return &v
}

// PointerBased is a random-access iterator over strided storage.
//   - incr is the stride; zero-size for compile-time strides.
//   - data is the expression's whole backing slice (not owned).
//   - pos is the storage position of the current element.
//
// incr comes first: a trailing zero-size field would be padded.
// The zero value references no storage and must not be dereferenced.
type PointerBased[T any, S Stride, R, P any, L Loader[T, R, P]] struct {
	incr S
	data []T
	pos  int
}

// PointerIterator dereferences to *T; `*it.Deref() = v` writes the element.
type PointerIterator[T any, S Stride] = PointerBased[T, S, *T, *T, addressOf[T]]

// ConstPointerIterator dereferences to T by value.
type ConstPointerIterator[T any, S Stride] = PointerBased[T, S, T, *T, valueOf[T]]

// pointerAt positions a pointer iterator on logical index i.
func pointerAt[T any, S Stride, R, P any, L Loader[T, R, P]](data []T, offset int, stride S, i int) PointerBased[T, S, R, P, L] {
	return PointerBased[T, S, R, P, L]{
		data: data,
		pos:  offset + i*stride.Value(), // the only multiplication by index
		incr: stride,
	}
}

// Pos returns the storage position inside Data() of the current element.
func (it PointerBased[T, S, R, P, L]) Pos() int { return it.pos }

// Stride returns the step between logically adjacent elements.
func (it PointerBased[T, S, R, P, L]) Stride() int { return it.incr.Value() }

// Deref loads the current element.
// Panics (slice bounds) when the iterator is past either end.
func (it PointerBased[T, S, R, P, L]) Deref() R {
	var l L
	return l.load(&it.data[it.pos])
}

// At loads the element n logical positions away.
func (it PointerBased[T, S, R, P, L]) At(n int) R {
	var l L
	return l.load(&it.data[it.pos+n*it.incr.Value()])
}

// Arrow returns the element address (a temporary's address for read-only iterators).
func (it PointerBased[T, S, R, P, L]) Arrow() P {
	var l L
	return l.addr(&it.data[it.pos])
}

// Inc moves one element forward.
func (it *PointerBased[T, S, R, P, L]) Inc() { it.pos += it.incr.Value() }

// Dec moves one element back.
func (it *PointerBased[T, S, R, P, L]) Dec() { it.pos -= it.incr.Value() }

// PostInc moves one element forward and returns the previous iterator.
func (it *PointerBased[T, S, R, P, L]) PostInc() PointerBased[T, S, R, P, L] {
	prev := *it
	it.pos += it.incr.Value()

	return prev
}

// PostDec moves one element back and returns the previous iterator.
func (it *PointerBased[T, S, R, P, L]) PostDec() PointerBased[T, S, R, P, L] {
	prev := *it
	it.pos -= it.incr.Value()

	return prev
}

// AddAssign moves n elements.
func (it *PointerBased[T, S, R, P, L]) AddAssign(n int) { it.pos += n * it.incr.Value() }

// SubAssign moves -n elements.
func (it *PointerBased[T, S, R, P, L]) SubAssign(n int) { it.pos -= n * it.incr.Value() }

// Add returns a copy moved n elements.
func (it PointerBased[T, S, R, P, L]) Add(n int) PointerBased[T, S, R, P, L] {
	it.pos += n * it.incr.Value()
	return it
}

// Sub returns a copy moved -n elements.
func (it PointerBased[T, S, R, P, L]) Sub(n int) PointerBased[T, S, R, P, L] {
	it.pos -= n * it.incr.Value()
	return it
}

// Distance returns it - o in elements: the storage difference divided by the stride.
// Equal positions are 0 apart whatever the stride, zero values included.
// Panics with ErrStorageMismatch when storage or stride differ.
func (it PointerBased[T, S, R, P, L]) Distance(o PointerBased[T, S, R, P, L]) int {
	it.sameStorage(o, "PointerBased.Distance")
	if it.pos == o.pos {
		return 0
	}

	return (it.pos - o.pos) / it.incr.Value()
}

// Compare returns -1, 0 or +1 following logical order.
func (it PointerBased[T, S, R, P, L]) Compare(o PointerBased[T, S, R, P, L]) int {
	it.sameStorage(o, "PointerBased.Compare")
	return it.order(o)
}

// Equal reports it == o.
func (it PointerBased[T, S, R, P, L]) Equal(o PointerBased[T, S, R, P, L]) bool {
	it.sameStorage(o, "PointerBased.Equal")
	return it.pos == o.pos
}

// NotEqual reports it != o.
func (it PointerBased[T, S, R, P, L]) NotEqual(o PointerBased[T, S, R, P, L]) bool {
	it.sameStorage(o, "PointerBased.NotEqual")
	return it.pos != o.pos
}

// Less reports it < o.
func (it PointerBased[T, S, R, P, L]) Less(o PointerBased[T, S, R, P, L]) bool {
	it.sameStorage(o, "PointerBased.Less")
	return it.order(o) < 0
}

// LessEqual reports it <= o.
func (it PointerBased[T, S, R, P, L]) LessEqual(o PointerBased[T, S, R, P, L]) bool {
	it.sameStorage(o, "PointerBased.LessEqual")
	return it.order(o) <= 0
}

// Greater reports it > o.
func (it PointerBased[T, S, R, P, L]) Greater(o PointerBased[T, S, R, P, L]) bool {
	it.sameStorage(o, "PointerBased.Greater")
	return it.order(o) > 0
}

// GreaterEqual reports it >= o.
func (it PointerBased[T, S, R, P, L]) GreaterEqual(o PointerBased[T, S, R, P, L]) bool {
	it.sameStorage(o, "PointerBased.GreaterEqual")
	return it.order(o) >= 0
}

// Until ranges over [it, last) in order.
func (it PointerBased[T, S, R, P, L]) Until(last PointerBased[T, S, R, P, L]) iter.Seq[R] {
	n := last.Distance(it)

	return func(yield func(R) bool) {
		var l L
		step := it.incr.Value()
		pos := it.pos
		for k := 0; k < n; k++ {
			if !yield(l.load(&it.data[pos])) {
				return
			}
			pos += step
		}
	}
}

// order compares positions in stride direction, so a reversed view still
// orders begin before end.
func (it PointerBased[T, S, R, P, L]) order(o PointerBased[T, S, R, P, L]) int {
	c := cmp.Compare(it.pos, o.pos)
	if it.incr.Value() < 0 {
		return -c
	}

	return c
}

// sameStorage panics when o walks another buffer or another stride.
func (it PointerBased[T, S, R, P, L]) sameStorage(o PointerBased[T, S, R, P, L], op string) {
	if !ChecksEnabled {
		return
	}
	if unsafe.SliceData(it.data) != unsafe.SliceData(o.data) || it.incr != o.incr {
		violated(op, ErrStorageMismatch)
	}
}

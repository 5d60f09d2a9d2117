// SPDX-License-Identifier: MIT

// Package stl - index-keyed random-access arithmetic.
//
// Purpose:
//   - Provide the arithmetic shared by every iterator whose position is a
//     logical index rather than a storage position.
//   - Keep every arithmetic result typed as the concrete iterator, so chained
//     calls and generic algorithms keep the full method set.
//
// Go has no way for an embedded base to return its outer type, so the base is
// parameterized by the only thing the concrete iterators differ in: how an
// index turns into a value (the accessor A). GenericIterator and
// SubVectorIterator are instantiations of IndexBased.
//
// Complexity quicksheet:
//   - Every method is O(1); dereference costs whatever the expression's
//     element access costs.
package stl

import (
	"cmp"
	"iter"
)

// Accessor turns (expression, logical index) into a dereferenced value R and
// a member-access value P. Implementations are zero-size marker types.
type Accessor[E, R, P any] interface {
	deref(e E, i int) R
	arrow(e E, i int) P
}

// IndexBased is a random-access iterator keyed on a logical index.
//   - xpr is the non-owning expression handle, used for dereference and for
//     identity checks in comparisons.
//   - index may leave [0, Len) during arithmetic; only dereference needs it
//     in range.
//
// The zero value references no expression and must not be dereferenced.
type IndexBased[E comparable, R, P any, A Accessor[E, R, P]] struct {
	xpr   E   // referenced expression (not owned)
	index int // logical position
}

// Index returns the logical position.
func (it IndexBased[E, R, P, A]) Index() int { return it.index }

// Expr returns the referenced expression.
func (it IndexBased[E, R, P, A]) Expr() E { return it.xpr }

// Deref evaluates the element (or sub-vector) at the current position.
// Complexity: O(1) plus the cost of the expression's access.
func (it IndexBased[E, R, P, A]) Deref() R {
	var a A
	return a.deref(it.xpr, it.index)
}

// At evaluates the element n positions away without moving the iterator.
func (it IndexBased[E, R, P, A]) At(n int) R {
	var a A
	return a.deref(it.xpr, it.index+n)
}

// Arrow is member access: the address of the current element for mutable
// element iterators, or the address of a temporary otherwise.
// A temporary's address is only meaningful until the caller drops it.
func (it IndexBased[E, R, P, A]) Arrow() P {
	var a A
	return a.arrow(it.xpr, it.index)
}

// Inc moves one position forward (pre-increment).
func (it *IndexBased[E, R, P, A]) Inc() { it.index++ }

// Dec moves one position back (pre-decrement).
func (it *IndexBased[E, R, P, A]) Dec() { it.index-- }

// PostInc moves one position forward and returns the previous iterator.
func (it *IndexBased[E, R, P, A]) PostInc() IndexBased[E, R, P, A] {
	prev := *it
	it.index++

	return prev
}

// PostDec moves one position back and returns the previous iterator.
func (it *IndexBased[E, R, P, A]) PostDec() IndexBased[E, R, P, A] {
	prev := *it
	it.index--

	return prev
}

// AddAssign moves n positions (n may be negative).
func (it *IndexBased[E, R, P, A]) AddAssign(n int) { it.index += n }

// SubAssign moves -n positions.
func (it *IndexBased[E, R, P, A]) SubAssign(n int) { it.index -= n }

// Add returns a copy moved n positions.
func (it IndexBased[E, R, P, A]) Add(n int) IndexBased[E, R, P, A] {
	it.index += n
	return it
}

// Sub returns a copy moved -n positions.
func (it IndexBased[E, R, P, A]) Sub(n int) IndexBased[E, R, P, A] {
	it.index -= n
	return it
}

// Distance returns it - o in logical positions.
// Panics with ErrExprMismatch when the iterators reference different expressions.
func (it IndexBased[E, R, P, A]) Distance(o IndexBased[E, R, P, A]) int {
	it.sameExpr(o, "IndexBased.Distance")
	return it.index - o.index
}

// Compare returns -1, 0 or +1 following logical index order.
func (it IndexBased[E, R, P, A]) Compare(o IndexBased[E, R, P, A]) int {
	it.sameExpr(o, "IndexBased.Compare")
	return cmp.Compare(it.index, o.index)
}

// Equal reports it == o.
func (it IndexBased[E, R, P, A]) Equal(o IndexBased[E, R, P, A]) bool {
	it.sameExpr(o, "IndexBased.Equal")
	return it.index == o.index
}

// NotEqual reports it != o.
func (it IndexBased[E, R, P, A]) NotEqual(o IndexBased[E, R, P, A]) bool {
	it.sameExpr(o, "IndexBased.NotEqual")
	return it.index != o.index
}

// Less reports it < o.
func (it IndexBased[E, R, P, A]) Less(o IndexBased[E, R, P, A]) bool {
	it.sameExpr(o, "IndexBased.Less")
	return it.index < o.index
}

// LessEqual reports it <= o.
func (it IndexBased[E, R, P, A]) LessEqual(o IndexBased[E, R, P, A]) bool {
	it.sameExpr(o, "IndexBased.LessEqual")
	return it.index <= o.index
}

// Greater reports it > o.
func (it IndexBased[E, R, P, A]) Greater(o IndexBased[E, R, P, A]) bool {
	it.sameExpr(o, "IndexBased.Greater")
	return it.index > o.index
}

// GreaterEqual reports it >= o.
func (it IndexBased[E, R, P, A]) GreaterEqual(o IndexBased[E, R, P, A]) bool {
	it.sameExpr(o, "IndexBased.GreaterEqual")
	return it.index >= o.index
}

// Until ranges over [it, last) in order.
// Stops early when the loop body breaks.
//
// AI-Hints:
//   - for v := range v.Begin().Until(v.End()) { ... }
func (it IndexBased[E, R, P, A]) Until(last IndexBased[E, R, P, A]) iter.Seq[R] {
	n := last.Distance(it)

	return func(yield func(R) bool) {
		cur := it
		for k := 0; k < n; k++ {
			if !yield(cur.Deref()) {
				return
			}
			cur.index++
		}
	}
}

// sameExpr panics when o references another expression.
func (it IndexBased[E, R, P, A]) sameExpr(o IndexBased[E, R, P, A], op string) {
	if ChecksEnabled && it.xpr != o.xpr {
		violated(op, ErrExprMismatch)
	}
}

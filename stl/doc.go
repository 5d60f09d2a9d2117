// Package stl provides random-access iterators over dense vector and matrix
// expressions.
//
// Purpose:
//   - Let sequence algorithms walk, read and (when allowed) write the elements
//     of an expression in place, without copying it into a slice first.
//   - Hide whether the expression owns addressable storage or computes its
//     elements on the fly.
//
// Strategies:
//   - PointerIterator / ConstPointerIterator: direct addressing into the
//     expression's backing slice. The position is computed once at
//     construction (offset + index·stride); every step adds the stride.
//     Unit and Reverse are zero-size strides, Dynamic is stored per iterator.
//   - GenericIterator / ConstGenericIterator: a logical index evaluated
//     through the expression's ElemRef / Elem on every dereference.
//   - SubVectorIterator / ConstSubVectorIterator: a logical index over the
//     rows (Horizontal) or columns (Vertical) of a 2D expression; dereference
//     extracts a row/column view.
//
// Strategy selection is static. An expression type picks Begin/CBegin (direct)
// or IndexedBegin/IndexedCBegin (computed) in its own methods, so the iterator
// type is fixed at compile time and no step branches on the strategy.
// Mutability is a separate axis: mutable iterators dereference to *T, read-only
// iterators to T, so `*it.Deref() = v` does not compile for read-only ones.
//
// Preconditions:
//   - Comparing or differencing indexed iterators over different expressions
//     panics with ErrExprMismatch.
//   - Comparing or differencing pointer iterators over different storage or
//     strides panics with ErrStorageMismatch.
//   - Both checks compile out under the `stl_nochecks` build tag.
//   - Bounds are never checked by the iterators themselves; an out-of-range
//     dereference fails inside the expression (slice bounds check).
//
// Lifetime: iterators hold a non-owning handle. They are invalid once the
// expression is resized, reallocated or dropped.
//
// AI-Hints:
//   - Use it.Until(end) to range over [it, end) with a for-range loop.
//   - Use Sort(n, first.At) to sort a mutable range in place.
package stl

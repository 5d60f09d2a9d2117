// Package matrix offers dense matrix and vector expressions with STL-style
// random-access iterators.
//
// The matrix package provides:
//
//   - Dense, a row-major owner of its elements, with checked At/Set and
//     no-copy row, column, block and transposed views.
//   - Vector, Strided, Reversed and ReadOnly: vector-shaped views over real
//     storage, iterated by direct addressing (stl.PointerIterator).
//   - Reshaped and Mapped: vector-shaped views computed on the fly, iterated
//     through element access (stl.GenericIterator).
//   - AllRows/AllCols on every 2D expression, yielding one row/column view
//     per step (stl.SubVectorIterator).
//   - Row/column statistics written against those iterators, with
//     bounded-parallel variants (ReduceRows/ReduceCols) taking a context.
//
// Views share storage with the Dense or Vector they come from: a write
// through any view or iterator is visible through every other one.
//
// See the examples in this package for usage patterns.
package matrix

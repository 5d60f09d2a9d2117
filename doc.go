// Package lvstl brings STL-style random-access iterators to Go matrix and
// vector expressions.
//
// 🚀 What is lvstl?
//
//	A small, zero-cgo library that lets generic algorithms walk any
//	vector-shaped expression as a half-open range [begin, end):
//		• Direct iterators: step through strided storage by position
//		• Indexed iterators: step through element access for computed views
//		• Sub-vector iterators: step over the rows or columns of a matrix
//		• Read-only variants of all three, enforced at compile time
//
// ✨ Why choose lvstl?
//
//   - One iterator vocabulary: Deref, At, Add, Sub, Distance, Less…
//   - The right strategy is chosen by the expression type, not at run time
//   - Compile-time strides (+1, -1) cost nothing; runtime strides cost one int
//   - Misuse (comparing iterators of different expressions) is caught by
//     checks that a build tag removes
//
// Under the hood, everything is organized under two subpackages:
//
//	stl/    : iterator types, begin/end entry points, row/column proxies, algorithms
//	matrix/ : Dense, Vector and their views (Strided, Block, Transposed, Reshaped, Mapped)
//
// Quick ASCII example:
//
//	    [1, 2, 3]      AllRows → [1, 2, 3], [4, 5, 6]
//	    [4, 5, 6]      AllCols → [1, 4], [2, 5], [3, 6]
//
//	go get github.com/katalvlaran/lvstl
package lvstl

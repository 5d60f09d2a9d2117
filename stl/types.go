// SPDX-License-Identifier: MIT

// Package stl: capability contracts consumed from host expressions and the
// stride/direction marker types.
package stl

import "fmt"

// Vector is implemented by vector-shaped (1D) expressions.
// Two-dimensional expressions do not have Len, so they cannot be passed to the
// 1D entry points.
type Vector interface {
	// Len returns the number of elements.
	Len() int
}

// Readable is a vector-shaped expression whose elements can be evaluated by
// logical index. The expression handle must be comparable; indexed iterators
// use it for identity checks.
type Readable[T any] interface {
	comparable
	Vector

	// Elem evaluates the element at logical index i.
	Elem(i int) T
}

// Lvalue is a Readable expression whose elements may be written through.
type Lvalue[T any] interface {
	Readable[T]

	// ElemRef returns the address of the element at logical index i.
	ElemRef(i int) *T
}

// DirectAccess is a vector-shaped expression whose elements live in a slice
// at a fixed stride.
//
// Data returns the whole backing slice, Offset the position of logical
// element 0 inside it, and InnerStride the distance between logically
// adjacent elements (negative for reversed views).
type DirectAccess[T any, S Stride] interface {
	Vector
	Data() []T
	Offset() int
	InnerStride() S
}

// DirectLvalue is a DirectAccess expression that may be written through.
type DirectLvalue[T any, S Stride] interface {
	DirectAccess[T, S]
	ElemRef(i int) *T
}

// SubVectorHost is a 2D expression able to hand out its rows and columns.
// V is the mutable view type, C the read-only one.
type SubVectorHost[V, C any] interface {
	comparable

	// SubVectors returns the column count (DirVertical) or row count (DirHorizontal).
	SubVectors(d Direction) int

	// SubVector extracts the column (DirVertical) or row (DirHorizontal) i.
	SubVector(d Direction, i int) V

	// ConstSubVector is the read-only counterpart of SubVector.
	ConstSubVector(d Direction, i int) C
}

// ---------- strides ----------

// Stride is the distance between logically adjacent elements.
// Implementations are either zero-size constants or a stored runtime value.
type Stride interface {
	comparable
	Value() int
}

// Unit is the compile-time stride +1.
type Unit struct{}

// Value returns 1.
func (Unit) Value() int { return 1 }

// Reverse is the compile-time stride -1.
type Reverse struct{}

// Value returns -1.
func (Reverse) Value() int { return -1 }

// Dynamic is a stride known only at run time.
type Dynamic int

// Value returns the stored stride.
func (s Dynamic) Value() int { return int(s) }

// ---------- directions ----------

// Direction names the orientation of an extracted sub-vector.
type Direction int

const (
	// DirVertical extracts columns.
	DirVertical Direction = iota
	// DirHorizontal extracts rows.
	DirHorizontal
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case DirVertical:
		return "vertical"
	case DirHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Axis is the constraint satisfied by the direction marker types.
type Axis interface {
	Direction() Direction
}

// Vertical iterates over columns.
type Vertical struct{}

// Direction returns DirVertical.
func (Vertical) Direction() Direction { return DirVertical }

// Horizontal iterates over rows.
type Horizontal struct{}

// Direction returns DirHorizontal.
func (Horizontal) Direction() Direction { return DirHorizontal }

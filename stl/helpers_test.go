// SPDX-License-Identifier: MIT

// Package stl_test: minimal host expressions shared by the stl tests.
package stl_test

import (
	"testing"

	"github.com/katalvlaran/lvstl/stl"
	"github.com/stretchr/testify/require"
)

// ints is a contiguous lvalue with a compile-time unit stride.
type ints struct{ data []int }

func (v *ints) Len() int              { return len(v.data) }
func (v *ints) Elem(i int) int        { return v.data[i] }
func (v *ints) ElemRef(i int) *int    { return &v.data[i] }
func (v *ints) Data() []int           { return v.data }
func (v *ints) Offset() int           { return 0 }
func (v *ints) InnerStride() stl.Unit { return stl.Unit{} }

// backwards walks data from the last element to the first with stride -1.
type backwards struct{ data []int }

func (v *backwards) Len() int                 { return len(v.data) }
func (v *backwards) Elem(i int) int           { return v.data[len(v.data)-1-i] }
func (v *backwards) ElemRef(i int) *int       { return &v.data[len(v.data)-1-i] }
func (v *backwards) Data() []int              { return v.data }
func (v *backwards) Offset() int              { return len(v.data) - 1 }
func (v *backwards) InnerStride() stl.Reverse { return stl.Reverse{} }

// strided picks n elements of data starting at off, stride apart.
type strided struct {
	data   []int
	off    int
	n      int
	stride int
}

func (v *strided) Len() int                 { return v.n }
func (v *strided) Elem(i int) int           { return v.data[v.off+i*v.stride] }
func (v *strided) ElemRef(i int) *int       { return &v.data[v.off+i*v.stride] }
func (v *strided) Data() []int              { return v.data }
func (v *strided) Offset() int              { return v.off }
func (v *strided) InnerStride() stl.Dynamic { return stl.Dynamic(v.stride) }

// squares is a computed, read-only expression: element i is i*i.
type squares struct{ n int }

func (s *squares) Len() int       { return s.n }
func (s *squares) Elem(i int) int { return i * i }

// table is a row-major rows×cols grid whose rows and columns are strided views.
type table struct {
	rows, cols int
	data       []int
}

func (t *table) SubVectors(d stl.Direction) int {
	if d == stl.DirVertical {
		return t.cols
	}

	return t.rows
}

func (t *table) SubVector(d stl.Direction, i int) *strided {
	if d == stl.DirVertical {
		return &strided{data: t.data, off: i, n: t.rows, stride: t.cols}
	}

	return &strided{data: t.data, off: i * t.cols, n: t.cols, stride: 1}
}

// ConstSubVector returns a copy, so writes to it never reach the table.
func (t *table) ConstSubVector(d stl.Direction, i int) []int {
	sv := t.SubVector(d, i)
	return stl.Collect(nil, stl.CBegin[int, stl.Dynamic](sv).Until(stl.CEnd[int, stl.Dynamic](sv)))
}

// seq returns 0, 1, ..., n-1.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// requirePanicsWith runs fn and requires a panic carrying an error that wraps target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is %T, want error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// comparableIterator is the navigation and comparison part of stl.Iterator.
type comparableIterator[I any] interface {
	Add(n int) I
	Distance(o I) int
	Compare(o I) int
	Equal(o I) bool
	NotEqual(o I) bool
	Less(o I) bool
	LessEqual(o I) bool
	GreaterEqual(o I) bool
}

// requireEmptyZeroRange checks that a zero iterator compares equal to another
// zero iterator and that the range between them is empty.
func requireEmptyZeroRange[I comparableIterator[I]](t *testing.T, first, last I) {
	t.Helper()
	require.True(t, first.Equal(last))
	require.False(t, first.NotEqual(last))
	require.Equal(t, 0, last.Distance(first))
	require.Equal(t, 0, first.Compare(last))
	require.False(t, first.Less(last))
	require.True(t, first.LessEqual(last))
	require.True(t, first.GreaterEqual(last))
	require.True(t, first.Add(0).Equal(last))
}

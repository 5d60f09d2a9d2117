// SPDX-License-Identifier: MIT

// Package stl - small sequence algorithms working on iterator ranges.
// They take iter.Seq values (from Until) or an (n, at) pair (from Distance and
// a method value like first.At), so element types are inferred at call sites.
package stl

import (
	"cmp"
	"iter"
	"sort"
)

// Fill writes v through every reference in refs.
func Fill[T any](refs iter.Seq[*T], v T) {
	for p := range refs {
		*p = v
	}
}

// Fold reduces seq left to right.
func Fold[R, A any](seq iter.Seq[R], init A, f func(A, R) A) A {
	acc := init
	for v := range seq {
		acc = f(acc, v)
	}

	return acc
}

// Collect appends the values of seq to dst.
func Collect[R any](dst []R, seq iter.Seq[R]) []R {
	for v := range seq {
		dst = append(dst, v)
	}

	return dst
}

// Equal reports whether a and b yield the same values in the same order.
func Equal[T comparable](a, b iter.Seq[T]) bool {
	nextB, stop := iter.Pull(b)
	defer stop()
	for va := range a {
		vb, ok := nextB()
		if !ok || va != vb {
			return false
		}
	}
	_, more := nextB()

	return !more
}

// Sort sorts the n elements reached by at(0) .. at(n-1) in ascending order.
//
// AI-Hints:
//   - stl.Sort(last.Distance(first), first.At) sorts [first, last) in place.
func Sort[T cmp.Ordered](n int, at func(int) *T) {
	sort.Sort(refSorter[T]{n: n, at: at})
}

// ReverseRange reverses the n elements reached by at in place.
func ReverseRange[T any](n int, at func(int) *T) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		a, b := at(i), at(j)
		*a, *b = *b, *a
	}
}

// refSorter adapts a mutable range to sort.Interface.
type refSorter[T cmp.Ordered] struct {
	n  int
	at func(int) *T
}

func (s refSorter[T]) Len() int           { return s.n }
func (s refSorter[T]) Less(i, j int) bool { return cmp.Less(*s.at(i), *s.at(j)) }
func (s refSorter[T]) Swap(i, j int) {
	a, b := s.at(i), s.at(j)
	*a, *b = *b, *a
}

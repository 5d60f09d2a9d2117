// Package stl_test contains unit tests for the indexed iterators.
package stl_test

import (
	"testing"

	"github.com/katalvlaran/lvstl/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIndexedRangeLength checks end-begin == n and begin+n == end.
func TestIndexedRangeLength(t *testing.T) {
	v := &ints{data: []int{10, 20, 30, 40, 50}}
	first, last := stl.IndexedBegin[int](v), stl.IndexedEnd[int](v)

	require.Equal(t, 5, last.Distance(first))
	require.Equal(t, -5, first.Distance(last))
	require.True(t, first.Add(5).Equal(last))
	require.True(t, last.Sub(5).Equal(first))
	require.Equal(t, 0, first.Index())
	require.Equal(t, 5, last.Index())
	require.Same(t, v, first.Expr())
}

// TestIndexedStepping walks the full set of increment/decrement operators.
func TestIndexedStepping(t *testing.T) {
	v := &ints{data: []int{10, 20, 30, 40, 50}}
	it := stl.IndexedBegin[int](v)

	it.Inc()
	require.Equal(t, 20, *it.Deref())

	prev := it.PostInc()
	assert.Equal(t, 20, *prev.Deref()) // copy taken before the step
	assert.Equal(t, 30, *it.Deref())

	it.Dec()
	require.Equal(t, 20, *it.Deref())

	it.AddAssign(3)
	require.Equal(t, 50, *it.Deref())

	it.SubAssign(4)
	require.Equal(t, 10, *it.Deref())

	prev = it.PostDec()
	assert.Equal(t, 0, prev.Index())
	assert.Equal(t, -1, it.Index()) // before-begin is representable, just not dereferenceable
}

// TestIndexedRandomAccess checks At, Add/Sub and the free-standing n+it / n-it.
func TestIndexedRandomAccess(t *testing.T) {
	v := &ints{data: []int{10, 20, 30, 40, 50}}
	first, last := stl.IndexedBegin[int](v), stl.IndexedEnd[int](v)

	require.Equal(t, 30, *first.At(2))
	require.Equal(t, 50, *last.At(-1))
	require.Equal(t, 40, *first.Add(3).Deref())

	assert.True(t, stl.AddTo(2, first).Equal(first.Add(2)))
	assert.True(t, stl.SubFrom(1, last).Equal(last.Sub(1)))
}

// TestIndexedOrdering checks the six relations and Compare.
func TestIndexedOrdering(t *testing.T) {
	v := &ints{data: seq(4)}
	a := stl.IndexedBegin[int](v)
	b := a.Add(2)

	assert.True(t, a.Less(b))
	assert.True(t, a.LessEqual(b))
	assert.True(t, a.LessEqual(a))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterEqual(a))
	assert.True(t, a.NotEqual(b))
	assert.False(t, a.Equal(b))

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, b.Compare(a))
}

// TestIndexedWrites writes through Deref and Arrow of a mutable iterator.
func TestIndexedWrites(t *testing.T) {
	v := &ints{data: []int{1, 2, 3}}
	for it, end := stl.IndexedBegin[int](v), stl.IndexedEnd[int](v); it.NotEqual(end); it.Inc() {
		*it.Deref() *= 10
	}
	require.Equal(t, []int{10, 20, 30}, v.data)

	*stl.IndexedBegin[int](v).Arrow() = 7
	require.Equal(t, 7, v.data[0])
}

// TestConstIndexedComputed iterates an expression without element addresses.
func TestConstIndexedComputed(t *testing.T) {
	s := &squares{n: 5}
	first, last := stl.IndexedCBegin[int](s), stl.IndexedCEnd[int](s)

	require.Equal(t, []int{0, 1, 4, 9, 16}, stl.Collect(nil, first.Until(last)))
	require.Equal(t, 9, first.At(3))

	// Arrow on a read-only iterator points at a temporary copy.
	p := first.Add(2).Arrow()
	*p = 100
	require.Equal(t, 4, first.Add(2).Deref())
}

// TestConstIndexedOverLvalue reads a mutable expression through read-only iterators.
func TestConstIndexedOverLvalue(t *testing.T) {
	v := &ints{data: []int{3, 1, 2}}
	first, last := stl.IndexedCBegin[int](v), stl.IndexedCEnd[int](v)

	require.Equal(t, 3, last.Distance(first))
	require.Equal(t, []int{3, 1, 2}, stl.Collect(nil, first.Until(last)))
}

// TestIndexedUntilStopsEarly checks that breaking out of range stops the walk.
func TestIndexedUntilStopsEarly(t *testing.T) {
	v := &ints{data: seq(10)}
	var got []int
	for p := range stl.IndexedBegin[int](v).Until(stl.IndexedEnd[int](v)) {
		if *p == 3 {
			break
		}
		got = append(got, *p)
	}
	require.Equal(t, []int{0, 1, 2}, got)
}

// TestIndexedZeroValue default-constructs every indexed iterator kind.
func TestIndexedZeroValue(t *testing.T) {
	t.Run("generic", func(t *testing.T) {
		var first, last stl.GenericIterator[*ints, int]
		requireEmptyZeroRange(t, first, last)
		require.Nil(t, first.Expr())
		require.Empty(t, stl.Collect(nil, first.Until(last)))
	})
	t.Run("read-only generic", func(t *testing.T) {
		var first, last stl.ConstGenericIterator[*squares, int]
		requireEmptyZeroRange(t, first, last)
		require.Empty(t, stl.Collect(nil, first.Until(last)))
	})
	t.Run("sub-vector", func(t *testing.T) {
		var first, last stl.SubVectorIterator[*table, *strided, []int, stl.Vertical]
		requireEmptyZeroRange(t, first, last)
	})
	t.Run("read-only sub-vector", func(t *testing.T) {
		var first, last stl.ConstSubVectorIterator[*table, *strided, []int, stl.Horizontal]
		requireEmptyZeroRange(t, first, last)
	})
}

// TestIndexedExprMismatchPanics checks that iterators of two expressions refuse to mix.
func TestIndexedExprMismatchPanics(t *testing.T) {
	if !stl.ChecksEnabled {
		t.Skip("built with stl_nochecks")
	}
	a := &ints{data: seq(3)}
	b := &ints{data: seq(3)}

	ops := map[string]func(){
		"Distance": func() { _ = stl.IndexedEnd[int](a).Distance(stl.IndexedBegin[int](b)) },
		"Equal":    func() { _ = stl.IndexedBegin[int](a).Equal(stl.IndexedBegin[int](b)) },
		"Less":     func() { _ = stl.IndexedBegin[int](a).Less(stl.IndexedEnd[int](b)) },
		"Compare":  func() { _ = stl.IndexedCBegin[int](a).Compare(stl.IndexedCBegin[int](b)) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			requirePanicsWith(t, stl.ErrExprMismatch, op)
		})
	}
}

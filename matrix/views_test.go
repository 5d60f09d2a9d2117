// Package matrix_test contains unit tests for Block, Transposed, Reshaped and Mapped.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvstl/matrix"
	"github.com/katalvlaran/lvstl/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlockWindow reads and writes through a window of a 4×4 matrix.
func TestBlockWindow(t *testing.T) {
	m := mustDense(t, 4, 4, iota64(16)...)
	b, err := m.View(1, 1, 2, 3)
	require.NoError(t, err)
	require.Same(t, m, b.Base())

	r, c := b.Shape()
	require.Equal(t, [2]int{2, 3}, [2]int{r, c})

	v, err := b.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	row, err := b.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 11, 12}, row.Values())

	col, err := b.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 12}, col.Values())

	require.NoError(t, b.Set(1, 2, -1))
	v, _ = m.At(2, 3)
	assert.Equal(t, -1.0, v)

	_, err = b.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, b.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	_, err = b.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = b.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestBlockBadShape(t *testing.T) {
	m := mustDense[float64](t, 3, 3)
	for _, w := range [][4]int{{-1, 0, 1, 1}, {0, 0, 4, 1}, {2, 2, 2, 1}, {0, 0, 1, -1}} {
		_, err := m.View(w[0], w[1], w[2], w[3])
		require.ErrorIs(t, err, matrix.ErrBadShape, "window %v", w)
	}
}

// TestNestedBlock narrows a window and keeps base coordinates right.
func TestNestedBlock(t *testing.T) {
	m := mustDense(t, 4, 4, iota64(16)...)
	outer, err := m.View(1, 0, 3, 4)
	require.NoError(t, err)
	inner, err := outer.View(1, 2, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{11, 15, 12, 16}, inner.Reshaped().Values())
	_, err = outer.View(0, 0, 4, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestBlockSubVectors walks a window by rows and columns.
func TestBlockSubVectors(t *testing.T) {
	m := mustDense(t, 3, 4, iota64(12)...)
	b, err := m.View(0, 1, 3, 2)
	require.NoError(t, err)

	cols := b.AllCols()
	require.Equal(t, 2, cols.End().Distance(cols.Begin()))
	assert.Equal(t, []float64{3, 7, 11}, cols.Begin().At(1).Values())
	assert.Equal(t, 4, int(cols.Begin().Deref().InnerStride()))

	rows := b.AllRows()
	require.Equal(t, 3, rows.Len())
	assert.Equal(t, []float64{6, 7}, rows.CBegin().At(1).Values())

	requirePanicsWith(t, matrix.ErrOutOfRange, func() { b.SubVector(stl.DirVertical, 2) })
}

// TestTransposed checks the swapped shape, element access and sub-vectors.
func TestTransposed(t *testing.T) {
	m := mustDense(t, 2, 3, iota64(6)...)
	tr := m.T()
	require.Same(t, m, tr.T())

	r, c := tr.Shape()
	require.Equal(t, [2]int{3, 2}, [2]int{r, c})
	v, err := tr.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	require.NoError(t, tr.Set(0, 1, 40))
	v, _ = m.At(1, 0)
	assert.Equal(t, 40.0, v)

	_, err = tr.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, tr.Set(3, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, tr.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	// Rows of the transpose are strided columns of the base.
	rows := tr.AllRows()
	require.Equal(t, 3, rows.Len())
	assert.Equal(t, []float64{3, 6}, rows.Begin().At(2).Values())
	assert.Equal(t, 3, rows.Begin().Deref().Begin().Stride())

	cols := tr.AllCols()
	require.Equal(t, 2, cols.Len())
	assert.Equal(t, []float64{1, 2, 3}, cols.CBegin().Deref().Values())
	assert.Equal(t, 1, cols.Begin().Deref().Begin().Stride())

	requirePanicsWith(t, matrix.ErrOutOfRange, func() { tr.ConstSubVector(stl.DirHorizontal, 3) })
}

// TestReshapedColumnMajor flattens a matrix column by column.
func TestReshapedColumnMajor(t *testing.T) {
	m := mustDense(t, 2, 3, iota64(6)...)
	r := m.Reshaped()

	require.Equal(t, 6, r.Len())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, r.Values())
	require.Equal(t, "[1, 4, 2, 5, 3, 6]", r.String())

	v, err := r.At(3)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	_, err = r.At(6)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// Lvalue: writes through the indexed iterator land in the Dense.
	first, last := r.Begin(), r.End()
	require.Equal(t, 6, last.Distance(first))
	*first.At(1) = -4
	x, _ := m.At(1, 0)
	assert.Equal(t, -4.0, x)
	assert.Equal(t, -4.0, r.CBegin().At(1))
}

// TestReshapedIdentity checks that iterators of two Reshaped values do not mix.
func TestReshapedIdentity(t *testing.T) {
	if !stl.ChecksEnabled {
		t.Skip("built with stl_nochecks")
	}
	m := mustDense[float64](t, 2, 2)
	a, b := m.Reshaped(), m.Reshaped()
	requirePanicsWith(t, stl.ErrExprMismatch, func() { _ = a.End().Distance(b.Begin()) })
}

// TestMapped checks lazy evaluation and read-only iteration.
func TestMapped(t *testing.T) {
	v := mustVector(t, 1.0, 2.0, 3.0)
	sq := matrix.Map[float64](v, func(x float64) float64 { return x * x })

	require.Equal(t, 3, sq.Len())
	require.Equal(t, []float64{1, 4, 9}, sq.Values())
	require.Equal(t, "[1, 4, 9]", sq.String())

	var y float64 = sq.Begin().At(2) // Mapped hands out values only
	require.Equal(t, 9.0, y)
	require.Equal(t, 3, sq.End().Distance(sq.Begin()))

	require.NoError(t, v.Set(0, 5))
	require.Equal(t, 25.0, sq.CBegin().Deref()) // computed on access

	sum := stl.Fold(sq.CBegin().Until(sq.CEnd()), 0.0, func(a, x float64) float64 { return a + x })
	require.Equal(t, 25.0+4+9, sum)
}

// TestMappedOverReshaped chains a computed view over another computed view.
func TestMappedOverReshaped(t *testing.T) {
	m := mustDense(t, 2, 2, 1, 2, 3, 4)
	neg := matrix.Map[int](m.Reshaped(), func(x int) int { return -x })
	require.Equal(t, []int{-1, -3, -2, -4}, neg.Values())
}

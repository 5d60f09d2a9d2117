// SPDX-License-Identifier: MIT

// Package matrix - column and row statistics over sub-vector iterators.
//
// Purpose:
//   - Reduce rows/columns through AllRows/AllCols and the pointer iterators
//     of each sub-vector, so no element is read through checked At.
//
// Exposed API:
//   - RowSums(X)              -> per-row sums
//   - ColSums(X)              -> per-column sums
//   - ColMeans(X)             -> per-column means
//   - CenterColumnsInPlace(X) -> subtract per-column mean in place
//   - CenterColumns(X)        -> centered copy of a Dense plus the means
//
// Determinism:
//   - Fixed sub-vector order, fixed element order within each sub-vector.
//   - Sums accumulate in float64 whatever the element type.
//
// AI-Hints:
//   - Any 2D expression of this package (Dense, Block, Transposed) is a
//     SubVectorSource; pass views to get statistics of a window without copying.
package matrix

import (
	"github.com/katalvlaran/lvstl/stl"
	"golang.org/x/exp/constraints"
)

const (
	opRowSums       = "RowSums"
	opColSums       = "ColSums"
	opColMeans      = "ColMeans"
	opCenterColumns = "CenterColumns"
)

// SubVectorSource is a 2D expression whose rows and columns are strided views.
type SubVectorSource[T Scalar] interface {
	Rows() int
	Cols() int
	SubVectors(d stl.Direction) int
	SubVector(d stl.Direction, i int) *Strided[T]
	ConstSubVector(d stl.Direction, i int) *ReadOnly[T]
}

// sumOf folds a read-only view into a float64 sum.
func sumOf[T Scalar](v *ReadOnly[T]) float64 {
	return stl.Fold(v.CBegin().Until(v.CEnd()), 0.0, func(acc float64, x T) float64 {
		return acc + float64(x)
	})
}

// RowSums returns r where r[i] = sum_j X[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func RowSums[T Scalar](x SubVectorSource[T]) ([]float64, error) {
	if x == nil {
		return nil, matrixErrorf(opRowSums, ErrNilMatrix)
	}
	rows := stl.AllRows[*Strided[T], *ReadOnly[T]](x)
	out := make([]float64, 0, rows.Len())
	for _, row := range rows.CAll() {
		out = append(out, sumOf(row))
	}

	return out, nil
}

// ColSums returns c where c[j] = sum_i X[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ColSums[T Scalar](x SubVectorSource[T]) ([]float64, error) {
	if x == nil {
		return nil, matrixErrorf(opColSums, ErrNilMatrix)
	}
	cols := stl.AllCols[*Strided[T], *ReadOnly[T]](x)
	out := make([]float64, 0, cols.Len())
	for _, col := range cols.CAll() {
		out = append(out, sumOf(col))
	}

	return out, nil
}

// ColMeans returns the per-column means. A matrix without rows yields zeros.
// Errors: ErrNilMatrix.
func ColMeans[T Scalar](x SubVectorSource[T]) ([]float64, error) {
	if x == nil {
		return nil, matrixErrorf(opColMeans, ErrNilMatrix)
	}
	means, err := ColSums(x)
	if err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}
	r := x.Rows()
	if r == 0 {
		return means, nil
	}
	invR := 1.0 / float64(r)
	for j := range means {
		means[j] *= invR
	}

	return means, nil
}

// CenterColumnsInPlace subtracts each column's mean from that column's
// elements, writing through the column iterators. Returns the means.
//
// Writes go through iterators, so the numeric policy is not consulted;
// subtracting finite means from finite values stays finite.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func CenterColumnsInPlace[T constraints.Float](x SubVectorSource[T]) ([]float64, error) {
	means, err := ColMeans(x)
	if err != nil {
		return nil, matrixErrorf(opCenterColumns, err)
	}
	for j, col := range stl.AllCols[*Strided[T], *ReadOnly[T]](x).All() {
		mu := T(means[j])
		for it, end := col.Begin(), col.End(); it.NotEqual(end); it.Inc() {
			*it.Deref() -= mu
		}
	}

	return means, nil
}

// CenterColumns returns Xc = X - mean(X, by columns) as a new Dense, and the
// column means. X is left untouched.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and space.
func CenterColumns[T constraints.Float](x *Dense[T]) (*Dense[T], []float64, error) {
	if x == nil {
		return nil, nil, matrixErrorf(opCenterColumns, ErrNilMatrix)
	}
	xc := x.Clone()
	means, err := CenterColumnsInPlace[T](xc)
	if err != nil {
		return nil, nil, err
	}

	return xc, means, nil
}

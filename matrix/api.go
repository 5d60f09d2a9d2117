// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin entry points for building Dense values from shapes and from
//     other expressions.
//
// AI-Hints:
//   - Materialize turns a view (Block, Transposed) into owned row-major storage;
//     its Reshaped() order then has a uniform stride again.
//   - Use NewIdentity/ZerosLike to build matrices with explicit shape and neutral elements.

package matrix

import "github.com/katalvlaran/lvstl/stl"

const (
	opMaterialize = "Materialize"
	opZerosLike   = "ZerosLike"
)

// NewIdentity returns I_n (n×n, ones on the diagonal).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Scalar](n int, opts ...Option) (*Dense[T], error) {
	id, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		*id.cell(i, i) = 1
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func ZerosLike[T Scalar](m Matrix[T], opts ...Option) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opZerosLike, ErrNilMatrix)
	}

	return NewDense[T](m.Rows(), m.Cols(), opts...)
}

// Materialize copies any Matrix into a fresh Dense. The copy's numeric
// policy (default: finite only) is enforced over the copied values.
// Views of this package are copied row by row through their row iterators;
// other implementations go through checked At.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, wrapped At errors.
// Complexity: O(r*c).
func Materialize[T Scalar](m Matrix[T], opts ...Option) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opMaterialize, ErrNilMatrix)
	}
	out, err := NewDense[T](m.Rows(), m.Cols(), opts...)
	if err != nil {
		return nil, matrixErrorf(opMaterialize, err)
	}

	if src, ok := m.(SubVectorSource[T]); ok {
		for i, row := range stl.AllRows[*Strided[T], *ReadOnly[T]](src).CAll() {
			stl.Collect(out.data[i*out.c:i*out.c], row.CBegin().Until(row.CEnd()))
		}

		if err = out.checkFinite(opMaterialize); err != nil {
			return nil, err
		}

		return out, nil
	}

	var v T
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMaterialize, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	if err = out.checkFinite(opMaterialize); err != nil {
		return nil, err
	}

	return out, nil
}

// checkFinite enforces m's numeric policy over every stored value.
func (m *Dense[T]) checkFinite(op string) error {
	if !m.validateNaNInf {
		return nil
	}
	for k, v := range m.data {
		if isNonFinite(v) {
			return matrixErrorf(op, denseErrorf(ctxSet, k/m.c, k%m.c, ErrNaNInf))
		}
	}

	return nil
}

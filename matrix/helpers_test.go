// SPDX-License-Identifier: MIT

// Package matrix_test: shared builders for the matrix tests.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvstl/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a rows×cols Dense from row-major values or fails the test.
func mustDense[T matrix.Scalar](tb testing.TB, rows, cols int, values ...T) *matrix.Dense[T] {
	tb.Helper()
	if len(values) == 0 {
		m, err := matrix.NewDense[T](rows, cols)
		require.NoError(tb, err)
		return m
	}
	m, err := matrix.NewDenseFrom(rows, cols, values)
	require.NoError(tb, err)

	return m
}

// mustVector builds a Vector or fails the test.
func mustVector[T matrix.Scalar](tb testing.TB, values ...T) *matrix.Vector[T] {
	tb.Helper()
	v, err := matrix.NewVector(values)
	require.NoError(tb, err)

	return v
}

// iota64 returns 1, 2, ..., n as float64.
func iota64(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
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

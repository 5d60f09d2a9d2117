// SPDX-License-Identifier: MIT

// Package matrix - bounded-parallel reductions over rows and columns.
//
// Each sub-vector is reduced by its own goroutine under an errgroup with a
// concurrency limit. Results land at the sub-vector's index, so the output
// order matches RowSums/ColSums regardless of scheduling.
//
// Sub-vectors are read-only views; f must not write to the expression.
package matrix

import (
	"context"
	"runtime"

	"github.com/katalvlaran/lvstl/stl"
	"golang.org/x/sync/errgroup"
)

const (
	opReduceRows = "ReduceRows"
	opReduceCols = "ReduceCols"
)

// ReduceRows applies f to every row of x using at most workers goroutines
// (workers <= 0 means GOMAXPROCS) and returns the results in row order.
// Errors: ErrNilMatrix, or ctx.Err() when the context ends first.
func ReduceRows[T Scalar, A any](ctx context.Context, x SubVectorSource[T], workers int, f func(*ReadOnly[T]) A) ([]A, error) {
	if x == nil {
		return nil, matrixErrorf(opReduceRows, ErrNilMatrix)
	}

	return reduce(ctx, x, stl.DirHorizontal, workers, f)
}

// ReduceCols is ReduceRows over columns.
func ReduceCols[T Scalar, A any](ctx context.Context, x SubVectorSource[T], workers int, f func(*ReadOnly[T]) A) ([]A, error) {
	if x == nil {
		return nil, matrixErrorf(opReduceCols, ErrNilMatrix)
	}

	return reduce(ctx, x, stl.DirVertical, workers, f)
}

// ParallelRowSums is RowSums spread over workers goroutines.
func ParallelRowSums[T Scalar](ctx context.Context, x SubVectorSource[T], workers int) ([]float64, error) {
	return ReduceRows(ctx, x, workers, sumOf[T])
}

// ParallelColSums is ColSums spread over workers goroutines.
func ParallelColSums[T Scalar](ctx context.Context, x SubVectorSource[T], workers int) ([]float64, error) {
	return ReduceCols(ctx, x, workers, sumOf[T])
}

func reduce[T Scalar, A any](ctx context.Context, x SubVectorSource[T], d stl.Direction, workers int, f func(*ReadOnly[T]) A) ([]A, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := x.SubVectors(d)
	out := make([]A, n)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out[i] = f(x.ConstSubVector(d, i))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Package matrix_test contains unit tests for the constructor facades.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvstl/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diag is a Matrix implemented outside the package: a read-only diagonal.
type diag []float64

func (d diag) Rows() int { return len(d) }
func (d diag) Cols() int { return len(d) }
func (d diag) At(i, j int) (float64, error) {
	if i < 0 || j < 0 || i >= len(d) || j >= len(d) {
		return 0, matrix.ErrOutOfRange
	}
	if i != j {
		return 0, nil
	}

	return d[i], nil
}
func (d diag) Set(int, int, float64) error { return matrix.ErrOutOfRange }

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity[int](3)
	require.NoError(t, err)
	assert.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", id.String())

	_, err = matrix.NewIdentity[float64](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestZerosLike(t *testing.T) {
	m := mustDense(t, 2, 3, iota64(6)...)
	z, err := matrix.ZerosLike[float64](m.T())
	require.NoError(t, err)
	r, c := z.Shape()
	assert.Equal(t, [2]int{3, 2}, [2]int{r, c})
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, z.Reshaped().Values())

	_, err = matrix.ZerosLike[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMaterialize copies views and foreign implementations into owned storage.
func TestMaterialize(t *testing.T) {
	m := mustDense(t, 2, 3, iota64(6)...)

	tm, err := matrix.Materialize[float64](m.T())
	require.NoError(t, err)
	assert.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", tm.String())

	require.NoError(t, tm.Set(0, 0, 100)) // the copy is detached
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)

	b, err := m.View(0, 1, 2, 2)
	require.NoError(t, err)
	bm, err := matrix.Materialize[float64](b)
	require.NoError(t, err)
	assert.Equal(t, "[2, 3]\n[5, 6]\n", bm.String())

	dm, err := matrix.Materialize[float64](diag{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "[1, 0]\n[0, 2]\n", dm.String())

	_, err = matrix.Materialize[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMaterializePolicy enforces the copy's numeric policy.
func TestMaterializePolicy(t *testing.T) {
	loose, err := matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	_, err = matrix.Materialize[float64](loose)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	cp, err := matrix.Materialize[float64](loose, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(cp.Reshaped().Values()[1]))

	_, err = matrix.Materialize[float64](diag{math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/taylortable/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from literal rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// hide wraps a Matrix to force the interface fallback paths.
type hide struct{ matrix.Matrix }

func TestMatVec(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	x := []float64{1, 0, -1}

	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	yHidden, err := matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	assert.Equal(t, y, yHidden, "fallback path must agree with fast path")

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, x)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec_ZeroColumns(t *testing.T) {
	m, err := matrix.NewDense(3, 0)
	require.NoError(t, err)

	y, err := matrix.MatVec(m, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, y)
}

func TestLeading(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	for _, in := range []matrix.Matrix{m, hide{m}} {
		sub, err := matrix.Leading(in, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, "[1, 2]\n[4, 5]\n", sub.String())
	}

	_, err := matrix.Leading(m, 4, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSolve_RequiresPivoting(t *testing.T) {
	// a[0][0] = 0: a non-pivoting Doolittle would divide by zero here.
	a := mustDense(t, [][]float64{{0, 1}, {1, 1}})
	x, err := matrix.Solve(a, []float64{1, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 1}, x, 1e-12)
}

func TestSolve_Random3x3(t *testing.T) {
	a := mustDense(t, [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})
	want := []float64{1, -2, 3}
	b, err := matrix.MatVec(a, want)
	require.NoError(t, err)

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, 1e-12)

	xh, err := matrix.Solve(hide{a}, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, xh, 1e-12)
}

func TestSolve_Singular(t *testing.T) {
	for i, rows := range [][][]float64{
		{{1, 1}, {1, 1}},
		{{0, 0}, {0, 0}},
		{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}},
	} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := matrix.Solve(mustDense(t, rows), make([]float64, len(rows)))
			assert.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestSolve_Validation(t *testing.T) {
	_, err := matrix.Solve(mustDense(t, [][]float64{{1, 2}}), []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Solve(mustDense(t, [][]float64{{1}}), []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSolve_Empty(t *testing.T) {
	a, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	x, err := matrix.Solve(a, []float64{})
	require.NoError(t, err)
	assert.Empty(t, x)
}

func TestLU_EpsilonOption(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 0}, {0, 1e-9}})

	_, err := matrix.LU(a)
	require.NoError(t, err, "1e-9 pivot is above the default relative tolerance")

	_, err = matrix.LU(a, matrix.WithEpsilon(1e-6))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
}

func TestLU_Perm(t *testing.T) {
	f, err := matrix.LU(mustDense(t, [][]float64{{0, 1}, {2, 0}}))
	require.NoError(t, err)
	assert.Equal(t, 2, f.Size())
	assert.Equal(t, []int{1, 0}, f.Perm())
}

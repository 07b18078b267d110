// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels behind Taylor-table
// solving: matrix-vector products, leading sub-blocks, pivoted LU and Solve.
//
// Notes:
//   - Kernels validate through the central validators and wrap sentinels with
//     matrixErrorf so callers can still match them via errors.Is.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitution and dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec  = "MatVec"
	opLeading = "Leading"
	opLU      = "LU"
	opSolve   = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				if x[j] != 0 {
					acc += d.data[base+j] * x[j]
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Leading returns a fresh Dense holding the top-left rows×cols block of m.
//
// Errors:
//   - ErrNilMatrix for nil m.
//   - ErrOutOfRange when rows/cols exceed m's shape or are negative.
//
// Complexity: O(rows*cols).
func Leading(m Matrix, rows, cols int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLeading, err)
	}
	if rows < 0 || cols < 0 || rows > m.Rows() || cols > m.Cols() {
		return nil, matrixErrorf(opLeading, fmt.Errorf("%dx%d of %dx%d: %w", rows, cols, m.Rows(), m.Cols(), ErrOutOfRange))
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opLeading, err)
	}

	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			copy(out.data[i*cols:(i+1)*cols], d.data[i*d.c:i*d.c+cols])
		}

		return out, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opLeading, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// LUFactors is a row-pivoted Doolittle factorization P·A = L·U stored
// compactly: the strict lower triangle of lu holds L (unit diagonal
// implied), the upper triangle holds U, and perm[i] is the source row of A
// that ended up in row i.
type LUFactors struct {
	n    int
	lu   []float64
	perm []int
}

// Size returns the dimension n of the factored n×n matrix.
func (f *LUFactors) Size() int { return f.n }

// Perm returns a copy of the row permutation.
func (f *LUFactors) Perm() []int {
	out := make([]int, len(f.perm))
	copy(out, f.perm)

	return out
}

// LU performs Doolittle LU decomposition with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: validate square non-nil input, copy it into a flat buffer and
//     compute scale = max|a_ij|.
//   - Stage 2: for each column pick the row with the largest |a_ij| at or below
//     the diagonal; a pivot with |p| <= eps·scale means the matrix is singular.
//   - Stage 3: swap rows, store multipliers in the strict lower triangle and
//     eliminate below the pivot.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrSingular (zero or negligible pivot, or an all-zero matrix with n > 0).
//   - ErrNaNInf when an entry is not finite.
//
// Determinism:
//   - Ties in pivot magnitude keep the topmost row.
//
// Complexity: Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	// Stage 1: working copy and scale.
	lu := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(lu, d.data)
	} else {
		var err error
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if lu[i*n+j], err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opLU, err)
				}
			}
		}
	}
	if err := ValidateFinite(lu); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	scale := 0.0
	for _, v := range lu {
		scale = math.Max(scale, math.Abs(v))
	}
	threshold := o.eps * scale

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// Stage 2 + 3: pivot and eliminate column by column.
	var (
		col, r, c, p int
		best, f      float64
	)
	for col = 0; col < n; col++ {
		p, best = col, math.Abs(lu[col*n+col])
		for r = col + 1; r < n; r++ {
			if v := math.Abs(lu[r*n+col]); v > best {
				p, best = r, v
			}
		}
		if best == 0 || best <= threshold {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", col, ErrSingular))
		}
		if p != col {
			for c = 0; c < n; c++ {
				lu[p*n+c], lu[col*n+c] = lu[col*n+c], lu[p*n+c]
			}
			perm[p], perm[col] = perm[col], perm[p]
		}
		for r = col + 1; r < n; r++ {
			f = lu[r*n+col] / lu[col*n+col]
			lu[r*n+col] = f
			if f == 0 {
				continue
			}
			for c = col + 1; c < n; c++ {
				lu[r*n+c] -= f * lu[col*n+c]
			}
		}
	}

	return &LUFactors{n: n, lu: lu, perm: perm}, nil
}

// Solve solves A·x = b using the stored factors (forward then back substitution).
// Errors: ErrDimensionMismatch when len(b) != n.
// Complexity: O(n²).
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.n

	// Forward substitution: L·y = P·b.
	y := make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		sum = b[f.perm[i]]
		for j := 0; j < i; j++ {
			sum -= f.lu[i*n+j] * y[j]
		}
		y[i] = sum
	}

	// Back substitution: U·x = y.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum = y[i]
		for j := i + 1; j < n; j++ {
			sum -= f.lu[i*n+j] * x[j]
		}
		x[i] = sum / f.lu[i*n+i]
	}

	return x, nil
}

// Solve solves the square system a·x = b via LU with partial pivoting.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, ErrNaNInf from LU.
//   - ErrDimensionMismatch when len(b) != a.Rows().
//
// Complexity: O(n³).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

package table

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/taylortable/matrix"
)

// Solve reduces the system to its largest solvable leading block and returns
// the weights together with the full-depth residual.
//
// Algorithm:
//  1. u = 0: the residual is −b; the Result is returned with ErrEmptyUnknownSet.
//  2. For k = min(u, Depth+1) down to 1, solve the leading k×k block of A
//     against b[:k] (matrix.Solve, partial pivoting). The first non-singular
//     block wins; unknowns k..u−1 are dropped.
//  3. Residual A·x − b over all Depth+1 rows with x zero-padded.
//
// Errors:
//   - ErrEmptyUnknownSet (with a non-nil Result).
//   - ErrUnsolvableSystem when every leading block is singular.
//   - matrix errors other than ErrSingular are returned wrapped.
//
// Complexity: O(Σ_k k³) ≤ O(u⁴) in the worst case, O(u³) when the full block solves.
func Solve(s *System, opts ...Option) (*Result, error) {
	return solve(gatherOptions(opts...), s)
}

func solve(o Options, s *System) (*Result, error) {
	if s == nil || s.A == nil {
		return nil, fmt.Errorf("Solve: %w", matrix.ErrNilMatrix)
	}
	u := s.NumUnknowns()
	rows := s.A.Rows()

	// Stage 1: degenerate system.
	if u == 0 {
		residual := make([]float64, rows)
		for i, b := range s.B {
			residual[i] = -b
		}

		return &Result{Weights: []float64{}, Error: residual, Solution: []Coefficient{}}, ErrEmptyUnknownSet
	}

	// Stage 2: truncation search.
	var (
		x   []float64
		k   int
		err error
	)
	for k = min(u, rows); k >= 1; k-- {
		sub, lerr := matrix.Leading(s.A, k, k)
		if lerr != nil {
			return nil, fmt.Errorf("Solve: %w", lerr)
		}
		x, err = matrix.Solve(sub, s.B[:k], matrix.WithEpsilon(o.eps))
		if err == nil {
			break
		}
		if !errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("Solve(k=%d): %w", k, err)
		}
		o.logger.Debug("leading block singular", slog.Int("k", k))
	}
	if k == 0 {
		return nil, fmt.Errorf("Solve: %d unknowns, depth %d: %w", u, s.Depth, ErrUnsolvableSystem)
	}

	// Stage 3: residual over the full depth.
	weights := make([]float64, u)
	copy(weights, x)
	ax, err := matrix.MatVec(s.A, weights)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	for i := range ax {
		ax[i] -= s.B[i]
	}

	res := &Result{
		Solution: make([]Coefficient, k),
		Dropped:  append([]Term(nil), s.Unknowns[k:]...),
		Weights:  weights,
		Error:    ax,
		K:        k,
	}
	for j := 0; j < k; j++ {
		res.Solution[j] = Coefficient{Term: s.Unknowns[j], Value: x[j]}
	}
	o.logger.Debug("system solved", slog.Int("k", k), slog.Int("dropped", len(res.Dropped)))

	return res, nil
}

package table

import (
	"math"

	"github.com/katalvlaran/taylortable/expansion"
	"github.com/katalvlaran/taylortable/matrix"
)

// Term is expansion.Term: a (derivative order, grid offset) pair.
type Term = expansion.Term

// InfiniteOrder is reported when no residual entry survives rounding: the
// scheme is exact up to the tested depth.
const InfiniteOrder = math.MaxInt

// System is the assembled Taylor table.
//
// Layout:
//   - Unknowns lists the unknown terms in column order (flattened groups,
//     reversed when WithBackwards(true)).
//   - Rows[j] is the exact Taylor row of Unknowns[j]; TargetRow that of Target.
//   - A is (Depth+1)×len(Unknowns) with A[i][j] = Rows[j][i] as float64;
//     B[i] = TargetRow[i]. Solve works on A·x = B.
//
// The printed Taylor table moves every unknown to the target's side, so its
// cells show −Rows[j][i]; see Display.
type System struct {
	Target    Term
	Unknowns  []Term
	Depth     int
	TargetRow expansion.Row
	Rows      []expansion.Row
	A         *matrix.Dense
	B         []float64
}

// NumUnknowns returns u, the number of unknown columns.
func (s *System) NumUnknowns() int { return len(s.Unknowns) }

// Display returns the table row of unknown j as printed: the negated exact
// Taylor coefficients.
func (s *System) Display(j int) expansion.Row {
	return s.Rows[j].Neg()
}

// Coefficient is one solved weight, aligned with a surviving unknown term.
type Coefficient struct {
	Term  Term
	Value float64
}

// Result is the outcome of Solve.
type Result struct {
	// Solution holds the weights of the first K unknowns, in column order.
	Solution []Coefficient
	// Dropped lists the unknowns beyond K; they are unconstrained and take no
	// part in the residual.
	Dropped []Term
	// Weights is the Solution zero-padded to all unknowns (column order).
	Weights []float64
	// Error is A·x − b over all Depth+1 powers of h.
	Error []float64
	// K is the size of the leading block that was solved (0 when u = 0).
	K int
}

// Analysis is the outcome of Analyze.
type Analysis struct {
	// Power is the index of the first residual entry that is nonzero after
	// rounding, or -1 when Exact.
	Power int
	// Residual is the unrounded residual at Power.
	Residual float64
	// Coefficient is the leading truncation-error coefficient, −Residual:
	// target = scheme + Coefficient·h^Power·u^(Power) + O(h^(Power+1)).
	Coefficient float64
	// Order is Power − base, or InfiniteOrder when Exact.
	Order int
	// Exact reports that every residual entry rounds to zero.
	Exact bool
}

// Mode selects the convention applied on top of the shared pipeline.
type Mode int

const (
	// Stencil derives finite-difference weights; order = power − P.
	Stencil Mode = iota

	// Marching analyzes time-marching formulas around u_n (P = 0); the local
	// error is O(h^power) and the global order is power − 1.
	Marching
)

// String returns "stencil" or "marching".
func (m Mode) String() string {
	switch m {
	case Stencil:
		return "stencil"
	case Marching:
		return "marching"
	default:
		return "unknown"
	}
}

// IndexName is the grid index used when printing terms: j for space, n for time.
func (m Mode) IndexName() string {
	if m == Marching {
		return "n"
	}

	return "j"
}

// StepName is the step-size symbol used when printing: dx or h.
func (m Mode) StepName() string {
	if m == Marching {
		return "h"
	}

	return "dx"
}

// DefaultBackwards mirrors the historical presets: stencils lay out groups
// highest derivative first, marching schemes in supplied order.
func (m Mode) DefaultBackwards() bool {
	return m == Stencil
}

// base returns the offset subtracted from the leading power to get Order.
func (m Mode) base(target Term) int {
	if m == Marching {
		return 1
	}

	return target.Derivative
}

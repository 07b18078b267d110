package table

import (
	"errors"
	"fmt"
	"log/slog"
)

// Derivation bundles every artifact of one build → solve → analyze run.
type Derivation struct {
	Mode     Mode
	System   *System
	Result   *Result
	Analysis Analysis
}

// Order is the consistency order for stencils and the global order for
// marching schemes (InfiniteOrder when exact to the tested depth).
func (d *Derivation) Order() int { return d.Analysis.Order }

// LocalOrder is the power of the local (per-step) truncation error, h^Power.
// For stencils it equals Order.
func (d *Derivation) LocalOrder() int {
	if d.Mode != Marching || d.Analysis.Exact {
		return d.Analysis.Order
	}

	return d.Analysis.Power
}

// GlobalOrder is the accumulated error order over a fixed interval, one power
// below the local error for marching schemes. For stencils it equals Order.
func (d *Derivation) GlobalOrder() int { return d.Analysis.Order }

// Coefficients maps each solved term to its weight. Terms supplied more than
// once collapse to the first occurrence; use Result.Solution for the full,
// ordered list.
func (d *Derivation) Coefficients() map[Term]float64 {
	out := make(map[Term]float64, len(d.Result.Solution))
	for _, c := range d.Result.Solution {
		if _, seen := out[c.Term]; !seen {
			out[c.Term] = c.Value
		}
	}

	return out
}

// Derive runs the shared pipeline for mode.
//
// When WithBackwards is not supplied, mode.DefaultBackwards() applies.
// For an empty unknown set the Derivation is still returned, alongside
// ErrEmptyUnknownSet; every other error returns a nil Derivation.
func Derive(mode Mode, target Term, groups [][]int, depth int, opts ...Option) (*Derivation, error) {
	o := gatherOptions(opts...)
	if !o.backwardsSet {
		o.backwards = mode.DefaultBackwards()
	}
	if mode != Stencil && mode != Marching {
		return nil, fmt.Errorf("Derive(%d): %w", mode, ErrInvalidMode)
	}

	sys, err := build(o, target, groups, depth)
	if err != nil {
		return nil, err
	}
	res, err := solve(o, sys)
	if err != nil && !errors.Is(err, ErrEmptyUnknownSet) {
		return nil, err
	}

	d := &Derivation{
		Mode:     mode,
		System:   sys,
		Result:   res,
		Analysis: analyze(o, res.Error, mode.base(target)),
	}
	o.logger.Debug("derivation complete",
		slog.String("mode", mode.String()),
		slog.Int("power", d.Analysis.Power),
		slog.Bool("exact", d.Analysis.Exact))

	return d, err
}

// DeriveStencil derives finite-difference weights for h^P·u^(P)_{j+K}.
// Unknown groups are indexed by derivative order; see Build.
func DeriveStencil(p, k int, groups [][]int, depth int, opts ...Option) (*Derivation, error) {
	return Derive(Stencil, Term{Derivative: p, Offset: k}, groups, depth, opts...)
}

// DeriveMarchingScheme analyzes a time-marching formula for u_{n+K}, e.g.
// [][]int{{0}, {0}} for explicit Euler u_{n+1} = u_n + h·u'_n.
func DeriveMarchingScheme(k int, groups [][]int, depth int, opts ...Option) (*Derivation, error) {
	return Derive(Marching, Term{Derivative: 0, Offset: k}, groups, depth, opts...)
}

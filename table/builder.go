package table

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/taylortable/expansion"
	"github.com/katalvlaran/taylortable/matrix"
)

// Build assembles the Taylor table for target and the unknown groups.
//
// groups[p] lists the grid offsets of the unknown terms with derivative order
// p; an empty group means the scheme has no terms of that order. Columns are
// laid out group by group (reversed under WithBackwards(true)), offsets in
// supplied order. Duplicate unknowns are kept; they make the system singular
// and are resolved by Solve's truncation.
//
// Errors (checked before any expansion work):
//   - ErrInvalidDepth  for depth < 0.
//   - ErrInvalidTerm   for a negative target derivative, a target derivative
//     above depth (its row would be all zeros), or an unknown equal to the target.
//
// u = 0 is accepted and yields a System with zero columns; u > depth+1 is
// accepted and resolved by truncation.
//
// Complexity: O((u+1)·depth) big-integer operations plus O(depth·u) floats.
func Build(target Term, groups [][]int, depth int, opts ...Option) (*System, error) {
	return build(gatherOptions(opts...), target, groups, depth)
}

func build(o Options, target Term, groups [][]int, depth int) (*System, error) {
	// Stage 1: validate.
	if depth < 0 {
		return nil, fmt.Errorf("Build(depth=%d): %w", depth, ErrInvalidDepth)
	}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("Build: target %w", err)
	}
	if target.Derivative > depth {
		return nil, fmt.Errorf("Build: target %s has no coefficient up to h^%d: %w", target, depth, ErrInvalidTerm)
	}
	unknowns := flatten(groups, o.backwards)
	for _, t := range unknowns {
		if t == target {
			return nil, fmt.Errorf("Build: target %s listed as unknown: %w", target, ErrInvalidTerm)
		}
	}

	// Stage 2: expand the target (vector b).
	targetRow, err := expansion.Expand(target, depth)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	// Stage 3: expand every unknown (columns of A).
	rows := make([]expansion.Row, len(unknowns))
	for j, t := range unknowns {
		if rows[j], err = expansion.Expand(t, depth); err != nil {
			return nil, fmt.Errorf("Build: unknown %d: %w", j, err)
		}
	}

	a, err := matrix.NewDense(depth+1, len(unknowns))
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for j, row := range rows {
		for i, c := range row {
			if err = a.Set(i, j, c.Float64()); err != nil {
				return nil, fmt.Errorf("Build: %w", err)
			}
		}
	}

	o.logger.Debug("taylor table built",
		slog.String("target", target.String()),
		slog.Int("unknowns", len(unknowns)),
		slog.Int("depth", depth),
		slog.Bool("backwards", o.backwards))

	return &System{
		Target:    target,
		Unknowns:  unknowns,
		Depth:     depth,
		TargetRow: targetRow,
		Rows:      rows,
		A:         a,
		B:         targetRow.Floats(),
	}, nil
}

// flatten turns groups into the column-ordered term list.
func flatten(groups [][]int, backwards bool) []Term {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]Term, 0, n)
	for i := range groups {
		p := i
		if backwards {
			p = len(groups) - 1 - i
		}
		for _, k := range groups[p] {
			out = append(out, Term{Derivative: p, Offset: k})
		}
	}

	return out
}

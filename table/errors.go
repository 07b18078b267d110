package table

import (
	"errors"

	"github.com/katalvlaran/taylortable/expansion"
)

var (
	// ErrUnsolvableSystem indicates that no leading k×k block (k ≥ 1) of the
	// Taylor system is non-singular.
	ErrUnsolvableSystem = errors.New("table: no truncation level yields a solvable system")

	// ErrEmptyUnknownSet flags a scheme without unknown terms. Solve and Derive
	// still return a result (error vector −b) alongside it.
	ErrEmptyUnknownSet = errors.New("table: no unknown terms")

	// ErrInvalidTerm is expansion.ErrInvalidTerm; Build also returns it when the
	// target cannot be represented at the requested depth or appears among
	// the unknowns.
	ErrInvalidTerm = expansion.ErrInvalidTerm

	// ErrInvalidMode indicates a Mode other than Stencil or Marching.
	ErrInvalidMode = errors.New("table: invalid mode")

	// ErrInvalidDepth is expansion.ErrInvalidDepth.
	ErrInvalidDepth = expansion.ErrInvalidDepth
)

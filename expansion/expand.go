package expansion

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/taylortable/fraction"
)

// Expand returns the Taylor row of t up to h^depth (length depth+1).
//
// Algorithm:
//  1. Positions 0..p−1 are zero: h^p·u^(p) carries no lower powers.
//  2. For i = 0..depth−p, position i+p holds k^i / i!, built incrementally
//     (pow ← pow·k, fact ← fact·i) and reduced by fraction.NewBig.
//
// Errors:
//   - ErrInvalidTerm  if t.Derivative < 0.
//   - ErrInvalidDepth if depth < 0.
//
// Complexity: O(depth) big-integer multiplications; exact for any depth.
func Expand(t Term, depth int) (Row, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("Expand: %w", err)
	}
	if depth < 0 {
		return nil, fmt.Errorf("Expand(depth=%d): %w", depth, ErrInvalidDepth)
	}

	row := make(Row, depth+1)
	for j := 0; j < t.Derivative && j <= depth; j++ {
		row[j] = fraction.Zero()
	}

	var (
		k    = big.NewInt(int64(t.Offset))
		pow  = big.NewInt(1) // k^i
		fact = big.NewInt(1) // i!
		err  error
	)
	for i := 0; i+t.Derivative <= depth; i++ {
		if i > 0 {
			pow.Mul(pow, k)
			fact.Mul(fact, big.NewInt(int64(i)))
		}
		// fact >= 1
		if row[i+t.Derivative], err = fraction.NewBig(pow, fact); err != nil {
			return nil, fmt.Errorf("Expand(%s): %w", t, err)
		}
	}

	return row, nil
}

// MustExpand is Expand for inputs known to be valid; it panics otherwise.
func MustExpand(t Term, depth int) Row {
	row, err := Expand(t, depth)
	if err != nil {
		panic(err)
	}

	return row
}

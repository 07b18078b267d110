package expansion

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/taylortable/fraction"
)

// Term is one (derivative order, grid offset) pair of a scheme.
// Derivative must be ≥ 0; Offset may be any integer.
type Term struct {
	Derivative int // p: order of the derivative of u
	Offset     int // k: grid displacement from the reference index
}

// Validate returns ErrInvalidTerm for a negative derivative order.
func (t Term) Validate() error {
	if t.Derivative < 0 {
		return fmt.Errorf("%s: %w", t, ErrInvalidTerm)
	}

	return nil
}

// String renders the term in grid notation with index variable j:
// u_{j}, u'_{j+1}, u''_{j-2}, u^(3)_{j}.
func (t Term) String() string {
	return t.Format("j")
}

// Format renders the term using idx as the grid index name ("j" for space,
// "n" for time levels).
func (t Term) Format(idx string) string {
	var sb strings.Builder
	sb.WriteString("u")
	switch {
	case t.Derivative < 0:
		fmt.Fprintf(&sb, "^(%d)", t.Derivative)
	case t.Derivative <= 2:
		sb.WriteString(strings.Repeat("'", t.Derivative))
	default:
		fmt.Fprintf(&sb, "^(%d)", t.Derivative)
	}
	sb.WriteString("_{")
	sb.WriteString(idx)
	switch {
	case t.Offset > 0:
		fmt.Fprintf(&sb, "+%d", t.Offset)
	case t.Offset < 0:
		fmt.Fprintf(&sb, "%d", t.Offset)
	}
	sb.WriteString("}")

	return sb.String()
}

// Row holds the exact coefficients of h^0 .. h^depth for one Term.
type Row []fraction.Fraction

// Depth returns the highest power of h represented by the row.
func (r Row) Depth() int { return len(r) - 1 }

// Floats converts the row to float64, entry by entry.
func (r Row) Floats() []float64 {
	out := make([]float64, len(r))
	for i, f := range r {
		out[i] = f.Float64()
	}

	return out
}

// Neg returns a new row with every entry negated.
func (r Row) Neg() Row {
	out := make(Row, len(r))
	for i, f := range r {
		out[i] = f.Neg()
	}

	return out
}

// Scale returns a new row with every entry multiplied by c.
func (r Row) Scale(c fraction.Fraction) Row {
	out := make(Row, len(r))
	for i, f := range r {
		out[i] = f.Mul(c)
	}

	return out
}

// Strings renders each entry with fraction.Fraction.String.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, f := range r {
		out[i] = f.String()
	}

	return out
}

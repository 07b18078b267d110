// SPDX-License-Identifier: MIT

package fraction

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Fraction is an exact rational number num/den.
//
// Invariants (held by every constructor and every operation result):
//   - den > 0; the sign lives on num.
//   - gcd(|num|, den) = 1.
//   - the zero value is 0/1.
//
// The big.Int pointers are never shared with callers and never mutated after
// construction, so a Fraction may be copied and used from any goroutine.
type Fraction struct {
	num *big.Int // signed numerator
	den *big.Int // positive denominator
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// New builds num/den in lowest terms.
// Returns ErrDivisionByZero when den == 0.
// Complexity: O(1) for int64 inputs (single gcd on two words).
func New(num, den int64) (Fraction, error) {
	return NewBig(big.NewInt(num), big.NewInt(den))
}

// NewBig builds num/den from arbitrary-precision integers.
// The arguments are copied; a nil num is treated as 0, a nil den as 0
// (and therefore rejected with ErrDivisionByZero).
func NewBig(num, den *big.Int) (Fraction, error) {
	if den == nil || den.Sign() == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	if num == nil {
		num = bigZero
	}

	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// MustNew is New for constant inputs; it panics on a zero denominator.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("fraction.MustNew(%d, %d): %v", num, den, err))
	}

	return f
}

// FromInt returns n/1.
func FromInt(n int64) Fraction {
	return Fraction{num: big.NewInt(n), den: big.NewInt(1)}
}

// Zero returns 0/1.
func Zero() Fraction { return FromInt(0) }

// One returns 1/1.
func One() Fraction { return FromInt(1) }

// reduce normalizes sign and divides out the gcd. It takes ownership of
// num and den (both freshly allocated by the caller) and requires den != 0.
func reduce(num, den *big.Int) Fraction {
	// Stage 1: canonical sign, den > 0.
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	// Stage 2: zero has a single representation.
	if num.Sign() == 0 {
		return Fraction{num: num, den: den.SetInt64(1)}
	}
	// Stage 3: divide by gcd(|num|, den).
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(bigOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	return Fraction{num: num, den: den}
}

// parts returns the numerator and denominator, mapping the zero value to 0/1.
func (f Fraction) parts() (*big.Int, *big.Int) {
	if f.den == nil {
		return bigZero, bigOne
	}

	return f.num, f.den
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int {
	n, _ := f.parts()

	return new(big.Int).Set(n)
}

// Den returns a copy of the (positive) denominator.
func (f Fraction) Den() *big.Int {
	_, d := f.parts()

	return new(big.Int).Set(d)
}

// Add returns f + g in lowest terms.
// a/b + c/d = (a·d + c·b) / (b·d).
func (f Fraction) Add(g Fraction) Fraction {
	a, b := f.parts()
	c, d := g.parts()

	num := new(big.Int).Mul(a, d)
	num.Add(num, new(big.Int).Mul(c, b))

	return reduce(num, new(big.Int).Mul(b, d))
}

// Sub returns f − g in lowest terms.
func (f Fraction) Sub(g Fraction) Fraction {
	return f.Add(g.Neg())
}

// Mul returns f · g in lowest terms.
func (f Fraction) Mul(g Fraction) Fraction {
	a, b := f.parts()
	c, d := g.parts()

	return reduce(new(big.Int).Mul(a, c), new(big.Int).Mul(b, d))
}

// Div returns f / g, or ErrDivisionByZero when g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}
	a, b := f.parts()
	c, d := g.parts()

	return reduce(new(big.Int).Mul(a, d), new(big.Int).Mul(b, c)), nil
}

// Neg returns −f.
func (f Fraction) Neg() Fraction {
	a, b := f.parts()

	return Fraction{num: new(big.Int).Neg(a), den: new(big.Int).Set(b)}
}

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int {
	a, _ := f.parts()

	return a.Sign()
}

// IsZero reports whether f == 0.
func (f Fraction) IsZero() bool { return f.Sign() == 0 }

// Cmp compares f and g and returns -1, 0 or +1.
func (f Fraction) Cmp(g Fraction) int {
	a, b := f.parts()
	c, d := g.parts()

	return new(big.Int).Mul(a, d).Cmp(new(big.Int).Mul(c, b))
}

// Equal reports whether f and g denote the same rational. Since both sides are
// reduced this is a component-wise comparison.
func (f Fraction) Equal(g Fraction) bool {
	a, b := f.parts()
	c, d := g.parts()

	return a.Cmp(c) == 0 && b.Cmp(d) == 0
}

// Float64 returns the nearest float64 to f.
func (f Fraction) Float64() float64 {
	a, b := f.parts()
	v, _ := new(big.Rat).SetFrac(a, b).Float64()

	return v
}

// String renders "n" for integers and "n/d" otherwise.
func (f Fraction) String() string {
	a, b := f.parts()
	if b.Cmp(bigOne) == 0 {
		return a.String()
	}

	return a.String() + "/" + b.String()
}

// Parse reads "n" or "n/d" (surrounding spaces allowed).
// Returns ErrSyntax on malformed input and ErrDivisionByZero for "n/0".
func Parse(s string) (Fraction, error) {
	numStr, denStr, hasDen := strings.Cut(strings.TrimSpace(s), "/")
	num, ok := new(big.Int).SetString(strings.TrimSpace(numStr), 10)
	if !ok {
		return Fraction{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	den := big.NewInt(1)
	if hasDen {
		if den, ok = new(big.Int).SetString(strings.TrimSpace(denStr), 10); !ok {
			return Fraction{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
		}
	}

	f, err := NewBig(num, den)
	if err != nil {
		return Fraction{}, fmt.Errorf("Parse(%q): %w", s, err)
	}

	return f, nil
}

// maxExactInt is the largest magnitude below which every integer is a float64.
const maxExactInt = 1 << 53

// Approximate returns the continued-fraction convergent of x with the largest
// denominator ≤ maxDen, stopping early once |x − p/q| ≤ tol.
//
// Implementation:
//   - Stage 1: validate inputs; |x| ≥ 2^53 is already an integer and is returned exactly.
//   - Stage 2: expand x = a0 + 1/(a1 + 1/(a2 + ...)), tracking convergents
//     h_n = a_n·h_{n−1} + h_{n−2}, k_n = a_n·k_{n−1} + k_{n−2}.
//   - Stage 3: stop when k_n would exceed maxDen, the tolerance is met, or the
//     expansion terminates.
//
// Errors:
//   - ErrNotFinite for NaN/±Inf x.
//   - ErrBadBound for maxDen < 1, or tol negative/NaN.
//
// Complexity: O(log maxDen) iterations.
func Approximate(x float64, maxDen int64, tol float64) (Fraction, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Fraction{}, ErrNotFinite
	}
	if maxDen < 1 || tol < 0 || math.IsNaN(tol) {
		return Fraction{}, ErrBadBound
	}
	if math.Abs(x) >= maxExactInt {
		r := new(big.Rat).SetFloat64(x)

		return NewBig(r.Num(), r.Denom())
	}

	var (
		h0, h1 int64 = 0, 1 // h_{n-2}, h_{n-1}
		k0, k1 int64 = 1, 0 // k_{n-2}, k_{n-1}
		r            = x
	)
	for step := 0; step < 64; step++ {
		a := math.Floor(r)
		// guard int64 overflow of a·h1 + h0
		if math.Abs(a)*math.Abs(float64(h1))+math.Abs(float64(h0)) >= math.MaxInt64/2 {
			break
		}
		ai := int64(a)
		h2, k2 := ai*h1+h0, ai*k1+k0
		if k2 > maxDen {
			break
		}
		h0, h1, k0, k1 = h1, h2, k1, k2
		if math.Abs(x-float64(h1)/float64(k1)) <= tol {
			break
		}
		rem := r - a
		if rem == 0 {
			break
		}
		r = 1 / rem
	}

	return New(h1, k1)
}

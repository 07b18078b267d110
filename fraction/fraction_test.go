package fraction_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/taylortable/fraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ZeroDenominator verifies that a zero denominator is rejected.
func TestNew_ZeroDenominator(t *testing.T) {
	_, err := fraction.New(3, 0)
	assert.ErrorIs(t, err, fraction.ErrDivisionByZero, "den=0 must fail")

	_, err = fraction.NewBig(big.NewInt(1), nil)
	assert.ErrorIs(t, err, fraction.ErrDivisionByZero, "nil den must fail")
}

// TestNew_Reduction checks gcd reduction and sign normalization.
func TestNew_Reduction(t *testing.T) {
	cases := []struct {
		num, den int64
		want     string
	}{
		{6, -4, "-3/2"},
		{-6, -4, "3/2"},
		{0, -7, "0"},
		{12, 4, "3"},
		{-8, 12, "-2/3"},
		{1, 1, "1"},
	}
	for _, tc := range cases {
		f, err := fraction.New(tc.num, tc.den)
		require.NoError(t, err)
		assert.Equal(t, tc.want, f.String(), "New(%d,%d)", tc.num, tc.den)
		assert.Equal(t, 1, f.Den().Sign(), "denominator must be positive")
		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(f.Num()), f.Den())
		assert.Equal(t, int64(1), g.Int64(), "gcd(|num|,den) must be 1 for %s", f)
	}
}

// TestNew_ScaledEqual checks New(a,b) == New(a·m, b·m) for nonzero m.
func TestNew_ScaledEqual(t *testing.T) {
	base := fraction.MustNew(5, 7)
	for _, m := range []int64{-9, -1, 2, 3, 1000} {
		scaled := fraction.MustNew(5*m, 7*m)
		assert.True(t, base.Equal(scaled), "5/7 vs (5·%d)/(7·%d) = %s", m, m, scaled)
	}
}

// TestReduce_Idempotent rebuilds a reduced fraction from its own parts.
func TestReduce_Idempotent(t *testing.T) {
	f := fraction.MustNew(-42, 56)
	again, err := fraction.NewBig(f.Num(), f.Den())
	require.NoError(t, err)
	assert.True(t, f.Equal(again))
	assert.Equal(t, f.String(), again.String())
}

// TestArithmetic covers Add, Sub, Mul, Div and Neg.
func TestArithmetic(t *testing.T) {
	a := fraction.MustNew(1, 12)
	b := fraction.MustNew(-8, 12)

	assert.Equal(t, "-7/12", a.Add(b).String())
	assert.Equal(t, "3/4", a.Sub(b).String())
	assert.Equal(t, "-1/18", a.Mul(b).String())

	q, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, "-1/8", q.String())

	_, err = a.Div(fraction.Zero())
	assert.ErrorIs(t, err, fraction.ErrDivisionByZero)

	assert.Equal(t, "-1/12", a.Neg().String())
	assert.Equal(t, "1/12", a.String(), "operations must not mutate the receiver")
}

// TestZeroValue ensures the zero Fraction behaves as 0/1.
func TestZeroValue(t *testing.T) {
	var z fraction.Fraction
	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.String())
	assert.Equal(t, 0.0, z.Float64())
	assert.True(t, z.Add(fraction.One()).Equal(fraction.One()))
	assert.True(t, z.Equal(fraction.Zero()))
}

// TestCmpAndFloat checks ordering and float conversion.
func TestCmpAndFloat(t *testing.T) {
	third := fraction.MustNew(1, 3)
	half := fraction.MustNew(1, 2)
	assert.Equal(t, -1, third.Cmp(half))
	assert.Equal(t, 1, half.Cmp(third))
	assert.Equal(t, 0, half.Cmp(fraction.MustNew(2, 4)))
	assert.InDelta(t, 1.0/3, third.Float64(), 1e-16)
	assert.Equal(t, -1, third.Neg().Sign())
}

// TestParse covers accepted and rejected inputs.
func TestParse(t *testing.T) {
	f, err := fraction.Parse(" -4/6 ")
	require.NoError(t, err)
	assert.Equal(t, "-2/3", f.String())

	f, err = fraction.Parse("17")
	require.NoError(t, err)
	assert.Equal(t, "17", f.String())

	_, err = fraction.Parse("1/x")
	assert.ErrorIs(t, err, fraction.ErrSyntax)
	_, err = fraction.Parse("")
	assert.ErrorIs(t, err, fraction.ErrSyntax)
	_, err = fraction.Parse("3/0")
	assert.ErrorIs(t, err, fraction.ErrDivisionByZero)
}

// TestApproximate recovers small fractions from float round-off.
func TestApproximate(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{-2.0 / 3, "-2/3"},
		{1.0 / 12, "1/12"},
		{0.5, "1/2"},
		{-1.0 / 30, "-1/30"},
		{3, "3"},
		{0, "0"},
		{8.0/12 + 1e-13, "2/3"},
	}
	for _, tc := range cases {
		f, err := fraction.Approximate(tc.x, 1_000_000, 1e-9)
		require.NoError(t, err)
		assert.Equal(t, tc.want, f.String(), "Approximate(%v)", tc.x)
	}

	// denominator bound caps precision
	f, err := fraction.Approximate(math.Pi, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, "22/7", f.String())
}

// TestApproximate_Errors checks rejected inputs.
func TestApproximate_Errors(t *testing.T) {
	_, err := fraction.Approximate(math.NaN(), 10, 0)
	assert.ErrorIs(t, err, fraction.ErrNotFinite)
	_, err = fraction.Approximate(math.Inf(-1), 10, 0)
	assert.ErrorIs(t, err, fraction.ErrNotFinite)
	_, err = fraction.Approximate(1, 0, 0)
	assert.ErrorIs(t, err, fraction.ErrBadBound)
	_, err = fraction.Approximate(1, 10, -1)
	assert.ErrorIs(t, err, fraction.ErrBadBound)
}

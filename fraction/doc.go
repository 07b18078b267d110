// Package fraction implements ExactFraction, a small exact-rational value
// type used for every Taylor coefficient in the taylortable engine.
//
// 🚀 What is a Fraction?
//
//	A Fraction is num/den over arbitrary-precision integers, always stored
//	in lowest terms with den > 0 and the sign carried by num:
//	  • New(6, -4)   → -3/2
//	  • New(0, 7)    → 0/1
//	  • New(1, 0)    → ErrDivisionByZero
//
// ✨ Key features:
//   - gcd reduction on every construction, so equality is structural
//   - value semantics: no method mutates its receiver or its arguments
//   - Float64 conversion exact up to float64 precision
//   - Approximate recovers a small fraction from a float (continued fractions),
//     used to print solved float coefficients as 1/12, -2/3, ...
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/taylortable/fraction"
//
//	a, _ := fraction.New(1, 12)
//	b, _ := fraction.New(-8, 12)
//	sum := a.Add(b)          // -7/12
//	f := sum.Float64()       // -0.58333...
//
// Performance:
//
//   - Add/Sub/Mul/Div: O(M(n)·log n) for n-bit operands (big.Int gcd).
//   - Memory: two big.Int per value.
package fraction

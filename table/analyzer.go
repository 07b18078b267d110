package table

import "math"

// Analyze locates the leading truncation error in the residual e.
//
// Each entry is rounded to the configured number of decimals
// (DefaultPrecision, see WithPrecision) before being compared with zero, so
// round-off from the float solve does not register as error. The first
// surviving index is the leading power of h; Order = Power − base.
// With no surviving entry the Analysis is Exact and Order is InfiniteOrder.
//
// Complexity: O(len(e)).
func Analyze(e []float64, base int, opts ...Option) Analysis {
	return analyze(gatherOptions(opts...), e, base)
}

func analyze(o Options, e []float64, base int) Analysis {
	for i, v := range e {
		if round(v, o.precision) == 0 {
			continue
		}

		return Analysis{
			Power:       i,
			Residual:    v,
			Coefficient: -v,
			Order:       i - base,
		}
	}

	return Analysis{Power: -1, Order: InfiniteOrder, Exact: true}
}

// round rounds v half away from zero to n decimals.
func round(v float64, n int) float64 {
	scale := math.Pow10(n)

	return math.Round(v*scale) / scale
}

package render

import "github.com/katalvlaran/taylortable/table"

// DefaultMaxDenominator bounds the fractions shown next to solved weights.
const DefaultMaxDenominator = 100_000

// Option configures rendering.
type Option func(*Options)

// Options is the resolved rendering configuration.
type Options struct {
	precision int
	maxDen    int64
}

// WithPrecision sets the decimals used for residuals and the tolerance used
// when matching weights to fractions.
func WithPrecision(n int) Option {
	return func(o *Options) {
		if n >= 0 && n <= table.MaxPrecision {
			o.precision = n
		}
	}
}

// WithMaxDenominator bounds displayed fractions; values < 1 are ignored.
func WithMaxDenominator(n int64) Option {
	return func(o *Options) {
		if n >= 1 {
			o.maxDen = n
		}
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{precision: table.DefaultPrecision, maxDen: DefaultMaxDenominator}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

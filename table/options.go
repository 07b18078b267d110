package table

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/taylortable/matrix"
)

// Defaults (single source of truth).
const (
	// DefaultDepth is the highest power of h retained when callers have no
	// preference.
	DefaultDepth = 5

	// DefaultPrecision is the number of decimals residual entries are rounded
	// to before being compared with zero (a tolerance of 1e-6).
	DefaultPrecision = 6

	// MaxPrecision caps WithPrecision; float64 carries ~15-17 significant digits.
	MaxPrecision = 15

	// DefaultEpsilon is the relative pivot tolerance handed to matrix.Solve.
	DefaultEpsilon = matrix.DefaultEpsilon
)

// Option configures Build, Solve, Analyze and Derive.
type Option func(*Options)

// Options is the resolved configuration. Fields are read through methods.
type Options struct {
	backwards    bool
	backwardsSet bool
	precision    int
	eps          float64
	logger       *slog.Logger
}

// WithBackwards reverses the order in which unknown groups are laid out as
// columns (highest derivative order first). Offsets inside a group keep their
// order. Column order decides which unknowns survive truncation.
func WithBackwards(on bool) Option {
	return func(o *Options) {
		o.backwards = on
		o.backwardsSet = true
	}
}

// WithPrecision sets the number of decimals used by Analyze.
// Panics for n outside [0, MaxPrecision].
func WithPrecision(n int) Option {
	if n < 0 || n > MaxPrecision {
		panic(fmt.Sprintf("table: WithPrecision: %d outside [0, %d]", n, MaxPrecision))
	}

	return func(o *Options) { o.precision = n }
}

// WithEpsilon sets the relative pivot tolerance used by Solve.
// Panics on negative or non-finite eps (see matrix.WithEpsilon).
func WithEpsilon(eps float64) Option {
	matrix.WithEpsilon(eps) // validates

	return func(o *Options) { o.eps = eps }
}

// WithLogger routes debug traces (truncation attempts, chosen k) to l.
// A nil logger restores the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// Backwards reports the effective column-order flag.
func (o Options) Backwards() bool { return o.backwards }

// Precision reports the effective rounding precision.
func (o Options) Precision() int { return o.precision }

// Epsilon reports the effective pivot tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		precision: DefaultPrecision,
		eps:       DefaultEpsilon,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}

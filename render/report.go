package render

import (
	"math"

	"github.com/katalvlaran/taylortable/fraction"
	"github.com/katalvlaran/taylortable/table"
)

// CoefficientReport is one solved weight.
type CoefficientReport struct {
	Term     string  `json:"term" yaml:"term"`
	Value    float64 `json:"value" yaml:"value"`
	Fraction string  `json:"fraction,omitempty" yaml:"fraction,omitempty"`
}

// Report is the serializable summary of a derivation.
type Report struct {
	Name        string              `json:"name,omitempty" yaml:"name,omitempty"`
	Mode        string              `json:"mode" yaml:"mode"`
	Target      string              `json:"target" yaml:"target"`
	Depth       int                 `json:"depth" yaml:"depth"`
	Unknowns    []string            `json:"unknowns" yaml:"unknowns"`
	Solution    []CoefficientReport `json:"solution" yaml:"solution"`
	Dropped     []string            `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	Error       []float64           `json:"error" yaml:"error"`
	Exact       bool                `json:"exact" yaml:"exact"`
	Power       *int                `json:"leading_power,omitempty" yaml:"leading_power,omitempty"`
	Coefficient *float64            `json:"leading_coefficient,omitempty" yaml:"leading_coefficient,omitempty"`
	Order       *int                `json:"order,omitempty" yaml:"order,omitempty"`
	LocalOrder  *int                `json:"local_order,omitempty" yaml:"local_order,omitempty"`
	GlobalOrder *int                `json:"global_order,omitempty" yaml:"global_order,omitempty"`
	Warning     string              `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// NewReport summarizes d. Residual entries are rounded to the configured
// precision, weights get a fraction when one within the tolerance exists.
func NewReport(d *table.Derivation, opts ...Option) Report {
	o := gatherOptions(opts...)
	sys, res, an := d.System, d.Result, d.Analysis
	idx := d.Mode.IndexName()

	r := Report{
		Mode:     d.Mode.String(),
		Target:   sys.Target.Format(idx),
		Depth:    sys.Depth,
		Unknowns: termStrings(sys.Unknowns, idx),
		Solution: make([]CoefficientReport, 0, len(res.Solution)),
		Dropped:  termStrings(res.Dropped, idx),
		Error:    make([]float64, len(res.Error)),
		Exact:    an.Exact,
	}
	for _, c := range res.Solution {
		r.Solution = append(r.Solution, CoefficientReport{
			Term:     c.Term.Format(idx),
			Value:    c.Value,
			Fraction: o.fraction(c.Value),
		})
	}
	for i, v := range res.Error {
		r.Error[i] = o.round(v)
	}
	if len(r.Dropped) == 0 {
		r.Dropped = nil
	}
	if !an.Exact {
		power, coef := an.Power, an.Coefficient
		order, local, global := d.Order(), d.LocalOrder(), d.GlobalOrder()
		r.Power, r.Coefficient, r.Order = &power, &coef, &order
		if d.Mode == table.Marching {
			r.LocalOrder, r.GlobalOrder = &local, &global
		}
	}
	if res.K == 0 {
		r.Warning = table.ErrEmptyUnknownSet.Error()
	}

	return r
}

// fraction renders v as a small exact fraction, or "" when none is close.
func (o Options) fraction(v float64) string {
	f, err := fraction.Approximate(v, o.maxDen, o.tolerance())
	if err != nil || math.Abs(f.Float64()-v) > o.tolerance() {
		return ""
	}

	return f.String()
}

func (o Options) tolerance() float64 { return math.Pow10(-o.precision) }

// round rounds to the configured decimals and folds -0 into 0.
func (o Options) round(v float64) float64 {
	scale := math.Pow10(o.precision)
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}

	return r
}

func termStrings(ts []table.Term, idx string) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Format(idx)
	}

	return out
}

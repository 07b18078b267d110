package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/taylortable/expansion"
	tt "github.com/katalvlaran/taylortable/table"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ErrUnknownFormat is returned for a Format outside the supported set.
var ErrUnknownFormat = errors.New("render: unknown format")

// ParseFormat maps a user string (case-insensitive, "md" accepted) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Write renders d to w in the requested format.
func Write(w io.Writer, d *tt.Derivation, format Format, opts ...Option) error {
	switch format {
	case FormatTable, FormatMarkdown:
		return writeTable(w, d, format, gatherOptions(opts...))
	case FormatJSON:
		return writeJSON(w, NewReport(d, opts...))
	case FormatYAML:
		return writeYAML(w, NewReport(d, opts...))
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// WriteReports renders several reports as one JSON array or YAML sequence.
// Table formats fall back to one summary line per report.
func WriteReports(w io.Writer, reports []Report, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, reports)
	case FormatYAML:
		return writeYAML(w, reports)
	case FormatTable, FormatMarkdown:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"name", "mode", "target", "order", "leading term"})
		for _, r := range reports {
			t.AppendRow(table.Row{r.Name, r.Mode, r.Target, orderString(r.Order), leadingString(r)})
		}
		if format == FormatMarkdown {
			t.RenderMarkdown()
		} else {
			t.Render()
		}

		return nil
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// WriteExpansion renders a single Taylor row (the expand command).
func WriteExpansion(w io.Writer, term expansion.Term, row expansion.Row, format Format) error {
	doc := struct {
		Term string   `json:"term" yaml:"term"`
		Row  []string `json:"row" yaml:"row"`
	}{Term: term.String(), Row: row.Strings()}

	switch format {
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	case FormatTable, FormatMarkdown:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(powerHeader("h", row.Depth()))
		t.AppendRow(append(table.Row{term.String()}, cells(row.Strings())...))
		if format == FormatMarkdown {
			t.RenderMarkdown()
		} else {
			t.Render()
		}

		return nil
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// writeTable draws the Taylor table in the layout of a hand-written one:
// the target row, a blank row, every unknown with negated coefficients, a
// blank row and the residual.
func writeTable(w io.Writer, d *tt.Derivation, format Format, o Options) error {
	sys, res := d.System, d.Result
	idx, step := d.Mode.IndexName(), d.Mode.StepName()
	blank := make(table.Row, sys.Depth+2)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(powerHeader(step, sys.Depth))
	t.AppendRow(append(table.Row{termLabel(sys.Target, idx, step, "")}, cells(sys.TargetRow.Strings())...))
	t.AppendRow(blank)
	for j, term := range sys.Unknowns {
		t.AppendRow(append(table.Row{termLabel(term, idx, step, "- ")}, cells(sys.Display(j).Strings())...))
	}
	t.AppendRow(blank)
	errRow := table.Row{"error"}
	for _, v := range res.Error {
		errRow = append(errRow, strconv.FormatFloat(o.round(v), 'g', -1, 64))
	}
	t.AppendRow(errRow)

	if format == FormatMarkdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}

	return writeSummary(w, d, o)
}

// writeSummary prints the solved weights, leading error term and orders.
func writeSummary(w io.Writer, d *tt.Derivation, o Options) error {
	idx, step := d.Mode.IndexName(), d.Mode.StepName()
	var sb strings.Builder

	sb.WriteString("\nsolution:\n")
	if len(d.Result.Solution) == 0 {
		sb.WriteString("  (no unknowns)\n")
	}
	for _, c := range d.Result.Solution {
		val := strconv.FormatFloat(c.Value, 'g', 10, 64)
		if f := o.fraction(c.Value); f != "" {
			val = f
		}
		fmt.Fprintf(&sb, "  %s = %s\n", c.Term.Format(idx), val)
	}
	for _, t := range d.Result.Dropped {
		fmt.Fprintf(&sb, "  %s dropped by truncation\n", t.Format(idx))
	}

	an := d.Analysis
	if an.Exact {
		fmt.Fprintf(&sb, "\nexact up to %s^%d\n", step, d.System.Depth)
	} else {
		coef := strconv.FormatFloat(an.Coefficient, 'g', 10, 64)
		if f := o.fraction(an.Coefficient); f != "" {
			coef = f
		}
		fmt.Fprintf(&sb, "\ntruncation error: %s * %s^%d %s_%s\n", coef, step, an.Power, derivLabel(an.Power), idx)
		fmt.Fprintf(&sb, "method order: %d\n", d.Order())
		if d.Mode == tt.Marching {
			fmt.Fprintf(&sb, "local error: O(%s^%d)\nglobal error: O(%s^%d)\n", step, d.LocalOrder(), step, d.GlobalOrder())
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// powerHeader builds "", "u", "h^1 u'", "h^2 u''", "h^3 u^(3)", ...
func powerHeader(step string, depth int) table.Row {
	row := table.Row{""}
	for p := 0; p <= depth; p++ {
		row = append(row, powerLabel(step, p))
	}

	return row
}

func powerLabel(step string, p int) string {
	if p == 0 {
		return derivLabel(p)
	}

	return fmt.Sprintf("%s^%d %s", step, p, derivLabel(p))
}

// derivLabel is the bare derivative symbol: u, u', u'', u^(3).
func derivLabel(p int) string {
	return strings.TrimSuffix(expansion.Term{Derivative: p}.Format(""), "_{}")
}

// termLabel prefixes a term with its h^p factor, e.g. "- dx^2 u''_{j-1}".
func termLabel(t expansion.Term, idx, step, prefix string) string {
	if t.Derivative == 0 {
		return prefix + t.Format(idx)
	}

	return fmt.Sprintf("%s%s^%d %s", prefix, step, t.Derivative, t.Format(idx))
}

func cells(ss []string) table.Row {
	row := make(table.Row, len(ss))
	for i, s := range ss {
		row[i] = s
	}

	return row
}

func orderString(order *int) string {
	if order == nil {
		return "exact"
	}

	return strconv.Itoa(*order)
}

func leadingString(r Report) string {
	if r.Power == nil || r.Coefficient == nil {
		return "-"
	}

	return fmt.Sprintf("%g * h^%d", *r.Coefficient, *r.Power)
}

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/taylortable/render"
	"github.com/katalvlaran/taylortable/table"
)

// ErrInvalidScheme is returned for a batch entry that cannot be run.
var ErrInvalidScheme = errors.New("cli: invalid scheme")

// BatchFile is the YAML document read by the batch command:
//
//	schemes:
//	  - name: central-4
//	    mode: stencil
//	    p: 1
//	    groups: [[-2, -1, 0, 1, 2]]
//	    depth: 6
//	  - name: euler
//	    mode: marching
//	    k: 1
//	    groups: [[0], [0]]
type BatchFile struct {
	Schemes []Scheme `yaml:"schemes"`
}

// Scheme is one batch entry. Depth and Backwards fall back to the
// configuration and the mode default when omitted.
type Scheme struct {
	Name      string  `yaml:"name"`
	Mode      string  `yaml:"mode"`
	P         int     `yaml:"p"`
	K         int     `yaml:"k"`
	Groups    [][]int `yaml:"groups"`
	Depth     *int    `yaml:"depth,omitempty"`
	Backwards *bool   `yaml:"backwards,omitempty"`
}

// LoadBatch reads and decodes a batch file; unknown keys are rejected.
func LoadBatch(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var bf BatchFile
	if err = dec.Decode(&bf); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}

	return &bf, nil
}

// parseMode accepts "stencil" (the default) and "marching"/"march".
func parseMode(s string) (table.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stencil":
		return table.Stencil, nil
	case "march", "marching":
		return table.Marching, nil
	default:
		return 0, fmt.Errorf("mode %q: %w", s, ErrInvalidScheme)
	}
}

// label names a scheme in reports and errors.
func (s Scheme) label(i int) string {
	if s.Name != "" {
		return s.Name
	}

	return fmt.Sprintf("#%d", i+1)
}

// derive runs one scheme; an empty unknown set still yields a Derivation.
func (s Scheme) derive(depth int, opts []table.Option) (*table.Derivation, error) {
	mode, err := parseMode(s.Mode)
	if err != nil {
		return nil, err
	}
	if mode == table.Marching && s.P != 0 {
		return nil, fmt.Errorf("marching target has p = 0, got %d: %w", s.P, ErrInvalidScheme)
	}
	if s.Depth != nil {
		depth = *s.Depth
	}
	if s.Backwards != nil {
		opts = append(opts[:len(opts):len(opts)], table.WithBackwards(*s.Backwards))
	}

	return table.Derive(mode, table.Term{Derivative: s.P, Offset: s.K}, s.Groups, depth, opts...)
}

// runBatch derives every scheme with at most jobs running at once. Reports
// come back in input order; the first failing scheme cancels the rest.
func (a *app) runBatch(ctx context.Context, schemes []Scheme, jobs int) ([]render.Report, error) {
	reports := make([]render.Report, len(schemes))
	opts, ropts := a.tableOptions(), a.renderOptions()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, s := range schemes {
		i, s := i, s // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := s.derive(a.cfg.Depth, opts)
			if err != nil && !errors.Is(err, table.ErrEmptyUnknownSet) {
				return fmt.Errorf("scheme %s: %w", s.label(i), err)
			}
			r := render.NewReport(d, ropts...)
			r.Name = s.label(i)
			reports[i] = r
			a.logger.Debug("scheme derived", slog.String("name", r.Name), slog.Bool("exact", r.Exact))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Derive several schemes listed in a YAML file",
		Long: `Batch derives every scheme of a YAML file concurrently and prints one
summary per scheme, in file order.

File layout:
  schemes:
    - name: central-4
      mode: stencil        # or marching
      p: 1
      k: 0
      groups: [[-2, -1, 0, 1, 2]]
      depth: 6             # optional, defaults to --depth
      backwards: true      # optional, defaults per mode`,
		Example: `  taylortable batch schemes.yaml
  taylortable batch schemes.yaml --jobs 4 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bf, err := LoadBatch(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("batch loaded", slog.String("file", args[0]), slog.Int("schemes", len(bf.Schemes)), slog.Int("jobs", a.cfg.Jobs))

			reports, err := a.runBatch(cmd.Context(), bf.Schemes, a.cfg.Jobs)
			if err != nil {
				return err
			}

			return render.WriteReports(cmd.OutOrStdout(), reports, a.format)
		},
	}
	cmd.Flags().Int("jobs", DefaultConfig().Jobs, "number of schemes derived concurrently")
	_ = a.v.BindPFlag("jobs", cmd.Flags().Lookup("jobs"))

	return cmd
}

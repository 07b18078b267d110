package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/taylortable/expansion"
	"github.com/katalvlaran/taylortable/render"
	"github.com/katalvlaran/taylortable/table"
)

func newStencilCmd(a *app) *cobra.Command {
	var (
		p, k    int
		groups  []string
		forward bool
	)
	cmd := &cobra.Command{
		Use:   "stencil",
		Short: "Derive finite-difference weights for h^P u^(P)_{j+K}",
		Long: `Derive the weights of a finite-difference stencil.

Each --group lists grid offsets; the first --group holds function values,
the second first derivatives, and so on. Groups are laid out highest
derivative first unless --forward is given, which decides which unknowns
survive when the system has to be truncated.`,
		Example: `  taylortable stencil --p 1 --k 0 --group=-2,-1,0,1,2 --depth 6
  taylortable stencil --p 2 --group=-1,0,1
  taylortable stencil --p 1 --group=-1,0,1 --group=-1,1 --depth 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gs, err := parseGroups(groups)
			if err != nil {
				return err
			}
			opts := a.tableOptions()
			if cmd.Flags().Changed("forward") {
				opts = append(opts, table.WithBackwards(!forward))
			}
			d, err := table.DeriveStencil(p, k, gs, a.cfg.Depth, opts...)

			return a.emit(cmd, d, err)
		},
	}
	cmd.Flags().IntVar(&p, "p", 1, "derivative order P of the target")
	cmd.Flags().IntVar(&k, "k", 0, "grid offset K of the target")
	cmd.Flags().StringArrayVarP(&groups, "group", "g", nil, "comma-separated offsets of one derivative order (repeatable)")
	cmd.Flags().BoolVar(&forward, "forward", false, "lay out groups in the order given")

	return cmd
}

func newMarchCmd(a *app) *cobra.Command {
	var (
		k         int
		groups    []string
		backwards bool
	)
	cmd := &cobra.Command{
		Use:   "march",
		Short: "Analyze a time-marching formula for u_{n+K}",
		Long: `Analyze a time-marching scheme u_{n+K} = sum of weighted u and h^p u^(p)
values at earlier (or implicit) steps.

Groups follow the stencil convention: function values first, then first
derivatives. The local error is O(h^power) and the global order is one less.`,
		Example: `  taylortable march --k 1 --group 0 --group 0      # explicit Euler
  taylortable march --k 1 --group 0 --group=0,-1  # two-step Adams-Bashforth
  taylortable march --k 1 --group=-1 --group 0    # leapfrog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gs, err := parseGroups(groups)
			if err != nil {
				return err
			}
			opts := a.tableOptions()
			if cmd.Flags().Changed("backwards") {
				opts = append(opts, table.WithBackwards(backwards))
			}
			d, err := table.DeriveMarchingScheme(k, gs, a.cfg.Depth, opts...)

			return a.emit(cmd, d, err)
		},
	}
	cmd.Flags().IntVar(&k, "k", 1, "step offset K of the advanced value")
	cmd.Flags().StringArrayVarP(&groups, "group", "g", nil, "comma-separated step offsets of one derivative order (repeatable)")
	cmd.Flags().BoolVar(&backwards, "backwards", false, "lay out groups highest derivative first")

	return cmd
}

func newExpandCmd(a *app) *cobra.Command {
	var p, k int
	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Print the Taylor row of h^P u^(P)_{j+K}",
		Long: `Print the exact Taylor expansion of one term about u_j: the entry under
h^i u^(i) is K^(i-P)/(i-P)! for i >= P and zero below.`,
		Example: `  taylortable expand --p 2 --k -1 --depth 6`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			term := expansion.Term{Derivative: p, Offset: k}
			row, err := expansion.Expand(term, a.cfg.Depth)
			if err != nil {
				return err
			}
			a.logger.Debug("expanded term", "term", term.String(), "depth", a.cfg.Depth)

			return render.WriteExpansion(cmd.OutOrStdout(), term, row, a.format)
		},
	}
	cmd.Flags().IntVar(&p, "p", 0, "derivative order P")
	cmd.Flags().IntVar(&k, "k", 0, "grid offset K")

	return cmd
}

// Package cli provides the taylortable command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/taylortable/expansion"
	"github.com/katalvlaran/taylortable/fraction"
	"github.com/katalvlaran/taylortable/render"
	"github.com/katalvlaran/taylortable/table"
)

// Version information (set at build time).
var Version = "0.1.0"

// Exit codes returned by Execute.
const (
	ExitOK         = 0
	ExitError      = 1
	ExitUsage      = 2
	ExitUnsolvable = 3
	ExitNoUnknowns = 4
)

// app carries the state shared by every command of one root.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	format  render.Format
	logger  *slog.Logger
}

// flagKeys maps persistent flag names to configuration keys.
var flagKeys = map[string]string{
	"depth":           "depth",
	"precision":       "precision",
	"format":          "format",
	"max-denominator": "max_denominator",
	"epsilon":         "epsilon",
	"verbose":         "verbose",
}

// NewRootCmd creates the root command with its own configuration state.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	def := DefaultConfig()

	root := &cobra.Command{
		Use:   "taylortable",
		Short: "Taylor-table derivation of finite-difference and time-marching schemes",
		Long: `taylortable builds the Taylor table of a numerical scheme, solves it for the
scheme weights and reports the leading truncation-error term and the order
of accuracy.

Stencils approximate h^P u^(P)_{j+K} from function and derivative values at
neighbouring grid points; marching schemes advance u_n to u_{n+K}.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			return a.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.taylortable/config.yaml)")
	pf.Int("depth", def.Depth, "highest power of h kept in the table")
	pf.Int("precision", def.Precision, "decimals used when testing residual entries for zero")
	pf.StringP("format", "o", def.Format, "output format (table|markdown|json|yaml)")
	pf.Int64("max-denominator", def.MaxDenominator, "largest denominator shown for fractional weights")
	pf.Float64("epsilon", def.Epsilon, "relative pivot tolerance of the solver")
	pf.BoolP("verbose", "v", false, "verbose output (debug log on stderr)")

	for name, key := range flagKeys {
		_ = a.v.BindPFlag(key, pf.Lookup(name))
	}
	_ = root.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "markdown", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(
		newStencilCmd(a),
		newMarchCmd(a),
		newExpandCmd(a),
		newBatchCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command against os.Args and returns the exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return ExitCode(err)
	}

	return ExitOK
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, table.ErrUnsolvableSystem):
		return ExitUnsolvable
	case errors.Is(err, table.ErrEmptyUnknownSet):
		return ExitNoUnknowns
	case errors.Is(err, expansion.ErrInvalidTerm),
		errors.Is(err, expansion.ErrInvalidDepth),
		errors.Is(err, ErrInvalidGroup),
		errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrInvalidScheme),
		errors.Is(err, render.ErrUnknownFormat),
		errors.Is(err, fraction.ErrSyntax):
		return ExitUsage
	default:
		return ExitError
	}
}

// load reads the config file and TAYLORTABLE_* variables, then resolves the
// effective Config and logger.
func (a *app) load(cmd *cobra.Command) error {
	def := DefaultConfig()
	a.v.SetDefault("jobs", def.Jobs)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if path, err := defaultConfigPath(); err == nil {
		a.v.AddConfigPath(filepath.Dir(path))
		a.v.SetConfigName(strings.TrimSuffix(configFileName, filepath.Ext(configFileName)))
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		// an explicit --config must exist, except for the file config init creates
		if !missing || (a.cfgFile != "" && cmd.Name() != "init") {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, _ := render.ParseFormat(cfg.Format)
	a.cfg, a.format = cfg, format
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if f := a.v.ConfigFileUsed(); f != "" {
		a.logger.Debug("using config file", slog.String("path", f))
	}

	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// tableOptions are the engine options implied by the configuration.
func (a *app) tableOptions() []table.Option {
	return []table.Option{
		table.WithPrecision(a.cfg.Precision),
		table.WithEpsilon(a.cfg.Epsilon),
		table.WithLogger(a.logger),
	}
}

func (a *app) renderOptions() []render.Option {
	return []render.Option{
		render.WithPrecision(a.cfg.Precision),
		render.WithMaxDenominator(a.cfg.MaxDenominator),
	}
}

// emit renders d (when there is one) and passes err through, so an empty
// unknown set still prints its residual before exiting non-zero.
func (a *app) emit(cmd *cobra.Command, d *table.Derivation, err error) error {
	if d == nil {
		return err
	}
	if werr := render.Write(cmd.OutOrStdout(), d, a.format, a.renderOptions()...); werr != nil {
		return werr
	}

	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Display the taylortable version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "taylortable v%s\n", Version)
		},
	}
}

package cli

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/taylortable/render"
	"github.com/katalvlaran/taylortable/table"
)

const (
	envPrefix      = "TAYLORTABLE"
	configDirName  = ".taylortable"
	configFileName = "config.yaml"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// Config is the effective CLI configuration after merging defaults, the
// config file, TAYLORTABLE_* variables and flags (lowest to highest).
type Config struct {
	Depth          int     `mapstructure:"depth" yaml:"depth"`
	Precision      int     `mapstructure:"precision" yaml:"precision"`
	Format         string  `mapstructure:"format" yaml:"format"`
	MaxDenominator int64   `mapstructure:"max_denominator" yaml:"max_denominator"`
	Epsilon        float64 `mapstructure:"epsilon" yaml:"epsilon"`
	Jobs           int     `mapstructure:"jobs" yaml:"jobs"`
	Verbose        bool    `mapstructure:"verbose" yaml:"verbose"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		Depth:          table.DefaultDepth,
		Precision:      table.DefaultPrecision,
		Format:         string(render.FormatTable),
		MaxDenominator: render.DefaultMaxDenominator,
		Epsilon:        table.DefaultEpsilon,
		Jobs:           runtime.NumCPU(),
	}
}

// Validate rejects values the engine would refuse or panic on.
func (c Config) Validate() error {
	switch {
	case c.Depth < 0:
		return fmt.Errorf("depth %d: %w", c.Depth, ErrInvalidConfig)
	case c.Precision < 0 || c.Precision > table.MaxPrecision:
		return fmt.Errorf("precision %d outside [0, %d]: %w", c.Precision, table.MaxPrecision, ErrInvalidConfig)
	case c.MaxDenominator < 1:
		return fmt.Errorf("max_denominator %d: %w", c.MaxDenominator, ErrInvalidConfig)
	case c.Epsilon < 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0):
		return fmt.Errorf("epsilon %v: %w", c.Epsilon, ErrInvalidConfig)
	case c.Jobs < 1:
		return fmt.Errorf("jobs %d: %w", c.Jobs, ErrInvalidConfig)
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}

	return nil
}

// defaultConfigPath is ~/.taylortable/config.yaml.
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage taylortable configuration",
		Long: `Manage taylortable configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (TAYLORTABLE_*)
3. Config file (~/.taylortable/config.yaml)
4. Defaults`,
	}
	cmd.AddCommand(newConfigShowCmd(a), newConfigInitCmd(a))

	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long:  `Print the configuration after merging defaults, the config file, environment variables and flags.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f := a.v.ConfigFileUsed(); f != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n", f)
			} else {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "No configuration file found (using defaults)")
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}

			return enc.Close()
		},
	}
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Create a configuration file holding the default settings, at the path given
by --config or at ~/.taylortable/config.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.cfgFile
			if path == "" {
				var err error
				if path, err = defaultConfigPath(); err != nil {
					return err
				}
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			}

			data, err := yaml.Marshal(DefaultConfig())
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err = os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)

			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

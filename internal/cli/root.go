// Package cli provides the command-line interface for tonal.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/plugin/input"
	"github.com/jmylchreest/tonal/internal/plugin/input/file"
	"github.com/jmylchreest/tonal/internal/plugin/input/manual"
	"github.com/jmylchreest/tonal/internal/plugin/input/remote"
	"github.com/jmylchreest/tonal/internal/version"
)

// app carries the state shared by every command of one invocation.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	quiet      bool

	cfg    config.Config
	logger hclog.Logger
	inputs *input.Registry
	getenv func(string) string
}

// NewRootCmd builds the tonal command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		inputs: input.NewRegistry(),
		getenv: os.Getenv,
		logger: hclog.NewNullLogger(),
	}
	a.inputs.Register(manual.New())
	a.inputs.Register(file.New())
	a.inputs.Register(remote.New())

	rootCmd := &cobra.Command{
		Use:   "tonal",
		Short: "An accessible colour palette generator",
		Long: `Tonal derives accessible tints and shades from a brand palette.

Every base colour gets four variations (lighter, light, dark, darker) whose
contrast against near-black or near-white text meets WCAG AAA where possible.
Where a goal cannot be met the palette is still produced and a warning names
what to adjust.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tonal/config.toml)")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(a.newGenerateCmd())
	rootCmd.AddCommand(a.newRibbonCmd())
	rootCmd.AddCommand(a.newTargetsCmd())
	rootCmd.AddCommand(a.newConfigCmd())

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	cfg = cfg.WithEnv(a.getenv)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	level := cfg.LogLevel()
	switch {
	case a.quiet:
		level = hclog.Error
	case a.verbose:
		level = hclog.Debug
	}
	a.logger = newLogger(cmd.ErrOrStderr(), level)
	a.logger.Debug("configuration loaded", "config", a.configPath, "store", cfg.Store.Kind)
	return nil
}

// newVersionCmd returns the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// Package commands implements the CLI commands for the baseline benchmark.
package commands

import (
	"context"

	"github.com/pykeen/nonparametric-baseline-benchmark/internal/app"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/build"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for the benchmark harness.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance from the application components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "baseline",
		Short:         "Benchmark non-parametric link-prediction baselines",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     components.App,
		logger:  components.Logger,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.logger.SetVerbose(verbose)
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

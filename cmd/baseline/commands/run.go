package commands

import (
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark grid and write the aggregated result table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			batchSize, _ := cmd.Flags().GetInt("batch-size")
			trials, _ := cmd.Flags().GetInt("trials")
			workers, _ := cmd.Flags().GetInt("workers")
			rebuild, _ := cmd.Flags().GetBool("rebuild")
			smoke, _ := cmd.Flags().GetBool("smoke")
			return c.app.Run(cmd.Context(), app.RunOptions{
				BatchSize: batchSize,
				Trials:    trials,
				Workers:   workers,
				Rebuild:   rebuild,
				Smoke:     smoke,
			})
		},
	}
	cmd.Flags().IntP("batch-size", "b", 0, "Evaluation batch size (0 uses the configured default)")
	// Zero trials means one unresampled trial, so the use-config sentinel
	// has to be negative.
	cmd.Flags().IntP("trials", "t", -1, "Number of resampled trials per combination (-1 uses the configured default, 0 runs once without resampling)")
	cmd.Flags().IntP("workers", "w", 0, "Maximum concurrent combinations (0 uses the configured default)")
	cmd.Flags().BoolP("rebuild", "r", false, "Recompute every combination, ignoring cached results")
	cmd.Flags().BoolP("smoke", "s", false, "Run only the smallest datasets and write a separate table")
	return cmd
}

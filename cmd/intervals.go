package cmd

import (
	"time"

	"github.com/huangsam/awardgap/core"
	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/outwriter"
	"github.com/spf13/cobra"
)

// intervalsCmd reports the shortest and longest gaps between producer wins.
var intervalsCmd = &cobra.Command{
	Use:   "intervals",
	Short: "Show the producers with the shortest and longest gap between consecutive wins.",
	Long: `Compute, from every stored movie, the gap in years between consecutive wins
of each producer and report all entries tied at the smallest and at the largest gap.

A movie credited to "A, B and C" counts as a win for each of A, B and C.
Producers with fewer than two wins do not appear. When no producer has two wins,
both lists are empty.

Examples:
  # Table output
  awardgap intervals

  # Same shape as the HTTP endpoint
  awardgap intervals --output json

  # Write to Parquet for analysis in DuckDB
  awardgap intervals --output parquet --output-file intervals.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		report, err := core.GetProducerIntervals(rootCtx, storeManager)
		if err != nil {
			contract.LogFatal("Cannot compute producer intervals", err)
		}
		if err := outwriter.NewOutWriter().WriteIntervals(report, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write producer intervals", err)
		}
	},
}

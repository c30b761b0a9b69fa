package cmd

import (
	"github.com/huangsam/awardgap/core"
	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/outwriter"
	"github.com/spf13/cobra"
)

// moviesCmd lists stored movies.
var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List every stored movie ordered by year and title.",
	Long: `List the movies held by the configured store.

CSV output uses the same semicolon-delimited layout that ingest reads, so a
listing can be edited and loaded back.

Examples:
  awardgap movies
  awardgap movies --output csv --output-file backup.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		movies, err := core.ListMovies(rootCtx, storeManager)
		if err != nil {
			contract.LogFatal("Cannot list movies", err)
		}
		if err := outwriter.NewOutWriter().WriteMovies(movies, cfg); err != nil {
			contract.LogFatal("Cannot write movies", err)
		}
	},
}

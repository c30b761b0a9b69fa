package cmd

import (
	"time"

	"github.com/huangsam/awardgap/core"
	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/outwriter"
	"github.com/spf13/cobra"
)

// ingestCmd loads a movie list into the store.
var ingestCmd = &cobra.Command{
	Use:   "ingest <file>",
	Short: "Validate a movie list and upsert every row into the store.",
	Long: `Read a semicolon-delimited movie list and upsert it into the configured store.

The file needs a header row with the columns year;title;studios;producers;winner.
A winner is marked with the literal token "yes". The whole file is validated
before anything is written: one bad row rejects the file and every problem is
reported at once, with row numbers counting the header as row 1.

Movies are matched by title and year. Re-ingesting a movie updates its studios,
producers and winner flag while keeping its id and creation time.

Examples:
  # Load the bundled list into the default SQLite store
  awardgap ingest testdata/movielist.csv

  # Load into PostgreSQL and print the summary as JSON
  awardgap ingest movies.csv --store-backend postgresql \
    --store-db-connect "host=localhost port=5432 user=postgres dbname=awards" --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		start := time.Now()
		result, err := core.PopulateFromFile(rootCtx, storeManager, args[0])
		if err != nil {
			contract.LogFatal("Cannot ingest movie list", err)
		}
		if err := outwriter.NewOutWriter().WritePopulate(result, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write ingest summary", err)
		}
	},
}

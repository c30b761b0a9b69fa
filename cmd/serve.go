package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/awardgap/core"
	"github.com/huangsam/awardgap/internal/api"
	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/logging"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the movie API over HTTP.",
	Long: `Start the HTTP API backed by the configured movie store.

Endpoints:
  GET  /                        health check
  GET  /list-producer-winners   shortest and longest producer gaps
  GET  /movies                  every stored movie
  POST /populate                multipart upload of a movie list (field "file")
  GET  /swagger/                interactive API documentation

With --seed-file the given movie list is ingested before the listener opens.

Examples:
  awardgap serve --addr :3000 --seed-file testdata/movielist.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.SeedFile != "" {
			result, err := core.PopulateFromFile(ctx, storeManager, cfg.SeedFile)
			if err != nil {
				contract.LogFatal("Cannot seed movie store", err)
			}
			logger.Info("seeded movie store", "file", cfg.SeedFile, logging.FieldRows, result.Count)
		}

		handler := api.NewRouter(storeManager, api.WithLogger(logger), api.WithColors(cfg.UseColors))
		if err := api.ListenAndServe(ctx, cfg.Addr, handler, logger); err != nil {
			contract.LogFatal("HTTP server failed", err)
		}
	},
}

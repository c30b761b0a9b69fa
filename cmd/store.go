package cmd

import (
	"os"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/logging"
	"github.com/huangsam/awardgap/internal/moviestore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeCmd is the parent of the store management commands.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the movie store.",
	Long:  `Inspect, export, migrate or clear the movie store selected by --store-backend.`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show movie store status and statistics.",
	Long: `Display the backend, connection and contents of the movie store.

Shows:
- Backend type and masked connection string
- Table or collection name
- Number of movies and winners
- Oldest and newest update times
- Schema version for SQL backends`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := storeManager.GetMovieStore().GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot get store status", err)
		}
		moviestore.PrintStoreStatus(os.Stdout, status, contract.MaskConnectionString(cfg.StoreDBConnect))
	},
}

// storeClearCmd removes every movie from the store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every movie from the store.",
	Long: `Remove all stored movies. SQLite removes the database file, MySQL and
PostgreSQL drop the movies table and MongoDB drops the collection. The next
command that opens the store recreates an empty table.`,
	Args:    cobra.NoArgs,
	PreRunE: configSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := moviestore.ClearStore(rootCtx, cfg.StoreBackend, cfg.StoreDBConnect, cfg.StoreTable); err != nil {
			contract.LogFatal("Cannot clear store", err)
		}
		logger.Info("store cleared", logging.FieldBackend, cfg.StoreBackend, "table", cfg.StoreTable)
	},
}

// storeExportCmd writes the store contents to Parquet.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every stored movie to a Parquet file.",
	Long: `Write all stored movies to the Parquet file named by --output-file.

Examples:
  awardgap store export --output-file movies.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := moviestore.ExecuteExport(rootCtx, storeManager, cfg.OutputFile, os.Stdout); err != nil {
			contract.LogFatal("Cannot export movies", err)
		}
	},
}

// storeMigrateCmd moves the default movies table between schema versions.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back schema migrations on a SQL store.",
	Long: `Run the embedded schema migrations against the SQL backend.

Examples:
  # Migrate to the latest version
  awardgap store migrate

  # Roll back to the first version
  awardgap store migrate --target-version 1

  # Remove the schema entirely
  awardgap store migrate --target-version 0`,
	Args:    cobra.NoArgs,
	PreRunE: configSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		result, err := moviestore.MigrateStore(rootCtx, cfg.StoreBackend, cfg.StoreDBConnect, viper.GetInt("target-version"))
		if err != nil {
			contract.LogFatal("Cannot migrate store", err)
		}
		moviestore.PrintMigrateResult(os.Stdout, result)
	},
}

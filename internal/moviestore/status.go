package moviestore

import (
	"fmt"
	"io"

	"github.com/huangsam/awardgap/schema"
)

const statusTimeFormat = "2006-01-02 15:04:05"

// PrintStoreStatus prints store status information.
func PrintStoreStatus(w io.Writer, status schema.StoreStatus, connStr string) {
	_, _ = fmt.Fprintf(w, "Store Backend: %s\n", status.Backend)
	if connStr != "" {
		_, _ = fmt.Fprintf(w, "Connection: %s\n", connStr)
	}
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Table: %s\n", status.Table)
	_, _ = fmt.Fprintf(w, "Total Movies: %d\n", status.TotalMovies)
	_, _ = fmt.Fprintf(w, "Total Winners: %d\n", status.TotalWinners)
	if status.TotalMovies > 0 {
		_, _ = fmt.Fprintf(w, "Last Update: %s\n", status.LastUpdate.Format(statusTimeFormat))
		_, _ = fmt.Fprintf(w, "Oldest Update: %s\n", status.OldestUpdate.Format(statusTimeFormat))
	}
	if status.SchemaVersion > 0 {
		_, _ = fmt.Fprintf(w, "Schema Version: %d (dirty: %t)\n", status.SchemaVersion, status.SchemaDirty)
	}
	_, _ = fmt.Fprintf(w, "Table Size: %d bytes\n", status.TableSizeBytes)
}

// PrintMigrateResult prints the outcome of a migration run.
func PrintMigrateResult(w io.Writer, result MigrateResult) {
	if !result.Changed {
		_, _ = fmt.Fprintf(w, "No migration needed. Database is already at version %d\n", result.To)
		return
	}
	_, _ = fmt.Fprintf(w, "Successfully migrated from version %d to version %d\n", result.From, result.To)
}

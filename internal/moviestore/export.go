package moviestore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/parquet"
)

// ExecuteExport writes every stored movie to a Parquet file and reports progress to w.
func ExecuteExport(ctx context.Context, mgr contract.StoreManager, outputFile string, w io.Writer) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	store := mgr.GetMovieStore()
	if store == nil {
		return errors.New("movie store is not initialized")
	}

	status, err := store.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalMovies == 0 {
		return errors.New("no movie data found to export")
	}
	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)

	movies, err := store.ListMovies(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve movies: %w", err)
	}
	rows := parquet.ConvertMovies(movies)
	if err := parquet.WriteMoviesParquet(rows, outputFile); err != nil {
		return fmt.Errorf("failed to write movies: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d movies to: %s\n", len(rows), outputFile)
	return nil
}

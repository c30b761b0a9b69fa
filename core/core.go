// Package core has core logic for ingestion, upserts and interval analysis.
package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/logging"
	"github.com/huangsam/awardgap/schema"
)

// ErrNoStore is returned when the store manager has no movie store.
var ErrNoStore = errors.New("movie store is not initialized")

func movieStore(mgr contract.StoreManager) (contract.MovieStore, error) {
	if mgr == nil {
		return nil, ErrNoStore
	}
	store := mgr.GetMovieStore()
	if store == nil {
		return nil, ErrNoStore
	}
	return store, nil
}

// PopulateMovies validates raw CSV text and upserts every row.
// Nothing is written unless the whole input is valid.
func PopulateMovies(ctx context.Context, mgr contract.StoreManager, raw string, opts ...UpserterOption) (schema.PopulateResult, error) {
	store, err := movieStore(mgr)
	if err != nil {
		return schema.PopulateResult{}, err
	}
	records, err := ParseMovies(raw)
	if err != nil {
		return schema.PopulateResult{}, err
	}
	logging.FromContext(ctx).Debug("parsed movie list", logging.FieldRows, len(records))

	if err := NewUpserter(store, opts...).UpsertMany(ctx, records); err != nil {
		return schema.PopulateResult{}, fmt.Errorf("failed to upsert movies: %w", err)
	}
	return schema.PopulateResult{Message: schema.PopulateMessage, Count: len(records)}, nil
}

// GetProducerIntervals reads the full store and computes the interval report.
func GetProducerIntervals(ctx context.Context, mgr contract.StoreManager) (schema.IntervalReport, error) {
	movies, err := ListMovies(ctx, mgr)
	if err != nil {
		return schema.IntervalReport{}, err
	}
	report := AnalyzeIntervals(movies)
	logging.FromContext(ctx).Debug("computed producer intervals",
		logging.FieldRows, len(movies),
		logging.FieldIntervals, len(report.Min)+len(report.Max))
	return report, nil
}

// ListMovies returns every stored movie ordered by year and title.
func ListMovies(ctx context.Context, mgr contract.StoreManager) ([]schema.Movie, error) {
	store, err := movieStore(mgr)
	if err != nil {
		return nil, err
	}
	movies, err := store.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

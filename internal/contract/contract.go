// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/awardgap/schema"
)

// StoreManager defines the interface for managing the movie store.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetMovieStore() MovieStore
}

// MovieStore is a durable store keyed by the exact (title, year) pair.
type MovieStore interface {
	// BulkUpsert writes movies as one batch. A movie whose (title, year) is
	// absent is inserted with its ID, CreatedAt and UpdatedAt. Otherwise the
	// stored studios, producers, winner and updatedAt are replaced while the
	// stored ID and CreatedAt are kept.
	BulkUpsert(ctx context.Context, movies []schema.Movie) error

	// ListMovies returns every stored movie ordered by year, then title.
	ListMovies(ctx context.Context) ([]schema.Movie, error)

	// GetStatus returns status information about the store.
	GetStatus(ctx context.Context) (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

package moviestore

import (
	"context"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetMovieStore implements the StoreManager interface.
func (m *MockStoreManager) GetMovieStore() contract.MovieStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.MovieStore)
	return store
}

// MockMovieStore is a mock implementation of MovieStore for testing.
type MockMovieStore struct {
	mock.Mock
}

var _ contract.MovieStore = &MockMovieStore{} // Compile-time check

// BulkUpsert implements the MovieStore interface.
func (m *MockMovieStore) BulkUpsert(ctx context.Context, movies []schema.Movie) error {
	args := m.Called(ctx, movies)
	return args.Error(0)
}

// ListMovies implements the MovieStore interface.
func (m *MockMovieStore) ListMovies(ctx context.Context) ([]schema.Movie, error) {
	args := m.Called(ctx)
	movies, _ := args.Get(0).([]schema.Movie)
	return movies, args.Error(1)
}

// GetStatus implements the MovieStore interface.
func (m *MockMovieStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the MovieStore interface.
func (m *MockMovieStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

package moviestore

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/schema"
)

// MemoryStore keeps movies in process memory. It backs the none backend.
type MemoryStore struct {
	mu     sync.RWMutex
	movies map[string]schema.Movie // exact title and year
}

var _ contract.MovieStore = &MemoryStore{} // Compile-time check

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{movies: make(map[string]schema.Movie)}
}

func memoryKey(title string, year int) string {
	return strconv.Itoa(year) + "\x00" + title
}

// BulkUpsert applies all movies under one lock.
func (s *MemoryStore) BulkUpsert(_ context.Context, movies []schema.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range movies {
		key := memoryKey(m.Title, m.Year)
		if existing, ok := s.movies[key]; ok {
			m.ID = existing.ID
			m.CreatedAt = existing.CreatedAt
		}
		s.movies[key] = m
	}
	return nil
}

// ListMovies returns every movie ordered by year, then title.
func (s *MemoryStore) ListMovies(_ context.Context) ([]schema.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	movies := make([]schema.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		movies = append(movies, m)
	}
	sort.Slice(movies, func(i, j int) bool {
		if movies[i].Year != movies[j].Year {
			return movies[i].Year < movies[j].Year
		}
		return movies[i].Title < movies[j].Title
	})
	return movies, nil
}

// GetStatus returns status information about the in-memory store.
func (s *MemoryStore) GetStatus(_ context.Context) (schema.StoreStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status := schema.StoreStatus{
		Backend:     string(schema.NoneBackend),
		Connected:   true,
		Table:       "memory",
		TotalMovies: len(s.movies),
	}
	for _, m := range s.movies {
		if m.Winner {
			status.TotalWinners++
		}
		if status.OldestUpdate.IsZero() || m.UpdatedAt.Before(status.OldestUpdate) {
			status.OldestUpdate = m.UpdatedAt
		}
		if m.UpdatedAt.After(status.LastUpdate) {
			status.LastUpdate = m.UpdatedAt
		}
	}
	return status, nil
}

// Close releases the stored movies.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies = make(map[string]schema.Movie)
	return nil
}

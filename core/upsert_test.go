package core

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/huangsam/awardgap/internal/moviestore"
	"github.com/huangsam/awardgap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

// sequentialIDs returns ids id-1, id-2, ...
func sequentialIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("id-%d", n), nil
	}
}

func TestNaturalKey(t *testing.T) {
	assert.Equal(t, "the lonely lady|1983", NaturalKey("  The Lonely LADY ", 1983))
	assert.NotEqual(t, NaturalKey("Cruising", 1980), NaturalKey("Cruising", 1981))
}

func TestDedupeMovies(t *testing.T) {
	records := []schema.MovieRecord{
		{Year: 1980, Title: "Cruising", Producers: "first"},
		{Year: 1981, Title: "Mommie Dearest", Producers: "Frank Yablans"},
		{Year: 1980, Title: " cruising", Producers: "second"},
		{Year: 1980, Title: "CRUISING ", Producers: "last", Winner: true},
	}
	out := DedupeMovies(records)
	require.Len(t, out, 2)
	assert.Equal(t, schema.MovieRecord{Year: 1980, Title: "CRUISING ", Producers: "last", Winner: true}, out[0])
	assert.Equal(t, "Mommie Dearest", out[1].Title)
}

func TestUpsertMany_EmptyInputSkipsStore(t *testing.T) {
	store := &moviestore.MockMovieStore{}
	u := NewUpserter(store)

	require.NoError(t, u.UpsertMany(context.Background(), nil))
	require.NoError(t, u.UpsertMany(context.Background(), []schema.MovieRecord{}))
	store.AssertNotCalled(t, "BulkUpsert", mock.Anything, mock.Anything)
}

func TestUpsertMany_SingleBatch(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := &moviestore.MockMovieStore{}

	expected := []schema.Movie{
		{ID: "id-1", Year: 1980, Title: "Test Movie", Studios: "Studio B", Producers: "Producer B", CreatedAt: now, UpdatedAt: now},
		{ID: "id-2", Year: 1981, Title: "Other", Studios: "S", Producers: "P", Winner: true, CreatedAt: now, UpdatedAt: now},
	}
	store.On("BulkUpsert", ctx, expected).Return(nil).Once()

	u := NewUpserter(store,
		WithClock(func() time.Time { return now }),
		WithIDGenerator(sequentialIDs()))
	err := u.UpsertMany(ctx, []schema.MovieRecord{
		{Year: 1980, Title: "Test Movie", Studios: "Studio A", Producers: "Producer A", Winner: true},
		{Year: 1981, Title: "Other", Studios: "S", Producers: "P", Winner: true},
		{Year: 1980, Title: "Test Movie", Studios: "Studio B", Producers: "Producer B"},
	})
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpsertMany_PropagatesErrors(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection reset")
	store := &moviestore.MockMovieStore{}
	store.On("BulkUpsert", ctx, mock.Anything).Return(storeErr)

	err := NewUpserter(store).UpsertMany(ctx, []schema.MovieRecord{{Year: 2000, Title: "Battlefield Earth"}})
	assert.ErrorIs(t, err, storeErr)

	idErr := errors.New("entropy exhausted")
	u := NewUpserter(store, WithIDGenerator(func() (string, error) { return "", idErr }))
	err = u.UpsertMany(ctx, []schema.MovieRecord{{Year: 2000, Title: "Battlefield Earth"}})
	assert.ErrorIs(t, err, idErr)
	store.AssertNumberOfCalls(t, "BulkUpsert", 1)
}

func TestUpsertMany_DefaultIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	store := moviestore.NewMemoryStore()
	records := make([]schema.MovieRecord, 50)
	for i := range records {
		records[i] = schema.MovieRecord{Year: 1980 + i, Title: "Sequel"}
	}
	require.NoError(t, NewUpserter(store).UpsertMany(ctx, records))

	movies, err := store.ListMovies(ctx)
	require.NoError(t, err)
	seen := make(map[string]struct{}, len(movies))
	for _, m := range movies {
		require.NotEmpty(t, m.ID)
		seen[m.ID] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestUpsertMany_AcrossCalls(t *testing.T) {
	ctx := context.Background()
	store := moviestore.NewMemoryStore()
	u := NewUpserter(store,
		WithClock(stepClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))),
		WithIDGenerator(sequentialIDs()))

	require.NoError(t, u.UpsertMany(ctx, []schema.MovieRecord{
		{Year: 1980, Title: "Test Movie", Studios: "Studio A", Producers: "Producer A", Winner: true},
	}))
	first, err := store.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	require.NoError(t, u.UpsertMany(ctx, []schema.MovieRecord{
		{Year: 1980, Title: "Test Movie", Studios: "Studio B", Producers: "Producer B", Winner: false},
	}))
	second, err := store.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)

	got := second[0]
	assert.Equal(t, first[0].ID, got.ID)
	assert.Equal(t, "Studio B", got.Studios)
	assert.Equal(t, "Producer B", got.Producers)
	assert.False(t, got.Winner)
	assert.True(t, got.CreatedAt.Equal(first[0].CreatedAt))
	assert.True(t, got.UpdatedAt.After(first[0].UpdatedAt))
}

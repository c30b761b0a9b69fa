package moviestore

import (
	"context"
	"testing"
	"time"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newMovie(id string, year int, title, producers string, winner bool, at time.Time) schema.Movie {
	return schema.Movie{
		ID:        id,
		Year:      year,
		Title:     title,
		Studios:   "Studio " + id,
		Producers: producers,
		Winner:    winner,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

// exerciseMovieStore checks the upsert contract shared by every backend.
func exerciseMovieStore(t *testing.T, store contract.MovieStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.BulkUpsert(ctx, nil))

	first := []schema.Movie{
		newMovie("id-1", 1981, "Mommie Dearest", "Frank Yablans", true, baseTime),
		newMovie("id-2", 1980, "Can't Stop the Music", "Allan Carr", true, baseTime),
		newMovie("id-3", 1980, "Cruising", "Jerry Weintraub", false, baseTime),
	}
	require.NoError(t, store.BulkUpsert(ctx, first))

	movies, err := store.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, "Can't Stop the Music", movies[0].Title)
	assert.Equal(t, "Cruising", movies[1].Title)
	assert.Equal(t, "Mommie Dearest", movies[2].Title)
	assert.Equal(t, "id-2", movies[0].ID)
	assert.True(t, movies[0].CreatedAt.Equal(baseTime))

	// Same key again: fields change, id and createdAt stay.
	later := baseTime.Add(time.Hour)
	update := newMovie("id-new", 1980, "Cruising", "William Friedkin", true, later)
	update.Studios = "Lorimar"
	require.NoError(t, store.BulkUpsert(ctx, []schema.Movie{update}))

	movies, err = store.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	cruising := movies[1]
	assert.Equal(t, "id-3", cruising.ID)
	assert.Equal(t, "Lorimar", cruising.Studios)
	assert.Equal(t, "William Friedkin", cruising.Producers)
	assert.True(t, cruising.Winner)
	assert.True(t, cruising.CreatedAt.Equal(baseTime))
	assert.True(t, cruising.UpdatedAt.Equal(later))

	// Matching is exact: a different casing is a different record.
	require.NoError(t, store.BulkUpsert(ctx, []schema.Movie{
		newMovie("id-4", 1980, "CRUISING", "Someone Else", false, later),
	}))
	movies, err = store.ListMovies(ctx)
	require.NoError(t, err)
	assert.Len(t, movies, 4)

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 4, status.TotalMovies)
	assert.Equal(t, 3, status.TotalWinners)
	assert.True(t, status.OldestUpdate.Equal(baseTime))
	assert.True(t, status.LastUpdate.Equal(later))
}

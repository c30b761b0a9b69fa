package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/awardgap/internal/moviestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulateFromFile(t *testing.T) {
	ctx := context.Background()
	mgr := moviestore.NewManager(moviestore.NewMemoryStore())
	path := filepath.Join(t.TempDir(), "movielist.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleList), 0o600))

	result, err := PopulateFromFile(ctx, mgr, path)
	require.NoError(t, err)
	assert.Equal(t, 8, result.Count)

	_, err = PopulateFromFile(ctx, mgr, filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("year;title\n"), 0o600))
	_, err = PopulateFromFile(ctx, mgr, path)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestPopulateFromFile_BundledMovieList(t *testing.T) {
	ctx := context.Background()
	mgr := moviestore.NewManager(moviestore.NewMemoryStore())

	result, err := PopulateFromFile(ctx, mgr, filepath.Join("..", "testdata", "movielist.csv"))
	require.NoError(t, err)
	assert.Equal(t, 28, result.Count)

	report, err := GetProducerIntervals(ctx, mgr)
	require.NoError(t, err)
	require.Len(t, report.Min, 1)
	require.Len(t, report.Max, 1)
	assert.Equal(t, "Joel Silver", report.Min[0].Producer)
	assert.Equal(t, 1, report.Min[0].Interval)
	assert.Equal(t, "Matthew Vaughn", report.Max[0].Producer)
	assert.Equal(t, 13, report.Max[0].Interval)
}

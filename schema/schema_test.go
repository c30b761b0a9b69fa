package schema_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/huangsam/awardgap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyIntervalReportEncodesEmptyLists(t *testing.T) {
	report := schema.EmptyIntervalReport()
	assert.True(t, report.IsEmpty())

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"min":[],"max":[]}`, string(data))
}

func TestProducerIntervalJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(schema.ProducerInterval{
		Producer:     "Matthew Vaughn",
		Interval:     13,
		PreviousWin:  2002,
		FollowingWin: 2015,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"producer":"Matthew Vaughn","interval":13,"previousWin":2002,"followingWin":2015}`, string(data))
}

func TestMovieRecord(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	m := schema.Movie{
		ID:        "abc",
		Year:      1980,
		Title:     "Can't Stop the Music",
		Studios:   "Associated Film Distribution",
		Producers: "Allan Carr",
		Winner:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	assert.Equal(t, schema.MovieRecord{
		Year:      1980,
		Title:     "Can't Stop the Music",
		Studios:   "Associated Film Distribution",
		Producers: "Allan Carr",
		Winner:    true,
	}, m.Record())
}

func TestDatabaseBackendHelpers(t *testing.T) {
	tests := []struct {
		backend  schema.DatabaseBackend
		needsDSN bool
		isSQL    bool
	}{
		{schema.SQLiteBackend, false, true},
		{schema.MySQLBackend, true, true},
		{schema.PostgreSQLBackend, true, true},
		{schema.MongoDBBackend, true, false},
		{schema.NoneBackend, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			assert.Equal(t, tt.needsDSN, tt.backend.RequiresConnectionString())
			assert.Equal(t, tt.isSQL, tt.backend.IsSQL())
			_, ok := schema.ValidStoreBackends[tt.backend]
			assert.True(t, ok)
		})
	}
}

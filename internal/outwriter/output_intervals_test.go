package outwriter

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleReport = schema.IntervalReport{
	Min: []schema.ProducerInterval{
		{Producer: "Joel Silver", Interval: 1, PreviousWin: 1990, FollowingWin: 1991},
	},
	Max: []schema.ProducerInterval{
		{Producer: "Matthew Vaughn", Interval: 13, PreviousWin: 2002, FollowingWin: 2015},
	},
}

func TestWriteIntervalsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeIntervalsCSV(&buf, sampleReport))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"extreme", "producer", "interval", "previous_win", "following_win"},
		{"min", "Joel Silver", "1", "1990", "1991"},
		{"max", "Matthew Vaughn", "13", "2002", "2015"},
	}, records)
}

func TestWriteIntervalsTable(t *testing.T) {
	cfg := &contract.Config{Width: 120, StoreBackend: schema.SQLiteBackend}
	var buf bytes.Buffer
	require.NoError(t, writeIntervalsTable(&buf, sampleReport, cfg, 5*time.Millisecond))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "PRODUCER")
	assert.Contains(t, out, "Joel Silver")
	assert.Contains(t, out, "Matthew Vaughn")
	assert.Contains(t, out, "Shortest gap: 1 years, longest gap: 13 years")
	assert.Contains(t, out, "Analysis completed in 5ms. Store backend: sqlite")
}

func TestWriteIntervalsTable_Empty(t *testing.T) {
	cfg := &contract.Config{StoreBackend: schema.NoneBackend}
	var buf bytes.Buffer
	require.NoError(t, writeIntervalsTable(&buf, schema.EmptyIntervalReport(), cfg, time.Second))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "No producer has won more than once.\n"))
	assert.NotContains(t, out, "Shortest gap")
}

func TestWriteIntervalResults_Files(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		output schema.OutputMode
		file   string
		check  func(t *testing.T, data []byte)
	}{
		{schema.JSONOut, "report.json", func(t *testing.T, data []byte) {
			assert.JSONEq(t, `{
				"min": [{"producer": "Joel Silver", "interval": 1, "previousWin": 1990, "followingWin": 1991}],
				"max": [{"producer": "Matthew Vaughn", "interval": 13, "previousWin": 2002, "followingWin": 2015}]
			}`, string(data))
		}},
		{schema.CSVOut, "report.csv", func(t *testing.T, data []byte) {
			assert.Contains(t, string(data), "min,Joel Silver,1,1990,1991")
		}},
		{schema.ParquetOut, "report.parquet", func(t *testing.T, data []byte) {
			assert.Equal(t, "PAR1", string(data[:4]))
		}},
		{schema.TextOut, "report.txt", func(t *testing.T, data []byte) {
			assert.Contains(t, string(data), "Matthew Vaughn")
		}},
	}
	for _, tt := range tests {
		t.Run(string(tt.output), func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			cfg := &contract.Config{Output: tt.output, OutputFile: path, StoreBackend: schema.SQLiteBackend}
			require.NoError(t, NewOutWriter().WriteIntervals(sampleReport, cfg, time.Millisecond))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			tt.check(t, data)
		})
	}
}

func TestWriteIntervalResults_EmptyJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path}
	require.NoError(t, WriteIntervalResults(schema.EmptyIntervalReport(), cfg, 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"min": [], "max": []}`, string(data))
}

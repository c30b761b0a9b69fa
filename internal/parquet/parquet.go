// Package parquet provides row types and writers for exporting movies and
// producer intervals with github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/awardgap/schema"
	"github.com/parquet-go/parquet-go"
)

// Movie is one stored movie record.
type Movie struct {
	ID        string    `parquet:"id,snappy"`
	Year      int32     `parquet:"year,snappy"`
	Title     string    `parquet:"title,snappy"`
	Studios   string    `parquet:"studios,snappy"`
	Producers string    `parquet:"producers,snappy"`
	Winner    bool      `parquet:"winner,snappy"`
	CreatedAt time.Time `parquet:"created_at,snappy"`
	UpdatedAt time.Time `parquet:"updated_at,snappy"`
}

// ProducerInterval is one entry of an interval report.
type ProducerInterval struct {
	// Extreme is "min" or "max"
	Extreme      string `parquet:"extreme,dict,snappy"`
	Producer     string `parquet:"producer,snappy"`
	Interval     int32  `parquet:"interval,snappy"`
	PreviousWin  int32  `parquet:"previous_win,snappy"`
	FollowingWin int32  `parquet:"following_win,snappy"`
}

// Extreme labels.
const (
	ExtremeMin = "min"
	ExtremeMax = "max"
)

// write encodes rows to w and flushes the footer.
func write[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

func writeFile[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(file, rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteMovies writes movie rows to w.
func WriteMovies(w io.Writer, rows []Movie) error {
	return write(w, rows)
}

// WriteIntervals writes interval rows to w.
func WriteIntervals(w io.Writer, rows []ProducerInterval) error {
	return write(w, rows)
}

// WriteMoviesParquet writes movie rows to a new file at outputPath.
func WriteMoviesParquet(rows []Movie, outputPath string) error {
	return writeFile(rows, outputPath)
}

// WriteIntervalsParquet writes interval rows to a new file at outputPath.
func WriteIntervalsParquet(rows []ProducerInterval, outputPath string) error {
	return writeFile(rows, outputPath)
}

// ConvertMovies converts stored movies into parquet rows.
func ConvertMovies(movies []schema.Movie) []Movie {
	result := make([]Movie, len(movies))
	for i, m := range movies {
		result[i] = Movie{
			ID:        m.ID,
			Year:      int32(m.Year),
			Title:     m.Title,
			Studios:   m.Studios,
			Producers: m.Producers,
			Winner:    m.Winner,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		}
	}
	return result
}

// ConvertIntervalReport flattens a report into rows, min entries first.
func ConvertIntervalReport(report schema.IntervalReport) []ProducerInterval {
	result := make([]ProducerInterval, 0, len(report.Min)+len(report.Max))
	appendRows := func(extreme string, entries []schema.ProducerInterval) {
		for _, e := range entries {
			result = append(result, ProducerInterval{
				Extreme:      extreme,
				Producer:     e.Producer,
				Interval:     int32(e.Interval),
				PreviousWin:  int32(e.PreviousWin),
				FollowingWin: int32(e.FollowingWin),
			})
		}
	}
	appendRows(ExtremeMin, report.Min)
	appendRows(ExtremeMax, report.Max)
	return result
}

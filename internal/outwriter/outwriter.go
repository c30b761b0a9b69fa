// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the commands.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteIntervals prints the producer interval report using the configured output format.
func (ow *OutWriter) WriteIntervals(report schema.IntervalReport, cfg *contract.Config, duration time.Duration) error {
	return WriteIntervalResults(report, cfg, duration)
}

// WriteMovies prints the stored movies using the configured output format.
func (ow *OutWriter) WriteMovies(movies []schema.Movie, cfg *contract.Config) error {
	return WriteMovieResults(movies, cfg)
}

// WritePopulate prints the outcome of an ingestion using the configured output format.
func (ow *OutWriter) WritePopulate(result schema.PopulateResult, cfg *contract.Config, duration time.Duration) error {
	return WritePopulateResult(result, cfg, duration)
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/parquet"
	"github.com/huangsam/awardgap/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// movieFixedWidth covers the year and winner columns.
const movieFixedWidth = 14

// WriteMovieResults outputs the stored movies, dispatching based on the output format configured.
func WriteMovieResults(movies []schema.Movie, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, movies)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMoviesCSV(w, movies)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteMovies(w, parquet.ConvertMovies(movies))
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMoviesTable(w, movies, cfg)
		}, "Wrote table")
	}
	return nil
}

// writeMoviesCSV writes movies in the semicolon-delimited list format so the
// output can be ingested again. Trailing columns are ignored on ingestion.
func writeMoviesCSV(w io.Writer, movies []schema.Movie) error {
	header := []string{
		schema.ColumnYear,
		schema.ColumnTitle,
		schema.ColumnStudios,
		schema.ColumnProducers,
		schema.ColumnWinner,
		"id",
		"createdAt",
		"updatedAt",
	}
	return writeCSVWithHeader(w, ';', header, func(cw *csv.Writer) error {
		for _, m := range movies {
			winner := ""
			if m.Winner {
				winner = schema.WinnerToken
			}
			record := []string{
				strconv.Itoa(m.Year),
				m.Title,
				m.Studios,
				m.Producers,
				winner,
				m.ID,
				m.CreatedAt.Format(time.RFC3339),
				m.UpdatedAt.Format(time.RFC3339),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeMoviesTable generates and writes the human-readable table.
func writeMoviesTable(w io.Writer, movies []schema.Movie, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Year", "Title", "Studios", "Producers", "Winner"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	winnerLabel := colorizer(cfg, contract.WinnerColor)
	textWidth := getMaxTextColumnWidth(cfg, movieFixedWidth, 3)

	winners := 0
	data := make([][]string, 0, len(movies))
	for _, m := range movies {
		winner := ""
		if m.Winner {
			winner = winnerLabel(schema.WinnerToken)
			winners++
		}
		data = append(data, []string{
			strconv.Itoa(m.Year),
			contract.TruncateText(m.Title, textWidth),
			contract.TruncateText(m.Studios, textWidth),
			contract.TruncateText(m.Producers, textWidth),
			winner,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d movies (%d winners). Store backend: %s\n", len(movies), winners, cfg.StoreBackend)
	return err
}

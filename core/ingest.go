package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/awardgap/schema"
)

// Delimiter separates columns in the movie list.
const Delimiter = ';'

// Structural ingestion errors.
var (
	ErrNoColumns      = errors.New("columns configuration is required")
	ErrMalformedInput = errors.New("invalid CSV format")
	ErrEmptyInput     = errors.New("CSV file is empty")
	ErrMissingColumns = errors.New("missing required columns")
	ErrValidation     = errors.New("validation errors")
)

// MissingColumnsError lists every declared column absent from the header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingColumns, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnsError) Unwrap() error { return ErrMissingColumns }

// ValidationError carries one message per invalid data row.
type ValidationError struct {
	Rows []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v:\n%s", ErrValidation, strings.Join(e.Rows, "\n"))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Ingest parses semicolon-delimited text with a header row and validates every
// data row against specs. The result preserves input order. Any failure
// aborts the whole call with no partial result.
func Ingest(raw string, specs []ColumnSpec) ([]TypedRow, error) {
	if len(specs) == 0 {
		return nil, ErrNoColumns
	}
	header, rows, err := parseRows(strings.NewReader(strings.TrimPrefix(raw, "\ufeff")))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[name] = struct{}{}
	}
	var missing []string
	for _, spec := range specs {
		if _, ok := present[spec.Name]; !ok {
			missing = append(missing, spec.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	typed := make([]TypedRow, 0, len(rows))
	var failures []string
	for i, row := range rows {
		out, problems := ValidateRow(row, specs)
		if len(problems) > 0 {
			// Row numbers are 1-based and count the header.
			failures = append(failures, fmt.Sprintf("Row %d: %s", i+2, strings.Join(problems, ", ")))
			continue
		}
		typed = append(typed, out)
	}
	if len(failures) > 0 {
		return nil, &ValidationError{Rows: failures}
	}
	return typed, nil
}

// parseRows reads the header and the non-blank data rows, trimming every cell.
func parseRows(r io.Reader) ([]string, []RawRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	var header []string
	var rows []RawRow
	for _, record := range records {
		if isBlank(record) {
			continue
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if header == nil {
			header = record
			continue
		}
		if len(record) != len(header) {
			return nil, nil, ErrMalformedInput
		}
		row := make(RawRow, len(header))
		for i, name := range header {
			row[name] = record[i]
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func isBlank(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}

// ParseMovies ingests a movie list and converts the rows into records.
func ParseMovies(raw string) ([]schema.MovieRecord, error) {
	rows, err := Ingest(raw, MovieColumns())
	if err != nil {
		return nil, err
	}
	records := make([]schema.MovieRecord, len(rows))
	for i, row := range rows {
		records[i] = movieFromRow(row)
	}
	return records, nil
}

func movieFromRow(row TypedRow) schema.MovieRecord {
	year, _ := row[schema.ColumnYear].(int)
	title, _ := row[schema.ColumnTitle].(string)
	studios, _ := row[schema.ColumnStudios].(string)
	producers, _ := row[schema.ColumnProducers].(string)
	winner, _ := row[schema.ColumnWinner].(bool)
	return schema.MovieRecord{
		Year:      year,
		Title:     title,
		Studios:   studios,
		Producers: producers,
		Winner:    winner,
	}
}

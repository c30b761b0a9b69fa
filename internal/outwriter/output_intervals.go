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

// intervalFixedWidth covers the extreme, interval and win year columns.
const intervalFixedWidth = 40

// WriteIntervalResults outputs the interval report, dispatching based on the output format configured.
func WriteIntervalResults(report schema.IntervalReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIntervalsCSV(w, report)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteIntervalsParquet(parquet.ConvertIntervalReport(report), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIntervalsTable(w, report, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeIntervalsCSV writes one line per interval with the extreme it belongs to.
func writeIntervalsCSV(w io.Writer, report schema.IntervalReport) error {
	header := []string{"extreme", "producer", "interval", "previous_win", "following_win"}
	return writeCSVWithHeader(w, ',', header, func(cw *csv.Writer) error {
		for _, row := range parquet.ConvertIntervalReport(report) {
			record := []string{
				row.Extreme,
				row.Producer,
				strconv.Itoa(int(row.Interval)),
				strconv.Itoa(int(row.PreviousWin)),
				strconv.Itoa(int(row.FollowingWin)),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeIntervalsTable generates and writes the human-readable table.
func writeIntervalsTable(w io.Writer, report schema.IntervalReport, cfg *contract.Config, duration time.Duration) error {
	if report.IsEmpty() {
		if _, err := fmt.Fprintln(w, "No producer has won more than once."); err != nil {
			return err
		}
		return writeIntervalsSummary(w, report, cfg, duration)
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Extreme", "Producer", "Interval", "Previous Win", "Following Win"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	minLabel := colorizer(cfg, contract.MinColor)
	maxLabel := colorizer(cfg, contract.MaxColor)
	producerWidth := getMaxTextColumnWidth(cfg, intervalFixedWidth, 1)

	var data [][]string
	appendRows := func(label string, entries []schema.ProducerInterval) {
		for _, e := range entries {
			data = append(data, []string{
				label,
				contract.TruncateText(e.Producer, producerWidth),
				strconv.Itoa(e.Interval),
				strconv.Itoa(e.PreviousWin),
				strconv.Itoa(e.FollowingWin),
			})
		}
	}
	appendRows(minLabel(parquet.ExtremeMin), report.Min)
	appendRows(maxLabel(parquet.ExtremeMax), report.Max)

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	return writeIntervalsSummary(w, report, cfg, duration)
}

func writeIntervalsSummary(w io.Writer, report schema.IntervalReport, cfg *contract.Config, duration time.Duration) error {
	if !report.IsEmpty() {
		if _, err := fmt.Fprintf(w, "Shortest gap: %d years, longest gap: %d years\n",
			report.Min[0].Interval, report.Max[0].Interval); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Analysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend)
	return err
}

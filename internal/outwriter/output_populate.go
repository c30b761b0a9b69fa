package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/schema"
)

// WritePopulateResult outputs the ingestion summary. Parquet has no summary
// shape, so it falls back to the text line on stdout.
func WritePopulateResult(result schema.PopulateResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, ',', []string{"message", "count"}, func(cw *csv.Writer) error {
				return cw.Write([]string{result.Message, strconv.Itoa(result.Count)})
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile("", func(w io.Writer) error {
			return writePopulateText(w, result, cfg, duration)
		}, "")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePopulateText(w, result, cfg, duration)
		}, "Wrote summary")
	}
}

func writePopulateText(w io.Writer, result schema.PopulateResult, cfg *contract.Config, duration time.Duration) error {
	headline := colorizer(cfg, contract.HeadlineColor)
	_, err := fmt.Fprintf(w, "%s: %d movies upserted in %v (store backend: %s)\n",
		headline(result.Message), result.Count, duration, cfg.StoreBackend)
	return err
}

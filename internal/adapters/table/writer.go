// Package table assembles per-combination trial records into one
// tab-separated table.
package table

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer serializes the aggregated result table. Row order follows the grid
// order of the input, so the artifact is deterministic across runs.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write flattens the per-combination record sequences in grid order into a
// single TSV at path and returns the number of data rows written.
func (w *Writer) Write(path string, results [][]domain.TrialRecord) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return 0, zerr.Wrap(err, "failed to create results directory")
	}

	//nolint:gosec // Path comes from harness settings
	f, err := os.Create(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to create result table"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	cw := csv.NewWriter(f)
	cw.Comma = '\t'

	if err := cw.Write(domain.Columns()); err != nil {
		return 0, zerr.Wrap(err, "failed to write table header")
	}

	rows := 0
	for _, records := range results {
		for _, rec := range records {
			if err := cw.Write(rowFor(rec)); err != nil {
				return rows, zerr.Wrap(err, "failed to write table row")
			}
			rows++
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, zerr.With(zerr.Wrap(err, "failed to flush result table"), "path", path)
	}
	return rows, nil
}

// rowFor renders one record in the fixed column order, projecting its
// parameters onto the global key union.
func rowFor(rec domain.TrialRecord) []string {
	row := []string{
		rec.Dataset,
		strconv.Itoa(rec.Entities),
		strconv.Itoa(rec.Relations),
		strconv.Itoa(rec.Triples),
		strconv.Itoa(rec.Trial),
		rec.Model,
	}
	row = append(row, rec.ParamColumns()...)
	row = append(row, strconv.FormatFloat(rec.Seconds, 'g', -1, 64))
	for _, metric := range domain.Metrics() {
		row = append(row, strconv.FormatFloat(rec.Metrics[metric], 'g', -1, 64))
	}
	return row
}

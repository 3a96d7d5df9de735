// Package app wires the harness capabilities into the benchmark use cases.
package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// ResultTableName is the aggregated table written by a full run.
	ResultTableName = "results.tsv"
	// SmokeTableName is the aggregated table written by a smoke run.
	SmokeTableName = "test_results.tsv"
)

// GridScheduler executes a combination grid with bounded concurrency.
type GridScheduler interface {
	Execute(ctx context.Context, grid []domain.Combination, workers int, settings domain.RunSettings) ([][]domain.TrialRecord, error)
}

// TableWriter serializes aggregated results to a file.
type TableWriter interface {
	Write(path string, results [][]domain.TrialRecord) (int, error)
}

// RunOptions are the per-invocation overrides of the configured settings.
type RunOptions struct {
	// BatchSize overrides the configured batch size when positive.
	BatchSize int
	// Trials overrides the configured trial count when non-negative. Zero
	// is meaningful and requests a single unresampled trial.
	Trials int
	// Workers overrides the configured worker bound when positive.
	Workers int
	// Rebuild recomputes every combination, ignoring cached results.
	Rebuild bool
	// Smoke restricts the grid to the smallest datasets and writes to a
	// separate table.
	Smoke bool
}

// App implements the benchmark use cases on top of the injected
// capabilities.
type App struct {
	settings  domain.Settings
	registry  ports.DatasetRegistry
	scheduler GridScheduler
	tables    TableWriter
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates an App.
func New(
	settings domain.Settings,
	registry ports.DatasetRegistry,
	scheduler GridScheduler,
	tables TableWriter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		settings:  settings,
		registry:  registry,
		scheduler: scheduler,
		tables:    tables,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run executes the benchmark grid and writes the aggregated table. A full
// run whose table already exists is skipped unless a rebuild is requested.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	defer a.telemetry.Close() //nolint:errcheck // Best effort flush on exit

	tablePath := a.tablePath(opts.Smoke)
	if !opts.Rebuild && !opts.Smoke {
		if _, err := os.Stat(tablePath); err == nil {
			a.logger.Info("result table already exists, skipping run", "path", tablePath)
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to check result table"), "path", tablePath)
		}
	}

	policy := domain.EnumerationPolicy{
		Smoke:      opts.Smoke,
		SmokeCount: a.settings.SmokeCount,
		Cutoff:     a.settings.CutoffDataset,
	}
	datasets, err := domain.SelectDatasets(a.registry.Datasets(), policy)
	if err != nil {
		return err
	}
	grid := domain.Grid(datasets, domain.DefaultConfigurations())

	settings := domain.RunSettings{
		BatchSize: a.settings.BatchSize,
		Trials:    a.settings.Trials,
		Rebuild:   opts.Rebuild,
	}
	if opts.BatchSize > 0 {
		settings.BatchSize = opts.BatchSize
	}
	if opts.Trials >= 0 {
		settings.Trials = opts.Trials
	}
	workers := a.settings.Workers
	if opts.Workers > 0 {
		workers = opts.Workers
	}

	a.logger.Info("starting benchmark",
		"datasets", len(datasets),
		"combinations", len(grid),
		"trials", settings.Trials,
		"workers", workers)

	results, err := a.scheduler.Execute(ctx, grid, workers, settings)
	if err != nil {
		return err
	}

	rows, err := a.tables.Write(tablePath, results)
	if err != nil {
		return err
	}
	a.logger.Info("benchmark complete", "rows", rows, "path", tablePath)
	return nil
}

// Clean removes cached trial artifacts and aggregated tables.
func (a *App) Clean() error {
	if err := os.RemoveAll(a.settings.RunsDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove cached runs"), "path", a.settings.RunsDir)
	}
	for _, name := range []string{ResultTableName, SmokeTableName} {
		path := filepath.Join(a.settings.ResultsDir, name)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to remove result table"), "path", path)
		}
	}
	a.logger.Info("removed cached runs and result tables")
	return nil
}

func (a *App) tablePath(smoke bool) string {
	name := ResultTableName
	if smoke {
		name = SmokeTableName
	}
	return filepath.Join(a.settings.ResultsDir, name)
}

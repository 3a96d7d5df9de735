// Package runner implements the per-combination trial runner.
package runner

import (
	"context"
	"time"

	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes the trial sequence for one (dataset, configuration)
// combination, consulting the result cache before computing anything.
type Runner struct {
	source    ports.DatasetSource
	models    ports.ModelFactory
	evaluator ports.Evaluator
	store     ports.TrialStore
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewRunner creates a Runner with the given capabilities.
func NewRunner(
	source ports.DatasetSource,
	models ports.ModelFactory,
	evaluator ports.Evaluator,
	store ports.TrialStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Runner {
	return &Runner{
		source:    source,
		models:    models,
		evaluator: evaluator,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run produces the ordered trial-record sequence for the combination. On a
// validated cache hit the cached sequence is returned unchanged and no
// computation happens. Any failure aborts the whole sequence; partial
// results are never persisted.
func (r *Runner) Run(ctx context.Context, comb domain.Combination, settings domain.RunSettings) (records []domain.TrialRecord, err error) {
	vertex := r.telemetry.Record(ctx, comb.Name())
	defer func() { vertex.Complete(err) }()

	if !settings.Rebuild {
		entry, getErr := r.store.Get(comb)
		if getErr != nil {
			err = getErr
			return nil, err
		}
		if entry != nil {
			// A hit must match the requested trial count and the current
			// logic version; anything else is stale and recomputed.
			if entry.Trials == settings.Trials && entry.Version == domain.CacheVersion {
				r.logger.Debug("cache hit", "combination", comb.Name())
				vertex.Cached()
				return entry.Records, nil
			}
			r.logger.Debug("stale cache entry, recomputing",
				"combination", comb.Name(),
				"cached_trials", entry.Trials,
				"requested_trials", settings.Trials)
		}
	}

	base, err := r.source.Load(ctx, comb.Dataset)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to load dataset"), "dataset", comb.Dataset.Name)
		return nil, err
	}

	count := settings.Trials
	if count == 0 {
		count = 1
	}
	records = make([]domain.TrialRecord, 0, count)
	for trial := 0; trial < count; trial++ {
		rec, trialErr := r.runTrial(ctx, comb, base, trial, settings)
		if trialErr != nil {
			err = zerr.With(trialErr, "trial", trial)
			return nil, err
		}
		records = append(records, rec)
	}

	if err = r.store.Put(comb, settings.Trials, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Runner) runTrial(ctx context.Context, comb domain.Combination, base ports.Dataset, trial int, settings domain.RunSettings) (domain.TrialRecord, error) {
	ds := base
	if settings.Trials != 0 {
		// The seed is the trial index, so re-running trial i always yields
		// the same split.
		remixed, err := base.Remix(int64(trial))
		if err != nil {
			return domain.TrialRecord{}, zerr.Wrap(err, "failed to resample dataset")
		}
		ds = remixed
	}

	if ds.Validation() == nil {
		return domain.TrialRecord{}, zerr.With(domain.ErrMissingValidation, "dataset", comb.Dataset.Name)
	}

	model, err := r.models.Construct(comb.Config, ds.Training())
	if err != nil {
		return domain.TrialRecord{}, zerr.Wrap(err, "failed to construct model")
	}

	start := time.Now()
	metrics, err := r.evaluator.Evaluate(ctx, model, ds, settings.BatchSize)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		return domain.TrialRecord{}, zerr.Wrap(err, "evaluation failed")
	}

	values := make(map[string]float64, len(domain.Metrics()))
	for _, name := range domain.Metrics() {
		v, ok := metrics[name]
		if !ok {
			return domain.TrialRecord{}, zerr.With(domain.ErrMetricMissing, "metric", name)
		}
		values[name] = v
	}

	// Counts are reported from the base dataset, not the resampled split.
	entities, relations, triples := base.Counts()
	return domain.TrialRecord{
		Dataset:   comb.Dataset.Name,
		Entities:  entities,
		Relations: relations,
		Triples:   triples,
		Trial:     trial,
		Model:     string(comb.Config.Kind),
		Params:    comb.Config.Params(),
		Seconds:   elapsed,
		Metrics:   values,
	}, nil
}

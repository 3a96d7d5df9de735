// Package scheduler fans grid combinations out over a bounded worker pool
// while keeping results in grid order.
package scheduler

import (
	"context"

	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// CombinationRunner produces the trial-record sequence for one combination.
type CombinationRunner interface {
	Run(ctx context.Context, comb domain.Combination, settings domain.RunSettings) ([]domain.TrialRecord, error)
}

// Scheduler executes a grid of combinations concurrently.
type Scheduler struct {
	runner CombinationRunner
	logger ports.Logger
}

// NewScheduler creates a Scheduler backed by the given runner.
func NewScheduler(runner CombinationRunner, logger ports.Logger) *Scheduler {
	return &Scheduler{
		runner: runner,
		logger: logger,
	}
}

// Execute runs every combination with at most workers in flight and returns
// one record sequence per combination, in the same order as the grid. The
// first failure cancels the remaining work and is returned.
func (s *Scheduler) Execute(ctx context.Context, grid []domain.Combination, workers int, settings domain.RunSettings) ([][]domain.TrialRecord, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([][]domain.TrialRecord, len(grid))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, comb := range grid {
		group.Go(func() error {
			s.logger.Debug("starting combination", "combination", comb.Name())
			records, err := s.runner.Run(ctx, comb, settings)
			if err != nil {
				return zerr.With(err, "combination", comb.Name())
			}
			results[i] = records
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

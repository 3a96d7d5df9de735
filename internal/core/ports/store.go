package ports

import "github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"

// TrialStore is the durable per-combination result cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type TrialStore interface {
	// Get retrieves the cache entry for a combination.
	// Returns nil, nil on a miss. An unreadable or corrupt artifact is an
	// error, never a silent miss.
	Get(comb domain.Combination) (*domain.CacheEntry, error)

	// Put writes the full record sequence for a combination in one shot.
	// It is called exactly once per combination, after all trials complete.
	Put(comb domain.Combination, trials int, records []domain.TrialRecord) error
}

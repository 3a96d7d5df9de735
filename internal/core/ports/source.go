// Package ports defines the capability interfaces the orchestration core
// calls through.
package ports

import (
	"context"

	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
)

// Dataset is a loaded dataset with fixed training/validation/testing splits.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type Dataset interface {
	// Counts returns the entity, relation, and training-triple counts.
	Counts() (entities, relations, triples int)

	// Remix deterministically rebuilds the three splits from the combined
	// triple pool. The same seed always yields the same split.
	Remix(seed int64) (Dataset, error)

	// Training returns the training split.
	Training() []domain.Triple

	// Validation returns the validation split, or nil when the dataset has
	// none.
	Validation() []domain.Triple

	// Testing returns the testing split.
	Testing() []domain.Triple
}

// DatasetSource loads datasets by descriptor.
type DatasetSource interface {
	Load(ctx context.Context, desc domain.DatasetDescriptor) (Dataset, error)
}

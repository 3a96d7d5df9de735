package ports

import "github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"

// DatasetRegistry enumerates the datasets available to the harness.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type DatasetRegistry interface {
	// Datasets returns all known dataset descriptors, in no particular
	// order; the grid generator applies the canonical size ordering.
	Datasets() []domain.DatasetDescriptor
}

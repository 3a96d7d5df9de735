// Package registry holds the fixed dataset registry.
package registry

import (
	"slices"

	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
)

var _ ports.DatasetRegistry = (*Registry)(nil)

// builtin lists the knowledge-graph benchmark datasets with their
// training-split statistics. Entity/relation/triple counts refer to the
// training partition.
var builtin = []domain.DatasetDescriptor{
	{Name: "Countries", Entities: 271, Relations: 2, Triples: 1110},
	{Name: "Nations", Entities: 14, Relations: 55, Triples: 1592},
	{Name: "UMLS", Entities: 135, Relations: 46, Triples: 5216},
	{Name: "Kinships", Entities: 104, Relations: 25, Triples: 8544},
	{Name: "CoDExSmall", Entities: 2034, Relations: 42, Triples: 32888},
	{Name: "WN18RR", Entities: 40943, Relations: 11, Triples: 86835},
	{Name: "WN18", Entities: 40943, Relations: 18, Triples: 141442},
	{Name: "CoDExMedium", Entities: 17050, Relations: 51, Triples: 185584},
	{Name: "FB15k237", Entities: 14505, Relations: 237, Triples: 272115},
	{Name: "FB15k", Entities: 14951, Relations: 1345, Triples: 483142},
	{Name: "CoDExLarge", Entities: 77951, Relations: 69, Triples: 551193},
	{Name: "YAGO310", Entities: 123182, Relations: 37, Triples: 1079040},
}

// Registry implements ports.DatasetRegistry over the built-in table.
type Registry struct{}

// New creates the built-in registry.
func New() *Registry {
	return &Registry{}
}

// Datasets returns a copy of the built-in descriptor list.
func (r *Registry) Datasets() []domain.DatasetDescriptor {
	return slices.Clone(builtin)
}

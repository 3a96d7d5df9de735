// Package synthetic provides deterministic in-process implementations of the
// dataset, model, and evaluator capabilities. It stands in for a real
// knowledge-graph stack so the harness runs end-to-end and stays testable;
// scores are derived from training statistics, not learned embeddings.
package synthetic

import (
	"context"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DatasetSource = (*Source)(nil)

// Source generates datasets matching a descriptor's statistics. The same
// descriptor always yields the same triples: generation is seeded from the
// dataset name.
type Source struct{}

// NewSource creates a Source.
func NewSource() *Source {
	return &Source{}
}

// Load builds the dataset for a descriptor with an 80/10/10-shaped
// training/validation/testing split.
func (s *Source) Load(_ context.Context, desc domain.DatasetDescriptor) (ports.Dataset, error) {
	if desc.Entities < 2 || desc.Relations < 1 || desc.Triples < 1 {
		return nil, zerr.With(zerr.New("descriptor has degenerate counts"), "dataset", desc.Name)
	}

	trainN := desc.Triples
	validN := max(1, trainN/8)
	testN := max(1, trainN/8)

	//nolint:gosec // Deterministic generation, not security-sensitive
	rng := rand.New(rand.NewSource(int64(xxhash.Sum64String(desc.Name))))
	pool := make([]domain.Triple, trainN+validN+testN)
	for i := range pool {
		pool[i] = domain.Triple{
			Head:     rng.Intn(desc.Entities),
			Relation: rng.Intn(desc.Relations),
			Tail:     rng.Intn(desc.Entities),
		}
	}

	return &dataset{
		entities:   desc.Entities,
		relations:  desc.Relations,
		training:   pool[:trainN],
		validation: pool[trainN : trainN+validN],
		testing:    pool[trainN+validN:],
	}, nil
}

type dataset struct {
	entities   int
	relations  int
	training   []domain.Triple
	validation []domain.Triple
	testing    []domain.Triple
}

func (d *dataset) Counts() (int, int, int) {
	return d.entities, d.relations, len(d.training)
}

func (d *dataset) Training() []domain.Triple {
	return d.training
}

func (d *dataset) Validation() []domain.Triple {
	return d.validation
}

func (d *dataset) Testing() []domain.Triple {
	return d.testing
}

// Remix rebuilds the three splits from the combined triple pool with a
// seed-determined permutation, preserving split sizes. The same seed always
// yields the same split.
func (d *dataset) Remix(seed int64) (ports.Dataset, error) {
	pool := make([]domain.Triple, 0, len(d.training)+len(d.validation)+len(d.testing))
	pool = append(pool, d.training...)
	pool = append(pool, d.validation...)
	pool = append(pool, d.testing...)

	//nolint:gosec // Deterministic resampling, not security-sensitive
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	trainN := len(d.training)
	validN := len(d.validation)
	return &dataset{
		entities:   d.entities,
		relations:  d.relations,
		training:   pool[:trainN],
		validation: pool[trainN : trainN+validN],
		testing:    pool[trainN+validN:],
	}, nil
}

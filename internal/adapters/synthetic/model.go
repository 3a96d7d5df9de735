package synthetic

import (
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModelFactory = (*Factory)(nil)

// Factory constructs the non-parametric baseline models from a training
// split and a model configuration.
type Factory struct{}

// NewFactory creates a Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Construct builds the model instance for the configuration's kind.
func (f *Factory) Construct(cfg domain.ModelConfiguration, training []domain.Triple) (ports.ScorableModel, error) {
	switch cfg.Kind {
	case domain.KindMarginalDistribution:
		if cfg.Marginal == nil {
			return nil, zerr.With(domain.ErrMalformedConfiguration, "kind", string(cfg.Kind))
		}
		return newMarginalModel(*cfg.Marginal, training), nil
	case domain.KindSoftInverseTriple:
		if cfg.SoftInverse == nil {
			return nil, zerr.With(domain.ErrMalformedConfiguration, "kind", string(cfg.Kind))
		}
		return newSoftInverseModel(*cfg.SoftInverse, training), nil
	default:
		return nil, zerr.With(domain.ErrUnknownModelKind, "kind", string(cfg.Kind))
	}
}

// marginalModel scores triples by the marginal frequencies of their
// components in the training split, with each margin toggled by its flag.
type marginalModel struct {
	params       domain.MarginalParams
	entityFreq   map[int]float64
	relationFreq map[int]float64
}

func newMarginalModel(params domain.MarginalParams, training []domain.Triple) *marginalModel {
	entityFreq := make(map[int]float64)
	relationFreq := make(map[int]float64)
	n := float64(len(training))
	for _, t := range training {
		entityFreq[t.Head] += 1 / (2 * n)
		entityFreq[t.Tail] += 1 / (2 * n)
		relationFreq[t.Relation] += 1 / n
	}
	return &marginalModel{
		params:       params,
		entityFreq:   entityFreq,
		relationFreq: relationFreq,
	}
}

func (m *marginalModel) Kind() domain.ModelKind {
	return domain.KindMarginalDistribution
}

func (m *marginalModel) Score(t domain.Triple) float64 {
	score := 1.0
	if m.params.EntityMargin {
		score *= m.entityFreq[t.Head] * m.entityFreq[t.Tail]
	}
	if m.params.RelationMargin {
		score *= m.relationFreq[t.Relation]
	}
	return score
}

type entityPair struct {
	head, tail int
}

// softInverseModel scores a candidate triple by the soft similarity between
// its relation and the relations observed on the same (head, tail) pair in
// training. Similarities below the threshold are dropped at construction.
type softInverseModel struct {
	pairRelations map[entityPair][]int
	similarity    map[int]map[int]float64
}

func newSoftInverseModel(params domain.SoftInverseParams, training []domain.Triple) *softInverseModel {
	pairRelations := make(map[entityPair][]int)
	relationCount := make(map[int]float64)
	for _, t := range training {
		pair := entityPair{head: t.Head, tail: t.Tail}
		pairRelations[pair] = append(pairRelations[pair], t.Relation)
		relationCount[t.Relation]++
	}

	// Co-occurrence of relations on shared entity pairs, normalized by the
	// first relation's frequency.
	cooc := make(map[int]map[int]float64)
	for _, relations := range pairRelations {
		for _, r1 := range relations {
			for _, r2 := range relations {
				if cooc[r1] == nil {
					cooc[r1] = make(map[int]float64)
				}
				cooc[r1][r2] += 1 / relationCount[r1]
			}
		}
	}

	if params.Threshold != nil {
		for r1, row := range cooc {
			for r2, sim := range row {
				if sim < *params.Threshold {
					delete(row, r2)
				}
			}
			if len(row) == 0 {
				delete(cooc, r1)
			}
		}
	}

	return &softInverseModel{
		pairRelations: pairRelations,
		similarity:    cooc,
	}
}

func (m *softInverseModel) Kind() domain.ModelKind {
	return domain.KindSoftInverseTriple
}

func (m *softInverseModel) Score(t domain.Triple) float64 {
	row := m.similarity[t.Relation]
	if row == nil {
		return 0
	}
	score := 0.0
	for _, observed := range m.pairRelations[entityPair{head: t.Head, tail: t.Tail}] {
		score += row[observed]
	}
	return score
}

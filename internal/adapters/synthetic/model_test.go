package synthetic

import (
	"testing"

	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainingFixture() []domain.Triple {
	return []domain.Triple{
		{Head: 0, Relation: 0, Tail: 1},
		{Head: 0, Relation: 0, Tail: 2},
		{Head: 0, Relation: 1, Tail: 1},
		{Head: 3, Relation: 1, Tail: 1},
	}
}

func TestFactoryConstructsEachKind(t *testing.T) {
	factory := NewFactory()

	marginal, err := factory.Construct(domain.NewMarginalConfiguration(true, true), trainingFixture())
	require.NoError(t, err)
	assert.Equal(t, domain.KindMarginalDistribution, marginal.Kind())

	soft, err := factory.Construct(domain.NewSoftInverseConfiguration(nil), trainingFixture())
	require.NoError(t, err)
	assert.Equal(t, domain.KindSoftInverseTriple, soft.Kind())
}

func TestFactoryRejectsUnknownKind(t *testing.T) {
	_, err := NewFactory().Construct(domain.ModelConfiguration{Kind: "Bogus"}, trainingFixture())
	assert.ErrorIs(t, err, domain.ErrUnknownModelKind)
}

func TestFactoryRejectsMismatchedVariant(t *testing.T) {
	_, err := NewFactory().Construct(domain.ModelConfiguration{Kind: domain.KindMarginalDistribution}, trainingFixture())
	assert.ErrorIs(t, err, domain.ErrMalformedConfiguration)

	_, err = NewFactory().Construct(domain.ModelConfiguration{Kind: domain.KindSoftInverseTriple}, trainingFixture())
	assert.ErrorIs(t, err, domain.ErrMalformedConfiguration)
}

func TestMarginalModelPrefersFrequentComponents(t *testing.T) {
	model, err := NewFactory().Construct(domain.NewMarginalConfiguration(true, true), trainingFixture())
	require.NoError(t, err)

	// Entity 0 and relation 0 dominate the fixture; entity 3 and relation 1
	// are rarer.
	frequent := model.Score(domain.Triple{Head: 0, Relation: 0, Tail: 1})
	rare := model.Score(domain.Triple{Head: 3, Relation: 1, Tail: 2})
	assert.Greater(t, frequent, rare)
}

func TestMarginalModelIgnoresDisabledMargins(t *testing.T) {
	model, err := NewFactory().Construct(domain.NewMarginalConfiguration(false, false), trainingFixture())
	require.NoError(t, err)

	// With both margins off every triple scores the same constant.
	a := model.Score(domain.Triple{Head: 0, Relation: 0, Tail: 1})
	b := model.Score(domain.Triple{Head: 9, Relation: 9, Tail: 9})
	assert.Equal(t, a, b)
}

func TestMarginalModelEntityMarginOnly(t *testing.T) {
	model, err := NewFactory().Construct(domain.NewMarginalConfiguration(true, false), trainingFixture())
	require.NoError(t, err)

	// Same entities, different relation: relation must not matter.
	a := model.Score(domain.Triple{Head: 0, Relation: 0, Tail: 1})
	b := model.Score(domain.Triple{Head: 0, Relation: 7, Tail: 1})
	assert.Equal(t, a, b)
}

func TestSoftInverseModelScoresCooccurringRelations(t *testing.T) {
	model, err := NewFactory().Construct(domain.NewSoftInverseConfiguration(nil), trainingFixture())
	require.NoError(t, err)

	// Relations 0 and 1 co-occur on the (0, 1) pair.
	known := model.Score(domain.Triple{Head: 0, Relation: 1, Tail: 1})
	assert.Positive(t, known)

	// No relations observed on this pair.
	unknown := model.Score(domain.Triple{Head: 9, Relation: 0, Tail: 9})
	assert.Zero(t, unknown)
}

func TestSoftInverseThresholdPrunesWeakSimilarities(t *testing.T) {
	training := trainingFixture()

	high := 0.9
	pruned, err := NewFactory().Construct(domain.NewSoftInverseConfiguration(&high), training)
	require.NoError(t, err)

	unthresholded, err := NewFactory().Construct(domain.NewSoftInverseConfiguration(nil), training)
	require.NoError(t, err)

	probe := domain.Triple{Head: 0, Relation: 1, Tail: 1}
	assert.LessOrEqual(t, pruned.Score(probe), unthresholded.Score(probe))
}

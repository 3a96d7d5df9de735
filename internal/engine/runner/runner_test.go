package runner

import (
	"context"
	"io"
	"testing"

	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/logger"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/telemetry"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func fullMetrics() map[string]float64 {
	out := make(map[string]float64)
	for _, name := range domain.Metrics() {
		out[name] = 0.5
	}
	return out
}

type runnerMocks struct {
	source    *mocks.MockDatasetSource
	models    *mocks.MockModelFactory
	evaluator *mocks.MockEvaluator
	store     *mocks.MockTrialStore
}

func newTestRunner(t *testing.T) (*Runner, runnerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := runnerMocks{
		source:    mocks.NewMockDatasetSource(ctrl),
		models:    mocks.NewMockModelFactory(ctrl),
		evaluator: mocks.NewMockEvaluator(ctrl),
		store:     mocks.NewMockTrialStore(ctrl),
	}
	r := NewRunner(m.source, m.models, m.evaluator, m.store, telemetry.NewNoOp(), logger.NewWithWriter(io.Discard))
	return r, m
}

func testCombination() domain.Combination {
	return domain.Combination{
		Dataset: domain.DatasetDescriptor{Name: "Nations", Entities: 14, Relations: 55, Triples: 1592},
		Config:  domain.NewMarginalConfiguration(true, false),
	}
}

func stubDataset(ctrl *gomock.Controller) *mocks.MockDataset {
	ds := mocks.NewMockDataset(ctrl)
	ds.EXPECT().Counts().Return(14, 55, 1592).AnyTimes()
	ds.EXPECT().Training().Return([]domain.Triple{{Head: 0, Relation: 0, Tail: 1}}).AnyTimes()
	ds.EXPECT().Validation().Return([]domain.Triple{{Head: 1, Relation: 0, Tail: 2}}).AnyTimes()
	ds.EXPECT().Testing().Return([]domain.Triple{{Head: 2, Relation: 0, Tail: 3}}).AnyTimes()
	return ds
}

func TestRunExecutesEachTrialWithItsIndexAsSeed(t *testing.T) {
	r, m := newTestRunner(t)
	ctrl := gomock.NewController(t)
	comb := testCombination()
	settings := domain.RunSettings{BatchSize: 32, Trials: 3}

	base := stubDataset(ctrl)
	model := mocks.NewMockScorableModel(ctrl)

	m.store.EXPECT().Get(comb).Return(nil, nil)
	m.source.EXPECT().Load(gomock.Any(), comb.Dataset).Return(base, nil)
	for trial := 0; trial < 3; trial++ {
		remixed := stubDataset(ctrl)
		base.EXPECT().Remix(int64(trial)).Return(remixed, nil)
		m.models.EXPECT().Construct(comb.Config, remixed.Training()).Return(model, nil)
		m.evaluator.EXPECT().Evaluate(gomock.Any(), model, remixed, 32).Return(fullMetrics(), nil)
	}
	m.store.EXPECT().Put(comb, 3, gomock.Len(3)).Return(nil)

	records, err := r.Run(context.Background(), comb, settings)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, i, rec.Trial)
		assert.Equal(t, "Nations", rec.Dataset)
		assert.Equal(t, 14, rec.Entities)
		assert.Equal(t, 55, rec.Relations)
		assert.Equal(t, 1592, rec.Triples)
		assert.Equal(t, string(domain.KindMarginalDistribution), rec.Model)
		assert.Len(t, rec.Metrics, len(domain.Metrics()))
	}
}

func TestRunZeroTrialsUsesBaseDatasetWithoutResampling(t *testing.T) {
	r, m := newTestRunner(t)
	ctrl := gomock.NewController(t)
	comb := testCombination()

	base := stubDataset(ctrl)
	model := mocks.NewMockScorableModel(ctrl)

	m.store.EXPECT().Get(comb).Return(nil, nil)
	m.source.EXPECT().Load(gomock.Any(), comb.Dataset).Return(base, nil)
	m.models.EXPECT().Construct(comb.Config, base.Training()).Return(model, nil)
	m.evaluator.EXPECT().Evaluate(gomock.Any(), model, base, 32).Return(fullMetrics(), nil)
	m.store.EXPECT().Put(comb, 0, gomock.Len(1)).Return(nil)

	records, err := r.Run(context.Background(), comb, domain.RunSettings{BatchSize: 32, Trials: 0})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].Trial)
}

func TestRunReturnsCachedRecordsWithoutComputing(t *testing.T) {
	r, m := newTestRunner(t)
	comb := testCombination()

	cached := []domain.TrialRecord{{Dataset: "Nations", Trial: 0}}
	m.store.EXPECT().Get(comb).Return(&domain.CacheEntry{
		Trials:  2,
		Version: domain.CacheVersion,
		Records: cached,
	}, nil)

	records, err := r.Run(context.Background(), comb, domain.RunSettings{BatchSize: 32, Trials: 2})
	require.NoError(t, err)
	assert.Equal(t, cached, records)
}

func TestRunRecomputesWhenCachedTrialCountDiffers(t *testing.T) {
	r, m := newTestRunner(t)
	ctrl := gomock.NewController(t)
	comb := testCombination()

	base := stubDataset(ctrl)
	remixed := stubDataset(ctrl)
	model := mocks.NewMockScorableModel(ctrl)

	m.store.EXPECT().Get(comb).Return(&domain.CacheEntry{
		Trials:  5,
		Version: domain.CacheVersion,
		Records: []domain.TrialRecord{{}},
	}, nil)
	m.source.EXPECT().Load(gomock.Any(), comb.Dataset).Return(base, nil)
	base.EXPECT().Remix(int64(0)).Return(remixed, nil)
	m.models.EXPECT().Construct(comb.Config, remixed.Training()).Return(model, nil)
	m.evaluator.EXPECT().Evaluate(gomock.Any(), model, remixed, 32).Return(fullMetrics(), nil)
	m.store.EXPECT().Put(comb, 1, gomock.Len(1)).Return(nil)

	records, err := r.Run(context.Background(), comb, domain.RunSettings{BatchSize: 32, Trials: 1})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRunRebuildSkipsCacheLookup(t *testing.T) {
	r, m := newTestRunner(t)
	ctrl := gomock.NewController(t)
	comb := testCombination()

	base := stubDataset(ctrl)
	remixed := stubDataset(ctrl)
	model := mocks.NewMockScorableModel(ctrl)

	m.store.EXPECT().Get(gomock.Any()).Times(0)
	m.source.EXPECT().Load(gomock.Any(), comb.Dataset).Return(base, nil)
	base.EXPECT().Remix(int64(0)).Return(remixed, nil)
	m.models.EXPECT().Construct(comb.Config, remixed.Training()).Return(model, nil)
	m.evaluator.EXPECT().Evaluate(gomock.Any(), model, remixed, 32).Return(fullMetrics(), nil)
	m.store.EXPECT().Put(comb, 1, gomock.Len(1)).Return(nil)

	_, err := r.Run(context.Background(), comb, domain.RunSettings{BatchSize: 32, Trials: 1, Rebuild: true})
	require.NoError(t, err)
}

func TestRunFailsWhenValidationSplitMissing(t *testing.T) {
	r, m := newTestRunner(t)
	ctrl := gomock.NewController(t)
	comb := testCombination()

	base := mocks.NewMockDataset(ctrl)
	remixed := mocks.NewMockDataset(ctrl)
	remixed.EXPECT().Validation().Return(nil)

	m.store.EXPECT().Get(comb).Return(nil, nil)
	m.source.EXPECT().Load(gomock.Any(), comb.Dataset).Return(base, nil)
	base.EXPECT().Remix(int64(0)).Return(remixed, nil)
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := r.Run(context.Background(), comb, domain.RunSettings{BatchSize: 32, Trials: 1})
	require.ErrorIs(t, err, domain.ErrMissingValidation)
}

func TestRunDoesNotPersistOnEvaluationFailure(t *testing.T) {
	r, m := newTestRunner(t)
	ctrl := gomock.NewController(t)
	comb := testCombination()

	base := stubDataset(ctrl)
	remixed := stubDataset(ctrl)
	model := mocks.NewMockScorableModel(ctrl)
	evalErr := zerr.New("boom")

	m.store.EXPECT().Get(comb).Return(nil, nil)
	m.source.EXPECT().Load(gomock.Any(), comb.Dataset).Return(base, nil)
	base.EXPECT().Remix(int64(0)).Return(remixed, nil)
	m.models.EXPECT().Construct(comb.Config, remixed.Training()).Return(model, nil)
	m.evaluator.EXPECT().Evaluate(gomock.Any(), model, remixed, 32).Return(nil, evalErr)
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := r.Run(context.Background(), comb, domain.RunSettings{BatchSize: 32, Trials: 1})
	require.ErrorIs(t, err, evalErr)
}

func TestRunFailsWhenEvaluatorOmitsMetric(t *testing.T) {
	r, m := newTestRunner(t)
	ctrl := gomock.NewController(t)
	comb := testCombination()

	base := stubDataset(ctrl)
	remixed := stubDataset(ctrl)
	model := mocks.NewMockScorableModel(ctrl)

	partial := fullMetrics()
	delete(partial, "mrr")

	m.store.EXPECT().Get(comb).Return(nil, nil)
	m.source.EXPECT().Load(gomock.Any(), comb.Dataset).Return(base, nil)
	base.EXPECT().Remix(int64(0)).Return(remixed, nil)
	m.models.EXPECT().Construct(comb.Config, remixed.Training()).Return(model, nil)
	m.evaluator.EXPECT().Evaluate(gomock.Any(), model, remixed, 32).Return(partial, nil)
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := r.Run(context.Background(), comb, domain.RunSettings{BatchSize: 32, Trials: 1})
	require.ErrorIs(t, err, domain.ErrMetricMissing)
}

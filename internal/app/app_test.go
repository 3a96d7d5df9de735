package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/cache"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/logger"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/synthetic"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/table"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/telemetry"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/engine/runner"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/engine/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistry struct {
	datasets []domain.DatasetDescriptor
}

func (r *fakeRegistry) Datasets() []domain.DatasetDescriptor {
	return r.datasets
}

func newTestApp(t *testing.T) (*App, domain.Settings) {
	t.Helper()
	dir := t.TempDir()
	settings := domain.Settings{
		ResultsDir: filepath.Join(dir, "results"),
		RunsDir:    filepath.Join(dir, "runs"),
		SmokeCount: 1,
		BatchSize:  64,
		Trials:     2,
		Workers:    2,
	}

	log := logger.NewWithWriter(io.Discard)
	noop := telemetry.NewNoOp()
	run := runner.NewRunner(
		synthetic.NewSource(),
		synthetic.NewFactory(),
		synthetic.NewRankEvaluator(),
		cache.NewStore(settings.RunsDir),
		noop,
		log,
	)
	reg := &fakeRegistry{datasets: []domain.DatasetDescriptor{
		{Name: "Beta", Entities: 40, Relations: 5, Triples: 300},
		{Name: "Alpha", Entities: 30, Relations: 4, Triples: 200},
	}}
	a := New(settings, reg, scheduler.NewScheduler(run, log), table.NewWriter(), noop, log)
	return a, settings
}

func TestRunWritesAggregatedTable(t *testing.T) {
	a, settings := newTestApp(t)

	err := a.Run(context.Background(), RunOptions{Trials: -1})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(settings.ResultsDir, ResultTableName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	// 2 datasets x 7 configurations x 2 trials, plus the header.
	require.Len(t, lines, 1+2*7*2)
	assert.Equal(t, strings.Join(domain.Columns(), "\t"), lines[0])

	// Size order puts Alpha first.
	assert.True(t, strings.HasPrefix(lines[1], "Alpha\t30\t4\t200\t0\t"))

	entries, err := os.ReadDir(settings.RunsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2*7)
}

func TestRunIsDeterministicAcrossReruns(t *testing.T) {
	a, settings := newTestApp(t)
	tablePath := filepath.Join(settings.ResultsDir, ResultTableName)

	require.NoError(t, a.Run(context.Background(), RunOptions{Trials: -1}))
	first, err := os.ReadFile(tablePath)
	require.NoError(t, err)

	// Second run serves from the cache but must produce identical bytes.
	require.NoError(t, os.Remove(tablePath))
	require.NoError(t, a.Run(context.Background(), RunOptions{Trials: -1}))
	second, err := os.ReadFile(tablePath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunSkipsWhenTableExists(t *testing.T) {
	a, settings := newTestApp(t)
	tablePath := filepath.Join(settings.ResultsDir, ResultTableName)

	require.NoError(t, os.MkdirAll(settings.ResultsDir, 0o750))
	require.NoError(t, os.WriteFile(tablePath, []byte("sentinel"), 0o644))

	require.NoError(t, a.Run(context.Background(), RunOptions{Trials: -1}))

	data, err := os.ReadFile(tablePath)
	require.NoError(t, err)
	assert.Equal(t, "sentinel", string(data))

	_, err = os.Stat(settings.RunsDir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunRebuildOverwritesExistingTable(t *testing.T) {
	a, settings := newTestApp(t)
	tablePath := filepath.Join(settings.ResultsDir, ResultTableName)

	require.NoError(t, os.MkdirAll(settings.ResultsDir, 0o750))
	require.NoError(t, os.WriteFile(tablePath, []byte("sentinel"), 0o644))

	require.NoError(t, a.Run(context.Background(), RunOptions{Trials: -1, Rebuild: true}))

	data, err := os.ReadFile(tablePath)
	require.NoError(t, err)
	assert.NotEqual(t, "sentinel", string(data))
}

func TestRunSmokeModeWritesSeparateTable(t *testing.T) {
	a, settings := newTestApp(t)

	err := a.Run(context.Background(), RunOptions{Trials: -1, Smoke: true})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(settings.ResultsDir, SmokeTableName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	// SmokeCount is 1, so only the smallest dataset runs.
	require.Len(t, lines, 1+1*7*2)
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "Alpha\t"))
	}

	_, err = os.Stat(filepath.Join(settings.ResultsDir, ResultTableName))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunZeroTrialsProducesOneRowPerCombination(t *testing.T) {
	a, settings := newTestApp(t)

	err := a.Run(context.Background(), RunOptions{Trials: 0})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(settings.ResultsDir, ResultTableName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 1+2*7)
}

func TestRunFailsWhenCutoffUnknown(t *testing.T) {
	a, _ := newTestApp(t)
	a.settings.CutoffDataset = "NoSuchDataset"

	err := a.Run(context.Background(), RunOptions{Trials: -1})
	require.ErrorIs(t, err, domain.ErrCutoffNotInRegistry)
}

func TestCleanRemovesRunsAndTables(t *testing.T) {
	a, settings := newTestApp(t)

	require.NoError(t, a.Run(context.Background(), RunOptions{Trials: -1}))
	require.NoError(t, a.Clean())

	_, err := os.Stat(settings.RunsDir)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(filepath.Join(settings.ResultsDir, ResultTableName))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCleanWithNothingToRemove(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.Clean())
}

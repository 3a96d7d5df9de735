package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/cache"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/logger"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/synthetic"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/telemetry/progrock"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			synthetic.SourceNodeID,
			synthetic.FactoryNodeID,
			synthetic.EvaluatorNodeID,
			cache.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			source, err := graft.Dep[ports.DatasetSource](ctx)
			if err != nil {
				return nil, err
			}
			models, err := graft.Dep[ports.ModelFactory](ctx)
			if err != nil {
				return nil, err
			}
			evaluator, err := graft.Dep[ports.Evaluator](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.TrialStore](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(source, models, evaluator, store, telemetry, log), nil
		},
	})
}

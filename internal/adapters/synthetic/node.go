package synthetic

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
)

const (
	// SourceNodeID is the unique identifier for the dataset source Graft node.
	SourceNodeID graft.ID = "adapter.dataset_source"
	// FactoryNodeID is the unique identifier for the model factory Graft node.
	FactoryNodeID graft.ID = "adapter.model_factory"
	// EvaluatorNodeID is the unique identifier for the evaluator Graft node.
	EvaluatorNodeID graft.ID = "adapter.evaluator"
)

func init() {
	graft.Register(graft.Node[ports.DatasetSource]{
		ID:        SourceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DatasetSource, error) {
			return NewSource(), nil
		},
	})

	graft.Register(graft.Node[ports.ModelFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModelFactory, error) {
			return NewFactory(), nil
		},
	})

	graft.Register(graft.Node[ports.Evaluator]{
		ID:        EvaluatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Evaluator, error) {
			return NewRankEvaluator(), nil
		},
	})
}

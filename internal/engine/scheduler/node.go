package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/logger"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/engine/runner"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{runner.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Scheduler, error) {
			r, err := graft.Dep[*runner.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScheduler(r, log), nil
		},
	})
}

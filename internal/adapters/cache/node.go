package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/config"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
)

// NodeID is the unique identifier for the trial store Graft node.
const NodeID graft.ID = "adapter.trial_store"

func init() {
	graft.Register(graft.Node[ports.TrialStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.TrialStore, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.RunsDir), nil
		},
	})
}

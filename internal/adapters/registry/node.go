package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
)

// NodeID is the unique identifier for the dataset registry Graft node.
const NodeID graft.ID = "adapter.dataset_registry"

func init() {
	graft.Register(graft.Node[ports.DatasetRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DatasetRegistry, error) {
			return New(), nil
		},
	})
}

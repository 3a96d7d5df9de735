package table

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the table writer Graft node.
const NodeID graft.ID = "adapter.table_writer"

func init() {
	graft.Register(graft.Node[*Writer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Writer, error) {
			return NewWriter(), nil
		},
	})
}

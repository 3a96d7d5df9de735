package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
)

// SettingsNodeID is the unique identifier for the settings Graft node.
const SettingsNodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Settings, error) {
			return NewLoader().Load(".")
		},
	})
}

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/cache"
	_ "github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/config"
	_ "github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/logger"
	_ "github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/registry"
	_ "github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/synthetic"
	_ "github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/table"
	_ "github.com/pykeen/nonparametric-baseline-benchmark/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/pykeen/nonparametric-baseline-benchmark/internal/app"
	_ "github.com/pykeen/nonparametric-baseline-benchmark/internal/engine/runner"
	_ "github.com/pykeen/nonparametric-baseline-benchmark/internal/engine/scheduler"
)

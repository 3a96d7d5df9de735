// Package main is the entry point for the baseline benchmark harness.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/pykeen/nonparametric-baseline-benchmark/cmd/baseline/commands"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/app"
	_ "github.com/pykeen/nonparametric-baseline-benchmark/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		return 1
	}

	cli := commands.New(components)
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}

package ports

import "context"

// Telemetry records per-combination progress.
type Telemetry interface {
	// Record starts a progress vertex for one unit of work.
	Record(ctx context.Context, name string) Vertex

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one in-flight unit of work.
type Vertex interface {
	// Cached marks the vertex as a cache hit.
	Cached()

	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}

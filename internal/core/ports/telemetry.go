package ports

import (
	"io"

	"go.trai.ch/spmlink/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the steps of an integration pass.
type Telemetry interface {
	// Record starts a new vertex for the named step.
	Record(name string, opts ...VertexOption) Vertex
	// Close flushes the recording session.
	Close() error
}

// Vertex is one recorded step.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	// Log attaches a message to the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the vertex as a step that changed nothing.
	Cached()
}

// VertexConfig holds configuration for a starting vertex.
type VertexConfig struct {
	// Internal hides the vertex from user facing output.
	Internal bool
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

// WithInternal marks the vertex as internal.
func WithInternal() VertexOption {
	return func(c *VertexConfig) {
		c.Internal = true
	}
}

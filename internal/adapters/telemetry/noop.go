// Package telemetry holds telemetry adapters that need no recording backend.
package telemetry

import (
	"io"

	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports"
)

var (
	_ ports.Telemetry = (*NoOp)(nil)
	_ ports.Vertex    = (*NoOpVertex)(nil)
)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (*NoOp) Record(string, ...ports.VertexOption) ports.Vertex {
	return &NoOpVertex{}
}

// Close does nothing.
func (*NoOp) Close() error { return nil }

// NoOpVertex is a vertex that discards everything.
type NoOpVertex struct{}

// Stdout returns io.Discard.
func (*NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns io.Discard.
func (*NoOpVertex) Stderr() io.Writer { return io.Discard }

// Log does nothing.
func (*NoOpVertex) Log(domain.LogLevel, string) {}

// Complete does nothing.
func (*NoOpVertex) Complete(error) {}

// Cached does nothing.
func (*NoOpVertex) Cached() {}

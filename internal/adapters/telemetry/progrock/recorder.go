// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/spmlink/internal/adapters/telemetry"
	"go.trai.ch/spmlink/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on a progrock tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex named after the step. Internal steps are not put on the tape.
func (r *Recorder) Record(name string, opts ...ports.VertexOption) ports.Vertex {
	cfg := ports.VertexConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Internal {
		return telemetry.NewNoOp().Record(name)
	}

	return &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name)}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

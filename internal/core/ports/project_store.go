package ports

import "go.trai.ch/spmlink/internal/core/domain"

// ProjectStore loads and saves project descriptors.
//
//go:generate mockgen -source=project_store.go -destination=mocks/mock_project_store.go -package=mocks
type ProjectStore interface {
	// Read parses the descriptor at path. The path may name a project bundle or the descriptor file.
	// A missing or corrupt descriptor fails with a domain.IOError.
	Read(path string) (*domain.Graph, error)

	// Write serializes graph to path, replacing the previous content atomically.
	Write(graph *domain.Graph, path string) error
}

package pbxproj

import (
	"os"

	"go.trai.ch/spmlink/internal/adapters/fs"
	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectStore = (*Store)(nil)

// Store reads and writes descriptors on the local file system.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read loads the descriptor for path, which may name the bundle or the descriptor file.
func (s *Store) Read(path string) (*domain.Graph, error) {
	file := domain.DescriptorPath(path)

	data, err := os.ReadFile(file) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, domain.NewIOError(file,
			zerr.With(domain.WrapCause(domain.ErrProjectReadFailed, err), "path", file))
	}

	graph, err := Decode(data)
	if err != nil {
		if domain.IsStructural(err) {
			return nil, err
		}
		return nil, domain.NewIOError(file, zerr.With(err, "path", file))
	}
	return graph, nil
}

// Write encodes graph and atomically replaces the descriptor for path.
func (s *Store) Write(graph *domain.Graph, path string) error {
	file := domain.DescriptorPath(path)

	data, err := Encode(graph)
	if err != nil {
		return domain.NewIOError(file, zerr.With(err, "path", file))
	}

	if _, err := fs.WriteIfChanged(file, data, domain.FilePerm); err != nil {
		return domain.NewIOError(file,
			zerr.With(domain.WrapCause(domain.ErrProjectWriteFailed, err), "path", file))
	}
	return nil
}

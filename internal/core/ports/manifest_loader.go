package ports

import "go.trai.ch/spmlink/internal/core/domain"

// ManifestLoader defines the interface for loading the package manifest.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at path. A missing file is an error.
	Load(path string) (domain.Manifest, error)

	// LoadOrDefault reads the manifest at path, falling back to domain.DefaultManifest when the
	// file does not exist.
	LoadOrDefault(path string) (domain.Manifest, error)
}

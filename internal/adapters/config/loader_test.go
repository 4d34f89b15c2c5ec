package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spmlink/internal/adapters/config"
	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	loader, err := config.NewLoader(log)
	require.NoError(t, err)
	return loader
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeManifest(t, `
version: "1"
registerTargetProducts: false
targets: [MyApp]
packages:
  - url: https://github.com/ml-explore/mlx-swift
    version: v0.25.6
    products: [MLX, MLXNN]
  - url: https://github.com/maiqingqiang/Jinja
    requirement:
      kind: branch
      branch: main
    products: [Jinja]
podfile:
  podTarget: my-pod
  strategy: nested
  buildSettings:
    - key: SWIFT_INCLUDE_PATHS
      values: ["$(inherited)"]
`)

	manifest, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.False(t, manifest.RegisterTargetProducts)
	assert.Equal(t, []string{"MyApp"}, manifest.Targets)
	assert.Equal(t, []domain.PackageCoordinate{
		{
			RepositoryURL: "https://github.com/ml-explore/mlx-swift",
			ProductName:   "MLX",
			Requirement:   domain.UpToNextMajor("0.25.6"),
		},
		{
			RepositoryURL: "https://github.com/ml-explore/mlx-swift",
			ProductName:   "MLXNN",
			Requirement:   domain.UpToNextMajor("0.25.6"),
		},
		{
			RepositoryURL: "https://github.com/maiqingqiang/Jinja",
			ProductName:   "Jinja",
			Requirement:   domain.Requirement{Kind: domain.BranchRequirement, Branch: "main"},
		},
	}, manifest.Coordinates)

	assert.Equal(t, "my-pod", manifest.Podfile.PodTarget)
	assert.Equal(t, domain.PodfileMarker("my-pod"), manifest.Podfile.Marker)
	assert.Equal(t, domain.SpliceNested, manifest.Podfile.Strategy)
	assert.Equal(t, "post_install", manifest.Podfile.Hook)
	assert.Equal(t, []domain.BuildSetting{{Key: "SWIFT_INCLUDE_PATHS", Values: []string{"$(inherited)"}}},
		manifest.Podfile.BuildSettings)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeManifest(t, "targets: [MyApp, my-pod]\n")

	manifest, err := newLoader(t).Load(path)
	require.NoError(t, err)

	defaults := domain.DefaultManifest()
	assert.Equal(t, []string{"MyApp", "my-pod"}, manifest.Targets)
	assert.Equal(t, defaults.Coordinates, manifest.Coordinates)
	assert.Equal(t, defaults.Podfile, manifest.Podfile)
	assert.True(t, manifest.RegisterTargetProducts)
}

func TestLoad_EmptyFile(t *testing.T) {
	manifest, err := newLoader(t).Load(writeManifest(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultManifest(), manifest)
}

func TestLoadOrDefault_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ManifestFileName)

	manifest, err := newLoader(t).LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultManifest(), manifest)
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ManifestFileName)

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
	assert.True(t, domain.IsIO(err))
	assert.ErrorIs(t, err, domain.ErrManifestReadFailed)
	assert.ErrorContains(t, err, domain.ErrManifestReadFailed.Error())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name:    "malformed yaml",
			content: "targets: [MyApp\n",
			want:    domain.ErrManifestParseFailed,
		},
		{
			name:    "unknown key",
			content: "target: [MyApp]\n",
			want:    domain.ErrManifestInvalid,
		},
		{
			name:    "version and requirement",
			content: "packages:\n  - url: https://example.com/a\n    version: 1.0.0\n    requirement: {kind: branch, branch: main}\n    products: [A]\n",
			want:    domain.ErrManifestInvalid,
		},
		{
			name:    "no products",
			content: "packages:\n  - url: https://example.com/a\n    version: 1.0.0\n    products: []\n",
			want:    domain.ErrManifestInvalid,
		},
		{
			name:    "unknown strategy",
			content: "podfile:\n  strategy: lazy\n",
			want:    domain.ErrManifestInvalid,
		},
		{
			name:    "bad version",
			content: "packages:\n  - url: https://example.com/a\n    version: latest\n    products: [A]\n",
			want:    domain.ErrManifestInvalid,
		},
		{
			name:    "inverted range",
			content: "packages:\n  - url: https://example.com/a\n    requirement: {kind: versionRange, minimumVersion: 2.0.0, maximumVersion: 1.0.0}\n    products: [A]\n",
			want:    domain.ErrManifestInvalid,
		},
		{
			name:    "missing branch",
			content: "packages:\n  - url: https://example.com/a\n    requirement: {kind: branch}\n    products: [A]\n",
			want:    domain.ErrManifestInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)

			_, err := newLoader(t).Load(path)
			require.Error(t, err)
			assert.True(t, domain.IsIO(err))
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorContains(t, err, tt.want.Error())

			var ioErr *domain.IOError
			require.ErrorAs(t, err, &ioErr)
			assert.Equal(t, path, ioErr.Path)
		})
	}
}

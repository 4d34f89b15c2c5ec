package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spmlink/internal/core/domain"
)

func TestRequirement_Validate(t *testing.T) {
	tests := []struct {
		name        string
		req         domain.Requirement
		errContains string
	}{
		{name: "up to next major", req: domain.UpToNextMajor("0.25.6")},
		{name: "tolerant version", req: domain.UpToNextMajor("1.3")},
		{
			name: "range",
			req:  domain.Requirement{Kind: domain.VersionRange, MinimumVersion: "1.0.0", MaximumVersion: "2.0.0"},
		},
		{name: "exact", req: domain.Requirement{Kind: domain.ExactVersion, Version: "1.2.3"}},
		{name: "branch", req: domain.Requirement{Kind: domain.BranchRequirement, Branch: "main"}},
		{name: "revision", req: domain.Requirement{Kind: domain.RevisionRequirement, Revision: "abc123"}},
		{
			name:        "missing minimum",
			req:         domain.Requirement{Kind: domain.UpToNextMinorVersion},
			errContains: "invalid version requirement",
		},
		{
			name:        "not a version",
			req:         domain.UpToNextMajor("latest"),
			errContains: "invalid version requirement",
		},
		{
			name:        "inverted range",
			req:         domain.Requirement{Kind: domain.VersionRange, MinimumVersion: "2.0.0", MaximumVersion: "1.0.0"},
			errContains: "invalid version requirement",
		},
		{
			name:        "empty branch",
			req:         domain.Requirement{Kind: domain.BranchRequirement},
			errContains: "invalid version requirement",
		},
		{
			name:        "unknown kind",
			req:         domain.Requirement{Kind: "nightly"},
			errContains: "invalid version requirement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidRequirement)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestRequirement_Fields(t *testing.T) {
	req := domain.UpToNextMajor("2.25.7")
	fields := req.Fields()
	assert.Equal(t, map[string]any{"kind": "upToNextMajorVersion", "minimumVersion": "2.25.7"}, fields)
	assert.Equal(t, req, domain.RequirementFromFields(fields))

	branch := domain.Requirement{Kind: domain.BranchRequirement, Branch: "main"}
	assert.Equal(t, branch, domain.RequirementFromFields(branch.Fields()))
}

func TestPackageCoordinate(t *testing.T) {
	c := domain.PackageCoordinate{
		RepositoryURL: "https://github.com/ml-explore/mlx-swift.git",
		ProductName:   "MLX",
		Requirement:   domain.UpToNextMajor("0.25.6"),
	}
	require.NoError(t, c.Validate())
	assert.Equal(t, "mlx-swift", c.RepositoryName())

	c.ProductName = ""
	assert.ErrorIs(t, c.Validate(), domain.ErrInvalidCoordinate)
	assert.ErrorContains(t, c.Validate(), "invalid package coordinate")

	c = domain.PackageCoordinate{ProductName: "MLX"}
	assert.ErrorIs(t, c.Validate(), domain.ErrInvalidCoordinate)

	c = domain.PackageCoordinate{
		RepositoryURL: "https://github.com/ml-explore/mlx-swift.git",
		ProductName:   "MLX",
		Requirement:   domain.UpToNextMajor("latest"),
	}
	err := c.Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
	assert.ErrorIs(t, err, domain.ErrInvalidRequirement)
}

func TestDefaultManifest(t *testing.T) {
	m := domain.DefaultManifest()

	require.Len(t, m.Coordinates, 8)
	for _, c := range m.Coordinates {
		assert.NoError(t, c.Validate(), c.ProductName)
	}
	assert.Equal(t, []string{"example", "react-native-fastvlm-ios"}, m.Targets)
	assert.True(t, m.RegisterTargetProducts)
	assert.Equal(t, "post_install", m.Podfile.Hook)
	assert.Equal(t, "react-native-fastvlm-ios Pod to link against Swift Package Manager", m.Podfile.Marker)
	assert.Equal(t, domain.SpliceGreedy, m.Podfile.Strategy)
}

package domain

import (
	"net/url"
	"path"
	"strings"

	"github.com/blang/semver/v4"
	"go.trai.ch/zerr"
)

// RequirementKind selects how a package version is constrained.
type RequirementKind string

// Requirement kinds understood by Xcode.
const (
	UpToNextMajorVersion RequirementKind = "upToNextMajorVersion"
	UpToNextMinorVersion RequirementKind = "upToNextMinorVersion"
	VersionRange         RequirementKind = "versionRange"
	ExactVersion         RequirementKind = "exactVersion"
	BranchRequirement    RequirementKind = "branch"
	RevisionRequirement  RequirementKind = "revision"
)

// Requirement is the version constraint of a package reference.
// Only the fields relevant to Kind are set.
type Requirement struct {
	Kind           RequirementKind
	MinimumVersion string
	MaximumVersion string
	Version        string
	Branch         string
	Revision       string
}

// UpToNextMajor returns the default requirement: minimum up to the next major version.
func UpToNextMajor(minimum string) Requirement {
	return Requirement{Kind: UpToNextMajorVersion, MinimumVersion: minimum}
}

// Validate checks that the fields required by the kind are present and well formed.
func (r Requirement) Validate() error {
	switch r.Kind {
	case UpToNextMajorVersion, UpToNextMinorVersion:
		_, err := parseVersion(r.MinimumVersion, "minimumVersion")
		return err
	case VersionRange:
		lo, err := parseVersion(r.MinimumVersion, "minimumVersion")
		if err != nil {
			return err
		}
		hi, err := parseVersion(r.MaximumVersion, "maximumVersion")
		if err != nil {
			return err
		}
		if !lo.LT(hi) {
			err = zerr.With(Tag(ErrInvalidRequirement), "minimumVersion", r.MinimumVersion)
			return zerr.With(err, "maximumVersion", r.MaximumVersion)
		}
		return nil
	case ExactVersion:
		_, err := parseVersion(r.Version, "version")
		return err
	case BranchRequirement:
		if r.Branch == "" {
			return zerr.With(Tag(ErrInvalidRequirement), "missing", "branch")
		}
		return nil
	case RevisionRequirement:
		if r.Revision == "" {
			return zerr.With(Tag(ErrInvalidRequirement), "missing", "revision")
		}
		return nil
	default:
		return zerr.With(Tag(ErrInvalidRequirement), "kind", string(r.Kind))
	}
}

func parseVersion(v, field string) (semver.Version, error) {
	if v == "" {
		return semver.Version{}, zerr.With(Tag(ErrInvalidRequirement), "missing", field)
	}
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return semver.Version{}, zerr.With(WrapCause(ErrInvalidRequirement, err), field, v)
	}
	return parsed, nil
}

// Fields returns the requirement as descriptor dictionary entries.
func (r Requirement) Fields() map[string]any {
	out := map[string]any{"kind": string(r.Kind)}
	set := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	set("minimumVersion", r.MinimumVersion)
	set("maximumVersion", r.MaximumVersion)
	set("version", r.Version)
	set("branch", r.Branch)
	set("revision", r.Revision)
	return out
}

// RequirementFromFields reads a requirement from descriptor dictionary entries.
// Unknown or non-string values are ignored.
func RequirementFromFields(fields map[string]any) Requirement {
	get := func(key string) string {
		s, _ := fields[key].(string)
		return s
	}
	return Requirement{
		Kind:           RequirementKind(get("kind")),
		MinimumVersion: get("minimumVersion"),
		MaximumVersion: get("maximumVersion"),
		Version:        get("version"),
		Branch:         get("branch"),
		Revision:       get("revision"),
	}
}

// String renders the requirement for log lines.
func (r Requirement) String() string {
	switch r.Kind {
	case UpToNextMajorVersion, UpToNextMinorVersion:
		return string(r.Kind) + " from " + r.MinimumVersion
	case VersionRange:
		return r.MinimumVersion + "..<" + r.MaximumVersion
	case ExactVersion:
		return "exactly " + r.Version
	case BranchRequirement:
		return "branch " + r.Branch
	case RevisionRequirement:
		return "revision " + r.Revision
	default:
		return string(r.Kind)
	}
}

// PackageCoordinate identifies one product of an external package and its version constraint.
type PackageCoordinate struct {
	RepositoryURL string
	ProductName   string
	Requirement   Requirement
}

// Validate checks that the coordinate can be declared.
func (c PackageCoordinate) Validate() error {
	if c.RepositoryURL == "" {
		return zerr.With(Tag(ErrInvalidCoordinate), "missing", "repositoryURL")
	}
	if c.ProductName == "" {
		return zerr.With(zerr.With(Tag(ErrInvalidCoordinate), "missing", "productName"), "repositoryURL", c.RepositoryURL)
	}
	if err := c.Requirement.Validate(); err != nil {
		return zerr.With(WrapCause(ErrInvalidCoordinate, err), "productName", c.ProductName)
	}
	return nil
}

// RepositoryName derives the short repository name used in log lines, e.g. "mlx-swift".
func (c PackageCoordinate) RepositoryName() string {
	raw := c.RepositoryURL
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		raw = u.Path
	}
	return strings.TrimSuffix(path.Base(strings.TrimSuffix(raw, "/")), ".git")
}

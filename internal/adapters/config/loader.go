// Package config provides the manifest loader for spmlink.
package config

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader using a YAML file validated against an embedded schema.
type Loader struct {
	logger ports.Logger
	schema *jsonschema.Schema
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) (*Loader, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(manifestSchemaURL, strings.NewReader(manifestSchema)); err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest schema")
	}
	schema, err := compiler.Compile(manifestSchemaURL)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to compile manifest schema")
	}
	return &Loader{logger: log, schema: schema}, nil
}

// LoadOrDefault reads the manifest at path, or returns the built-in defaults when there is none.
func (l *Loader) LoadOrDefault(path string) (domain.Manifest, error) {
	if _, err := os.Stat(path); errors.Is(err, iofs.ErrNotExist) {
		l.logger.Info(fmt.Sprintf("no manifest at %s, using built-in package set", path))
		return domain.DefaultManifest(), nil
	}
	return l.Load(path)
}

// Load reads the manifest at path. Fields the manifest omits keep their built-in defaults.
func (l *Loader) Load(path string) (domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Manifest{}, domain.NewIOError(path,
			zerr.With(domain.WrapCause(domain.ErrManifestReadFailed, err), "path", path))
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.Manifest{}, domain.NewIOError(path,
			zerr.With(domain.WrapCause(domain.ErrManifestParseFailed, err), "path", path))
	}
	if raw == nil {
		raw = map[string]any{}
	}
	if err := l.schema.Validate(raw); err != nil {
		return domain.Manifest{}, domain.NewIOError(path,
			zerr.With(domain.WrapCause(domain.ErrManifestInvalid, err), "path", path))
	}

	var file Manifestfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Manifest{}, domain.NewIOError(path,
			zerr.With(domain.WrapCause(domain.ErrManifestParseFailed, err), "path", path))
	}

	manifest, err := file.toDomain()
	if err != nil {
		return domain.Manifest{}, domain.NewIOError(path,
			zerr.With(domain.WrapCause(domain.ErrManifestInvalid, err), "path", path))
	}

	l.logger.Info(fmt.Sprintf("loaded manifest %s: %d products, %d targets",
		path, len(manifest.Coordinates), len(manifest.Targets)))
	return manifest, nil
}

func (f *Manifestfile) toDomain() (domain.Manifest, error) {
	manifest := domain.DefaultManifest()

	if f.RegisterTargetProducts != nil {
		manifest.RegisterTargetProducts = *f.RegisterTargetProducts
	}
	if len(f.Targets) > 0 {
		manifest.Targets = f.Targets
	}

	if len(f.Packages) > 0 {
		manifest.Coordinates = nil
		for _, pkg := range f.Packages {
			req, err := pkg.requirement()
			if err != nil {
				return domain.Manifest{}, zerr.With(err, "url", pkg.URL)
			}
			for _, product := range pkg.Products {
				coord := domain.PackageCoordinate{
					RepositoryURL: pkg.URL,
					ProductName:   product,
					Requirement:   req,
				}
				if err := coord.Validate(); err != nil {
					return domain.Manifest{}, err
				}
				manifest.Coordinates = append(manifest.Coordinates, coord)
			}
		}
	}

	if f.Podfile != nil {
		manifest.Podfile = f.Podfile.toDomain()
	}
	return manifest, nil
}

func (p PackageDTO) requirement() (domain.Requirement, error) {
	if p.Requirement == nil {
		v, err := normalizeVersion(p.Version)
		if err != nil {
			return domain.Requirement{}, err
		}
		return domain.UpToNextMajor(v), nil
	}

	r := p.Requirement
	req := domain.Requirement{
		Kind:     domain.RequirementKind(r.Kind),
		Branch:   r.Branch,
		Revision: r.Revision,
	}
	var err error
	if req.MinimumVersion, err = normalizeOptional(r.MinimumVersion); err != nil {
		return domain.Requirement{}, err
	}
	if req.MaximumVersion, err = normalizeOptional(r.MaximumVersion); err != nil {
		return domain.Requirement{}, err
	}
	if req.Version, err = normalizeOptional(r.Version); err != nil {
		return domain.Requirement{}, err
	}
	return req, nil
}

// normalizeVersion accepts tolerant forms such as "v1.2" and returns the canonical "1.2.0".
func normalizeVersion(v string) (string, error) {
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return "", zerr.With(domain.WrapCause(domain.ErrInvalidRequirement, err), "version", v)
	}
	return parsed.String(), nil
}

func normalizeOptional(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	return normalizeVersion(v)
}

func (p *PodfileDTO) toDomain() domain.PodfileSettings {
	podTarget := p.PodTarget
	if podTarget == "" {
		podTarget = domain.DefaultPodTarget
	}
	settings := domain.DefaultPodfileSettings(podTarget)

	if p.Hook != "" {
		settings.Hook = p.Hook
	}
	if p.HookArgs != "" {
		settings.HookArgs = p.HookArgs
	}
	if p.Marker != "" {
		settings.Marker = p.Marker
	}
	if p.Strategy != "" {
		settings.Strategy = domain.SpliceStrategy(p.Strategy)
	}
	if len(p.BuildSettings) > 0 {
		settings.BuildSettings = make([]domain.BuildSetting, len(p.BuildSettings))
		for i, bs := range p.BuildSettings {
			settings.BuildSettings[i] = domain.BuildSetting{Key: bs.Key, Values: bs.Values}
		}
	}
	return settings
}

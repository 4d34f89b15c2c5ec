// Package app implements the application layer for spmlink.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/spmlink/internal/adapters/idgen" //nolint:depguard // Seeded ids are chosen per run
	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports"
	"go.trai.ch/spmlink/internal/engine/podfile"
	"go.trai.ch/spmlink/internal/engine/spm"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App integrates Swift packages into a native iOS project.
type App struct {
	manifests ports.ManifestLoader
	projects  ports.ProjectStore
	scripts   ports.ScriptStore
	ids       ports.IDGenerator
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	projects ports.ProjectStore,
	scripts ports.ScriptStore,
	ids ports.IDGenerator,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		manifests: manifests,
		projects:  projects,
		scripts:   scripts,
		ids:       ids,
		logger:    logger,
		telemetry: telemetry,
	}
}

// RunOptions configures an integration run.
type RunOptions struct {
	// ManifestPath names the manifest. Empty means spmlink.yaml when it exists, else the built-in set.
	ManifestPath string
	// ProjectPath names the .xcodeproj bundle or its project.pbxproj. Empty discovers ios/*.xcodeproj.
	ProjectPath string
	// PodfilePath names the Podfile. Empty means ios/Podfile.
	PodfilePath string
	// DryRun computes the report without writing any artifact.
	DryRun      bool
	SkipProject bool
	SkipPodfile bool
	// IDSeed makes generated object identifiers reproducible.
	IDSeed string
}

// Apply runs the project pass and the Podfile pass. The passes share no state and run
// concurrently. A failed pass never writes its artifact.
func (a *App) Apply(ctx context.Context, opts RunOptions) (*domain.Report, error) {
	if opts.SkipProject && opts.SkipPodfile {
		return nil, domain.ErrNothingToApply
	}

	manifest, err := a.recordManifest(opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	var (
		g          errgroup.Group
		projectRep = &domain.Report{}
		podOutcome = domain.PodfileNotRun
		podWritten bool
	)

	if !opts.SkipProject {
		g.Go(func() error {
			rep, err := a.projectPass(ctx, opts, manifest)
			if rep != nil {
				projectRep = rep
			}
			return err
		})
	}
	if !opts.SkipPodfile {
		g.Go(func() error {
			var err error
			podOutcome, podWritten, err = a.podfilePass(ctx, opts, manifest.Podfile)
			return err
		})
	}

	err = g.Wait()
	report := projectRep
	report.Podfile = podOutcome
	report.PodfileWritten = podWritten
	return report, err
}

// Packages returns the coordinates a run with manifestPath would declare.
func (a *App) Packages(manifestPath string) ([]domain.PackageCoordinate, error) {
	manifest, err := a.loadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	return manifest.Coordinates, nil
}

// recordManifest loads the manifest under an internal telemetry step.
func (a *App) recordManifest(path string) (domain.Manifest, error) {
	vertex := a.telemetry.Record("load manifest", ports.WithInternal())
	manifest, err := a.loadManifest(path)
	vertex.Complete(err)
	return manifest, err
}

func (a *App) loadManifest(path string) (domain.Manifest, error) {
	if path == "" {
		return a.manifests.LoadOrDefault(domain.ManifestFileName)
	}
	return a.manifests.Load(path)
}

func (a *App) projectPass(ctx context.Context, opts RunOptions, manifest domain.Manifest) (*domain.Report, error) {
	path := opts.ProjectPath
	if path == "" {
		discovered, err := discoverProject()
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	graph, err := a.projects.Read(path)
	if err != nil {
		return nil, zerr.Wrap(err, "project pass failed")
	}

	ids := a.ids
	if opts.IDSeed != "" {
		ids = idgen.NewSeeded(opts.IDSeed)
	}

	report, err := spm.Apply(ctx, graph, manifest, spm.Deps{
		IDs:       ids,
		Logger:    a.logger,
		Telemetry: a.telemetry,
	})
	if err != nil {
		return report, zerr.Wrap(err, "project pass failed")
	}

	switch {
	case !report.Changed():
		a.logger.Info(fmt.Sprintf("%s is up to date", path))
	case opts.DryRun:
		a.logger.Info(fmt.Sprintf("dry run: %s would change", path))
	default:
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := a.projects.Write(graph, path); err != nil {
			return report, zerr.Wrap(err, "project pass failed")
		}
		report.ProjectWritten = true
		a.logger.Info(fmt.Sprintf("updated %s", path))
	}
	return report, nil
}

func (a *App) podfilePass(
	ctx context.Context,
	opts RunOptions,
	settings domain.PodfileSettings,
) (domain.PodfileOutcome, bool, error) {
	path := opts.PodfilePath
	if path == "" {
		path = domain.DefaultPodfilePath()
	}

	vertex := a.telemetry.Record("patch " + path)

	text, exists, err := a.scripts.Read(path)
	if err != nil {
		vertex.Complete(err)
		return domain.PodfileNotRun, false, zerr.Wrap(err, "podfile pass failed")
	}
	if !exists {
		a.logger.Warn(fmt.Sprintf("%s not found, skipping patch", path))
		vertex.Cached()
		vertex.Complete(nil)
		return domain.PodfileMissing, false, nil
	}

	patched := podfile.NewPatcher(settings).Patch(text, settings.Marker, podfile.RenderBlock(settings))
	if patched == text {
		a.logger.Info(fmt.Sprintf("%s already configured for %s", path, settings.PodTarget))
		vertex.Cached()
		vertex.Complete(nil)
		return domain.PodfileAlreadyPatched, false, nil
	}

	if opts.DryRun {
		a.logger.Info(fmt.Sprintf("dry run: %s would change", path))
		vertex.Complete(nil)
		return domain.PodfilePatched, false, nil
	}

	if err := ctx.Err(); err != nil {
		vertex.Complete(err)
		return domain.PodfileNotRun, false, err
	}
	written, err := a.scripts.Write(path, patched)
	if err != nil {
		vertex.Complete(err)
		return domain.PodfileNotRun, false, zerr.Wrap(err, "podfile pass failed")
	}
	a.logger.Info(fmt.Sprintf("added %s configuration to %s %s hook", settings.PodTarget, path, settings.Hook))
	vertex.Complete(nil)
	return domain.PodfilePatched, written, nil
}

// discoverProject finds the single project bundle in the native iOS directory.
func discoverProject() (string, error) {
	pattern := filepath.Join(domain.IOSDirName, "*"+domain.ProjectBundleExt)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", domain.WrapCause(domain.ErrProjectNotFound, err)
	}
	if len(matches) != 1 {
		err := zerr.With(domain.Tag(domain.ErrProjectNotFound), "pattern", pattern)
		return "", domain.NewIOError(pattern, zerr.With(err, "matches", len(matches)))
	}
	return matches[0], nil
}

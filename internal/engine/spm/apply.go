package spm

import (
	"context"
	"slices"

	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps are the collaborators of an integration pass.
type Deps struct {
	IDs       ports.IDGenerator
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// Apply declares every coordinate of manifest in graph and links every declared product into
// every listed target.
//
// Invalid coordinates and a missing root anchor are reported before the graph is touched.
// Lookup warnings are collected in the returned report and never abort the pass.
func Apply(ctx context.Context, graph *domain.Graph, manifest domain.Manifest, deps Deps) (*domain.Report, error) {
	report := &domain.Report{}

	for _, c := range manifest.Coordinates {
		if err := c.Validate(); err != nil {
			return report, err
		}
	}
	if _, err := graph.Root(); err != nil {
		return report, err
	}

	declarator := NewDeclarator(graph, deps.IDs, deps.Logger, report)
	products := make([]domain.ObjectID, 0, len(manifest.Coordinates))
	for _, c := range manifest.Coordinates {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		id, err := declare(declarator, deps.Telemetry, report, c)
		if err != nil {
			return report, err
		}
		if !slices.Contains(products, id) {
			products = append(products, id)
		}
	}

	linker := NewLinker(graph, deps.IDs, deps.Logger, report, WithTargetProducts(manifest.RegisterTargetProducts))
	for _, target := range manifest.Targets {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := link(linker, deps.Telemetry, report, target, products); err != nil {
			return report, err
		}
	}
	return report, nil
}

func declare(
	d *Declarator,
	telemetry ports.Telemetry,
	report *domain.Report,
	c domain.PackageCoordinate,
) (domain.ObjectID, error) {
	vertex := telemetry.Record("declare "+c.RepositoryName()+"/"+c.ProductName)
	before := *report

	id, err := d.Declare(c)
	if err != nil {
		vertex.Complete(err)
		return "", zerr.Wrap(err, "failed to declare "+c.ProductName)
	}
	if !changedSince(before, report) {
		vertex.Cached()
	}
	vertex.Complete(nil)
	return id, nil
}

func link(
	l *Linker,
	telemetry ports.Telemetry,
	report *domain.Report,
	target string,
	products []domain.ObjectID,
) error {
	vertex := telemetry.Record("link " + target)
	before := *report

	for _, product := range products {
		outcome, err := l.Link(target, product)
		if err != nil {
			vertex.Complete(err)
			return zerr.Wrap(err, "failed to link "+target)
		}
		if outcome == domain.LinkSkipped {
			vertex.Log(domain.LogLevelWarn, report.Warnings[len(report.Warnings)-1].String())
			// A missing target or phase would skip every remaining product the same way.
			break
		}
	}

	if !changedSince(before, report) {
		vertex.Cached()
	}
	vertex.Complete(nil)
	return nil
}

func changedSince(before domain.Report, after *domain.Report) bool {
	return after.ReferencesAdded != before.ReferencesAdded ||
		after.ReferencesRegistered != before.ReferencesRegistered ||
		after.ProductsAdded != before.ProductsAdded ||
		after.LinksAdded != before.LinksAdded ||
		after.TargetProductsAdded != before.TargetProductsAdded
}

// Package spm declares Swift package dependencies in a project descriptor graph and links
// their products into build targets.
package spm

import (
	"fmt"

	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports"
	"go.trai.ch/zerr"
)

// Declarator ensures that exactly one package reference exists per repository and exactly one
// product dependency exists per (reference, product) pair.
type Declarator struct {
	graph  *domain.Graph
	ids    ports.IDGenerator
	logger ports.Logger
	report *domain.Report
}

// NewDeclarator creates a Declarator that mutates graph and accounts its work in report.
func NewDeclarator(graph *domain.Graph, ids ports.IDGenerator, logger ports.Logger, report *domain.Report) *Declarator {
	if report == nil {
		report = &domain.Report{}
	}
	return &Declarator{
		graph:  graph,
		ids:    ids,
		logger: logger,
		report: report,
	}
}

// Declare returns the product dependency for c, creating it and its package reference on first
// use. Repeated calls with the same coordinate return the same identifier.
func (d *Declarator) Declare(c domain.PackageCoordinate) (domain.ObjectID, error) {
	// The root anchor is resolved before anything is created so that a broken descriptor is
	// never left with an unregistered reference.
	root, err := d.graph.Root()
	if err != nil {
		return "", err
	}

	refID, err := d.ensureReference(root, c)
	if err != nil {
		return "", zerr.With(err, "repository", c.RepositoryURL)
	}

	productID, err := d.ensureProduct(refID, c)
	if err != nil {
		return "", zerr.With(err, "product", c.ProductName)
	}
	return productID, nil
}

func (d *Declarator) ensureReference(root *domain.ProjectRoot, c domain.PackageCoordinate) (domain.ObjectID, error) {
	id, ref, found := domain.Find(d.graph, func(_ domain.ObjectID, r *domain.PackageReference) bool {
		return r.RepositoryURL == c.RepositoryURL
	})

	if found {
		d.report.ReferencesReused++
		if ref.Requirement != c.Requirement {
			d.logger.Warn(fmt.Sprintf(
				"package %s is already pinned to %s, keeping it (requested %s)",
				c.RepositoryName(), ref.Requirement, c.Requirement,
			))
		}
	} else {
		var err error
		id, err = allocateID(d.graph, d.ids, string(domain.KindPackageReference)+" "+c.RepositoryName())
		if err != nil {
			return "", err
		}
		ref = &domain.PackageReference{
			RepositoryURL: c.RepositoryURL,
			Requirement:   c.Requirement,
			Attributes:    map[string]any{},
		}
		if err := d.graph.Insert(id, ref); err != nil {
			return "", err
		}
		d.report.ReferencesAdded++
		d.logger.Info(fmt.Sprintf("added package reference %s (%s)", c.RepositoryName(), c.Requirement))
	}

	if !root.HasPackageReference(id) {
		root.PackageReferences = append(root.PackageReferences, id)
		if found {
			d.report.ReferencesRegistered++
			d.logger.Info(fmt.Sprintf("registered package reference %s in project", c.RepositoryName()))
		}
	}
	return id, nil
}

func (d *Declarator) ensureProduct(refID domain.ObjectID, c domain.PackageCoordinate) (domain.ObjectID, error) {
	id, _, found := domain.Find(d.graph, func(_ domain.ObjectID, p *domain.ProductDependency) bool {
		return p.Package == refID && p.ProductName == c.ProductName
	})
	if found {
		d.report.ProductsReused++
		d.logger.Info(fmt.Sprintf("product %s already declared", c.ProductName))
		return id, nil
	}

	id, err := allocateID(d.graph, d.ids, c.ProductName)
	if err != nil {
		return "", err
	}
	err = d.graph.Insert(id, &domain.ProductDependency{
		Package:     refID,
		ProductName: c.ProductName,
		Attributes:  map[string]any{},
	})
	if err != nil {
		return "", err
	}
	d.report.ProductsAdded++
	d.logger.Info(fmt.Sprintf("added product %s from %s", c.ProductName, c.RepositoryName()))
	return id, nil
}

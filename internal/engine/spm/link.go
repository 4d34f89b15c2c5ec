package spm

import (
	"fmt"

	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports"
	"go.trai.ch/zerr"
)

// Linker attaches declared products to the frameworks build phase of named targets.
type Linker struct {
	graph  *domain.Graph
	ids    ports.IDGenerator
	logger ports.Logger
	report *domain.Report

	registerTargetProducts bool
}

// LinkerOption configures a Linker.
type LinkerOption func(*Linker)

// WithTargetProducts controls whether linked products are also listed in the target's
// packageProductDependencies.
func WithTargetProducts(enabled bool) LinkerOption {
	return func(l *Linker) {
		l.registerTargetProducts = enabled
	}
}

// NewLinker creates a Linker that mutates graph and accounts its work in report.
func NewLinker(
	graph *domain.Graph,
	ids ports.IDGenerator,
	logger ports.Logger,
	report *domain.Report,
	opts ...LinkerOption,
) *Linker {
	if report == nil {
		report = &domain.Report{}
	}
	l := &Linker{
		graph:                  graph,
		ids:                    ids,
		logger:                 logger,
		report:                 report,
		registerTargetProducts: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Link ensures that the target named targetName links product.
//
// A missing target or a target without a frameworks build phase is not an error: the
// lookup warning is logged, added to the report, and LinkSkipped is returned.
func (l *Linker) Link(targetName string, product domain.ObjectID) (domain.LinkOutcome, error) {
	dep, ok := domain.Lookup[*domain.ProductDependency](l.graph, product)
	if !ok {
		err := zerr.With(domain.Tag(domain.ErrUnknownProductDependency), "id", product.String())
		return domain.LinkSkipped, domain.Structural(zerr.With(err, "target", targetName))
	}

	_, target, ok := domain.Find(l.graph, func(_ domain.ObjectID, t *domain.BuildTarget) bool {
		return t.Name == targetName
	})
	if !ok {
		l.warn(domain.LookupWarning{Target: targetName, Product: dep.ProductName, Reason: domain.ReasonTargetNotFound})
		return domain.LinkSkipped, nil
	}

	phase, ok := l.linkPhase(target)
	if !ok {
		l.warn(domain.LookupWarning{Target: targetName, Product: dep.ProductName, Reason: domain.ReasonNoLinkPhase})
		return domain.LinkSkipped, nil
	}

	outcome := domain.LinkPresent
	if l.phaseLinks(phase, product, dep.ProductName) {
		l.report.LinksPresent++
		l.logger.Info(fmt.Sprintf("%s already links %s", targetName, dep.ProductName))
	} else {
		id, err := allocateID(l.graph, l.ids, domain.BuildFileLabel(dep.ProductName))
		if err != nil {
			return domain.LinkSkipped, zerr.With(err, "target", targetName)
		}
		entry := &domain.BuildFileEntry{
			ProductRef:  product,
			ProductName: dep.ProductName,
			Attributes:  map[string]any{},
		}
		if err := l.graph.Insert(id, entry); err != nil {
			return domain.LinkSkipped, zerr.With(err, "target", targetName)
		}
		phase.Files = append(phase.Files, id)
		l.report.LinksAdded++
		outcome = domain.LinkAdded
		l.logger.Info(fmt.Sprintf("linked %s into %s", dep.ProductName, targetName))
	}

	if l.registerTargetProducts && !target.HasProductDependency(product) {
		target.PackageProductDependencies = append(target.PackageProductDependencies, product)
		l.report.TargetProductsAdded++
	}
	return outcome, nil
}

// linkPhase returns the first frameworks build phase owned by target.
func (l *Linker) linkPhase(target *domain.BuildTarget) (*domain.LinkPhase, bool) {
	for _, id := range target.BuildPhases {
		if phase, ok := domain.Lookup[*domain.LinkPhase](l.graph, id); ok {
			return phase, true
		}
	}
	return nil, false
}

// phaseLinks reports whether phase already holds an entry for the product.
func (l *Linker) phaseLinks(phase *domain.LinkPhase, product domain.ObjectID, productName string) bool {
	for _, id := range phase.Files {
		entry, ok := domain.Lookup[*domain.BuildFileEntry](l.graph, id)
		if !ok {
			continue
		}
		if entry.ProductRef == product || (entry.ProductName != "" && entry.ProductName == productName) {
			return true
		}
	}
	return false
}

func (l *Linker) warn(w domain.LookupWarning) {
	l.report.Warn(w)
	l.logger.Warn(fmt.Sprintf("skipping %s for target %s: %s", w.Product, w.Target, w.Reason))
}

package spm

import (
	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxIDAttempts bounds the retries when a generator keeps returning taken identifiers.
const maxIDAttempts = 16

// allocateID returns an identifier from ids that is not yet used in graph.
func allocateID(graph *domain.Graph, ids ports.IDGenerator, hint string) (domain.ObjectID, error) {
	for range maxIDAttempts {
		id := ids.NewID(hint)
		if id != "" && !graph.Has(id) {
			return id, nil
		}
	}
	err := zerr.With(domain.Tag(domain.ErrDuplicateObject), "hint", hint)
	return "", domain.Structural(zerr.With(err, "attempts", maxIDAttempts))
}

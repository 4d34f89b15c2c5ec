package ports

import "go.trai.ch/spmlink/internal/core/domain"

// IDGenerator synthesizes descriptor object identifiers.
//
//go:generate mockgen -source=id_generator.go -destination=mocks/mock_id_generator.go -package=mocks
type IDGenerator interface {
	// NewID returns a fresh identifier. The hint names the record being created and may be ignored.
	NewID(hint string) domain.ObjectID
}

package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/spmlink/internal/adapters/logger"
	"go.trai.ch/spmlink/internal/core/ports"
)

// NodeID is the unique identifier for the manifest loader node.
const NodeID graft.ID = "adapter.manifest_loader"

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := NewLoader(log)
			if err != nil {
				return nil, err
			}
			return loader, nil
		},
	})
}

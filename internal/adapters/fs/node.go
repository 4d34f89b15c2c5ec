package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/spmlink/internal/core/ports"
)

// ScriptStoreNodeID is the unique identifier for the build script store node.
const ScriptStoreNodeID graft.ID = "adapter.fs.scripts"

func init() {
	graft.Register(graft.Node[ports.ScriptStore]{
		ID:        ScriptStoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScriptStore, error) {
			return NewScriptStore(), nil
		},
	})
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/spmlink/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/spmlink/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/spmlink/internal/adapters/idgen"              //nolint:depguard // Wired in app layer
	"go.trai.ch/spmlink/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/spmlink/internal/adapters/pbxproj"            //nolint:depguard // Wired in app layer
	"go.trai.ch/spmlink/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/spmlink/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pbxproj.NodeID,
			fs.ScriptStoreNodeID,
			idgen.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manifests, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	projects, err := graft.Dep[ports.ProjectStore](ctx)
	if err != nil {
		return nil, err
	}

	scripts, err := graft.Dep[ports.ScriptStore](ctx)
	if err != nil {
		return nil, err
	}

	ids, err := graft.Dep[ports.IDGenerator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(manifests, projects, scripts, ids, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/piptools" //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			config.NodeID,
			piptools.CompilerNodeID,
			piptools.SyncerNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	locator, err := graft.Dep[ports.RootLocator](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.LockfileCompiler](ctx)
	if err != nil {
		return nil, err
	}

	syncer, err := graft.Dep[ports.EnvironmentSyncer](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(locator, loader, compiler, syncer, watch, log), nil
}

package piptools

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/shell"
	"go.trai.ch/relock/internal/core/ports"
)

const (
	// CompilerNodeID is the unique identifier for the compiler Graft node.
	CompilerNodeID graft.ID = "adapter.compiler"
	// SyncerNodeID is the unique identifier for the syncer Graft node.
	SyncerNodeID graft.ID = "adapter.syncer"
)

func init() {
	graft.Register(graft.Node[ports.LockfileCompiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.LockfileCompiler, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(runner), nil
		},
	})

	graft.Register(graft.Node[ports.EnvironmentSyncer]{
		ID:        SyncerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentSyncer, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewSyncer(runner), nil
		},
	})
}

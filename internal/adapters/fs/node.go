package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
)

// NodeID is the unique identifier for the root locator Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.RootLocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RootLocator, error) {
			return NewLocator(domain.DefaultManifestName), nil
		},
	})
}

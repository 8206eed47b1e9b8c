package inspect

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the inspector Graft node.
const NodeID graft.ID = "engine.inspector"

func init() {
	graft.Register(graft.Node[*Inspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Inspector, error) {
			return NewInspector(), nil
		},
	})
}

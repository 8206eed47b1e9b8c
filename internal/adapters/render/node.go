package render

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/thewilloftheshadow/bun-deps/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return NewRenderer(os.Stdout), nil
		},
	})
}

package audit

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/thewilloftheshadow/bun-deps/internal/adapters/logger"
	"github.com/thewilloftheshadow/bun-deps/internal/core/ports"
)

// NodeID is the unique identifier for the auditor Graft node.
const NodeID graft.ID = "adapter.auditor"

func init() {
	graft.Register(graft.Node[ports.Auditor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Auditor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(log), nil
		},
	})
}

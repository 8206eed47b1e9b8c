package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/thewilloftheshadow/bun-deps/internal/adapters/audit"
	"github.com/thewilloftheshadow/bun-deps/internal/adapters/config"
	"github.com/thewilloftheshadow/bun-deps/internal/adapters/lockfile"
	"github.com/thewilloftheshadow/bun-deps/internal/adapters/logger"
	"github.com/thewilloftheshadow/bun-deps/internal/adapters/render"
	"github.com/thewilloftheshadow/bun-deps/internal/core/ports"
	"github.com/thewilloftheshadow/bun-deps/internal/engine/inspect"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			lockfile.NodeID,
			config.NodeID,
			inspect.NodeID,
			audit.NodeID,
			render.NodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	lockfiles, err := graft.Dep[ports.LockfileLoader](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[*inspect.Inspector](ctx)
	if err != nil {
		return nil, err
	}

	auditor, err := graft.Dep[ports.Auditor](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(lockfiles, settings, inspector, auditor, renderer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}

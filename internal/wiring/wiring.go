// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/thewilloftheshadow/bun-deps/internal/adapters/audit"
	_ "github.com/thewilloftheshadow/bun-deps/internal/adapters/config"
	_ "github.com/thewilloftheshadow/bun-deps/internal/adapters/lockfile"
	_ "github.com/thewilloftheshadow/bun-deps/internal/adapters/logger"
	_ "github.com/thewilloftheshadow/bun-deps/internal/adapters/render"
	// Register app and engine nodes.
	_ "github.com/thewilloftheshadow/bun-deps/internal/app"
	_ "github.com/thewilloftheshadow/bun-deps/internal/engine/inspect"
)

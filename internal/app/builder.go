package app

import (
	"github.com/thewilloftheshadow/bun-deps/internal/core/ports"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

package ports

import "github.com/thewilloftheshadow/bun-deps/internal/core/domain"

// SettingsLoader defines the interface for loading tool configuration.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the optional settings file at the given project root,
	// returning built-in defaults when the file is absent.
	Load(root string) (domain.Settings, error)
}

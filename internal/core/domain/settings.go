package domain

import "time"

// DefaultRegistry is the registry queried when no override is configured.
const DefaultRegistry = "https://registry.npmjs.org"

// DefaultAuditTimeout bounds a single audit request.
const DefaultAuditTimeout = 30 * time.Second

// Settings holds the tool configuration resolved from the optional
// settings file and built-in defaults.
type Settings struct {
	// Registry is the base URL of the registry hosting the audit endpoint.
	Registry string

	// Timeout bounds the audit request.
	Timeout time.Duration

	// NoCache disables the audit response cache.
	NoCache bool
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Registry: DefaultRegistry,
		Timeout:  DefaultAuditTimeout,
	}
}

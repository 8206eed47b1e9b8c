package ports

import "github.com/thewilloftheshadow/bun-deps/internal/core/domain"

// LockfileLoader defines the interface for locating and loading the
// resolved dependency lockfile.
//
//go:generate mockgen -source=lockfile_loader.go -destination=mocks/mock_lockfile_loader.go -package=mocks
type LockfileLoader interface {
	// DiscoverRoot walks up from cwd to find the project root.
	// Returns the first directory containing the lockfile.
	DiscoverRoot(cwd string) (string, error)

	// Load reads and parses the lockfile at the given project root.
	Load(root string) (*domain.Lockfile, error)
}

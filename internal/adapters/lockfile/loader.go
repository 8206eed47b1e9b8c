package lockfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
	"github.com/thewilloftheshadow/bun-deps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.LockfileLoader against the filesystem.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// DiscoverRoot walks up from cwd until it finds a directory containing the
// lockfile, and returns that directory.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	currentDir := cwd
	for {
		lockPath := filepath.Join(currentDir, domain.LockFileName)
		if _, err := os.Stat(lockPath); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrLockfileNotFound, "cwd", cwd)
}

// Load reads and parses the lockfile at the given project root. Entries
// skipped by the construction-time validation pass are reported at Warn.
func (l *Loader) Load(root string) (*domain.Lockfile, error) {
	path := filepath.Join(root, domain.LockFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is rooted at the discovered project root
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileReadFailed.Error())
	}

	lf, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if skipped := lf.SkippedKeys(); len(skipped) > 0 {
		l.Logger.Warn(fmt.Sprintf("skipped %d malformed package entries in %s", len(skipped), domain.LockFileName))
	}

	return lf, nil
}

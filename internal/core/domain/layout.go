package domain

import "path/filepath"

const (
	// LockFileName is the name of the resolved dependency lockfile.
	LockFileName = "bun.lock"

	// SettingsFileName is the name of the optional tool configuration file.
	SettingsFileName = "bun-deps.yaml"

	// MetaDirName is the name of the internal metadata directory at the project root.
	MetaDirName = ".bun-deps"

	// CacheDirName is the name of the audit response cache directory.
	CacheDirName = "cache"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the audit response cache directory for a project root.
func DefaultCachePath(root string) string {
	return filepath.Join(root, MetaDirName, CacheDirName)
}

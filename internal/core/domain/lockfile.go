// Package domain contains the core domain model for lockfile inspection:
// the parsed lockfile, dependency attribution results and the audit tree.
package domain

import (
	"iter"
	"strings"
)

// Workspace is one logically distinct package in the repository, with its
// own declared dependency ranges. The root workspace is keyed by the empty
// path.
type Workspace struct {
	// Path is the workspace's table key, relative to the project root.
	// The empty string identifies the root workspace.
	Path string

	// Name is the optional display name from the workspace manifest.
	Name string

	// Version is the optional manifest version of the workspace.
	Version string

	// Dependencies maps production dependency names to declared ranges.
	Dependencies map[string]string

	// DevDependencies maps development dependency names to declared ranges.
	DevDependencies map[string]string
}

// PackageRecord is a single resolved entry from the lockfile's package
// table. Its dependency maps reference bare package names, not table keys;
// resolving an edge to a concrete record requires a name lookup that may be
// ambiguous when several resolved keys share a bare name.
type PackageRecord struct {
	// Key is the composite package-table key: the bare name, optionally
	// suffixed with a locator such as an npm alias.
	Key string

	// Name is the bare package name derived from Key. Empty when no bare
	// name could be derived; such records are skipped by derived
	// computations.
	Name string

	// ResolvedKey is the name@version specifier the entry resolved to
	// (the first tuple element).
	ResolvedKey string

	// SourceID identifies the registry or source the package came from.
	SourceID string

	// Integrity is the optional integrity checksum (fourth tuple element).
	Integrity string

	// Dependencies maps declared runtime dependency names to ranges.
	Dependencies map[string]string

	// DevDependencies maps declared development dependency names to ranges.
	DevDependencies map[string]string

	// PeerDependencies maps declared peer dependency names to ranges.
	PeerDependencies map[string]string

	// OptionalDependencies maps declared optional dependency names to ranges.
	OptionalDependencies map[string]string

	// OS lists platform constraints, when declared.
	OS []string

	// CPU lists architecture constraints, when declared.
	CPU []string

	// Bin maps declared binary entry names to paths, when declared.
	Bin map[string]string
}

// Version returns the resolved version: the substring after the final "@"
// in the resolved key, or "unknown" when no "@" is present.
func (r PackageRecord) Version() string {
	idx := strings.LastIndex(r.ResolvedKey, "@")
	if idx < 0 {
		return "unknown"
	}
	return r.ResolvedKey[idx+1:]
}

// BareName derives the bare package name from a composite table key: the
// text before the "@" that separates the name from its locator. A leading
// "@scope/" prefix is part of the name and does not terminate it. Returns
// the whole key when no separator is present, and the empty string when no
// name can be derived.
func BareName(key string) string {
	rest := key
	offset := 0
	if strings.HasPrefix(key, "@") {
		rest = key[1:]
		offset = 1
	}
	idx := strings.Index(rest, "@")
	if idx < 0 {
		return key
	}
	return key[:idx+offset]
}

// Lockfile is the typed in-memory view of a parsed lockfile: the workspace
// table and the flat table of resolved package records. It preserves the
// file's iteration order for both tables, and is immutable once built.
type Lockfile struct {
	// Version is the lockfile format version marker.
	Version int

	workspaces     map[string]Workspace
	workspaceOrder []string
	packages       map[string]PackageRecord
	packageOrder   []string
	skipped        []string
}

// NewLockfile creates an empty Lockfile with the given format version.
func NewLockfile(version int) *Lockfile {
	return &Lockfile{
		Version:    version,
		workspaces: make(map[string]Workspace),
		packages:   make(map[string]PackageRecord),
	}
}

// AddWorkspace records a workspace in table order. Re-adding a path
// replaces the entry without duplicating its order slot.
func (l *Lockfile) AddWorkspace(w Workspace) {
	if _, exists := l.workspaces[w.Path]; !exists {
		l.workspaceOrder = append(l.workspaceOrder, w.Path)
	}
	l.workspaces[w.Path] = w
}

// AddPackage records a resolved package in table order. Re-adding a key
// replaces the entry without duplicating its order slot.
func (l *Lockfile) AddPackage(r PackageRecord) {
	if _, exists := l.packages[r.Key]; !exists {
		l.packageOrder = append(l.packageOrder, r.Key)
	}
	l.packages[r.Key] = r
}

// AddSkipped records the key of a package entry that failed shape
// validation and was excluded from the package table.
func (l *Lockfile) AddSkipped(key string) {
	l.skipped = append(l.skipped, key)
}

// Workspaces returns an iterator over workspaces in table order.
func (l *Lockfile) Workspaces() iter.Seq2[string, Workspace] {
	return func(yield func(string, Workspace) bool) {
		for _, path := range l.workspaceOrder {
			if !yield(path, l.workspaces[path]) {
				return
			}
		}
	}
}

// Packages returns an iterator over resolved package records in table order.
func (l *Lockfile) Packages() iter.Seq2[string, PackageRecord] {
	return func(yield func(string, PackageRecord) bool) {
		for _, key := range l.packageOrder {
			if !yield(key, l.packages[key]) {
				return
			}
		}
	}
}

// Workspace looks up a workspace by path.
func (l *Lockfile) Workspace(path string) (Workspace, bool) {
	w, ok := l.workspaces[path]
	return w, ok
}

// Package looks up a resolved package record by table key.
func (l *Lockfile) Package(key string) (PackageRecord, bool) {
	r, ok := l.packages[key]
	return r, ok
}

// RootWorkspace returns the workspace keyed by the empty path, falling
// back to the first workspace in table order when no such key exists. The
// fallback is a best-effort default, not a validated choice.
func (l *Lockfile) RootWorkspace() Workspace {
	if w, ok := l.workspaces[""]; ok {
		return w
	}
	if len(l.workspaceOrder) > 0 {
		return l.workspaces[l.workspaceOrder[0]]
	}
	return Workspace{}
}

// WorkspaceCount returns the number of workspaces in the table.
func (l *Lockfile) WorkspaceCount() int {
	return len(l.workspaceOrder)
}

// PackageCount returns the number of well-formed package records.
func (l *Lockfile) PackageCount() int {
	return len(l.packageOrder)
}

// SkippedKeys returns the keys of package entries excluded during the
// construction-time validation pass.
func (l *Lockfile) SkippedKeys() []string {
	return l.skipped
}

package inspect

import (
	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
)

const (
	defaultRootName    = "root"
	defaultRootVersion = "0.0.0"
)

// BuildAuditTree maps the flat package table onto the nested tree shape
// expected by the legacy audit endpoint.
//
// The root workspace's declared ranges seed the requires map and the
// top-level dependency nodes (development entries flagged). The first
// package record reaching a bare name then resolves that node's version
// and attaches one level of nested sub-entries carrying declared ranges;
// later records sharing the bare name are ignored, because the schema
// allows a single node per name. Records without a derivable bare name
// are skipped entirely.
func (i *Inspector) BuildAuditTree(lf *domain.Lockfile) *domain.AuditTree {
	root := lf.RootWorkspace()

	name := root.Name
	if name == "" {
		name = defaultRootName
	}
	version := root.Version
	if version == "" {
		version = defaultRootVersion
	}

	tree := &domain.AuditTree{
		Name:         name,
		Version:      version,
		Requires:     make(map[string]string, len(root.Dependencies)+len(root.DevDependencies)),
		Dependencies: make(map[string]*domain.AuditNode),
	}

	for depName, rng := range root.Dependencies {
		tree.Requires[depName] = rng
		tree.Dependencies[depName] = &domain.AuditNode{Version: rng}
	}
	for depName, rng := range root.DevDependencies {
		tree.Requires[depName] = rng
		tree.Dependencies[depName] = &domain.AuditNode{Version: rng, Dev: true}
	}

	// Tracks names whose node already carries a resolved version, so the
	// first record in table order wins over later same-name records while
	// still replacing the range-only seeds above.
	resolved := make(map[string]struct{})

	for _, rec := range lf.Packages() {
		if rec.Name == "" {
			continue
		}
		if _, done := resolved[rec.Name]; done {
			continue
		}
		resolved[rec.Name] = struct{}{}

		node, ok := tree.Dependencies[rec.Name]
		if !ok {
			node = &domain.AuditNode{}
			tree.Dependencies[rec.Name] = node
		}
		node.Version = rec.Version()

		if len(rec.Dependencies) > 0 {
			node.Dependencies = make(map[string]domain.AuditEdge, len(rec.Dependencies))
			for depName, rng := range rec.Dependencies {
				node.Dependencies[depName] = domain.AuditEdge{Version: rng}
			}
		}
	}

	return tree
}

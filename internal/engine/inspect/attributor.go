// Package inspect implements the read-side queries over a parsed lockfile:
// dependency attribution ("why is this package here") and the audit tree
// export. All operations treat the lockfile as immutable.
package inspect

import (
	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
)

// Inspector answers structural queries over a lockfile model.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// DirectSources returns every workspace that declares target directly, in
// workspace table order. A workspace contributes one result per dependency
// map that contains the target, so it may appear twice. An unmatched
// target yields an empty slice, never an error.
func (i *Inspector) DirectSources(lf *domain.Lockfile, target string) []domain.DependencySource {
	var sources []domain.DependencySource
	for path, ws := range lf.Workspaces() {
		if rng, ok := ws.Dependencies[target]; ok {
			sources = append(sources, domain.DependencySource{
				WorkspacePath: path,
				WorkspaceName: ws.Name,
				Kind:          domain.KindProduction,
				Range:         rng,
			})
		}
		if rng, ok := ws.DevDependencies[target]; ok {
			sources = append(sources, domain.DependencySource{
				WorkspacePath: path,
				WorkspaceName: ws.Name,
				Kind:          domain.KindDevelopment,
				Range:         rng,
			})
		}
	}
	return sources
}

// TransitiveSources returns every resolved package that requires target,
// directly or through intermediaries. Results are emitted in package table
// order, depth-first: a consumer is followed immediately by its own
// consumer subtree before the next sibling. Each deeper result's chain
// carries the intermediate names, nearest-to-target first.
//
// A single visited set of package names is threaded through the whole
// walk, so every distinct name is expanded at most once regardless of how
// many resolved keys or paths reach it. This keeps the walk bounded on
// cyclic graphs. An unmatched target yields an empty slice, never an
// error.
func (i *Inspector) TransitiveSources(lf *domain.Lockfile, target string) []domain.TransitiveEdge {
	return i.walkConsumers(lf, target, make(map[string]struct{}))
}

func (i *Inspector) walkConsumers(lf *domain.Lockfile, target string, visited map[string]struct{}) []domain.TransitiveEdge {
	var edges []domain.TransitiveEdge
	for _, rec := range lf.Packages() {
		if _, ok := rec.Dependencies[target]; !ok {
			continue
		}
		if rec.Name == "" {
			continue
		}
		if _, seen := visited[rec.Name]; seen {
			continue
		}
		visited[rec.Name] = struct{}{}

		edges = append(edges, domain.TransitiveEdge{
			Name:    rec.Name,
			Version: rec.Version(),
		})

		for _, deeper := range i.walkConsumers(lf, rec.Name, visited) {
			deeper.Chain = append([]string{rec.Name}, deeper.Chain...)
			edges = append(edges, deeper)
		}
	}
	return edges
}

// Why runs both attribution queries for one target.
func (i *Inspector) Why(lf *domain.Lockfile, target string) domain.WhyResult {
	return domain.WhyResult{
		Target:     target,
		Direct:     i.DirectSources(lf, target),
		Transitive: i.TransitiveSources(lf, target),
	}
}

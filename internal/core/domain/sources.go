package domain

// DependencyKind classifies how a workspace declares a dependency.
type DependencyKind string

const (
	// KindProduction marks a dependency declared in a workspace's
	// production dependency map.
	KindProduction DependencyKind = "production"

	// KindDevelopment marks a dependency declared in a workspace's
	// development dependency map.
	KindDevelopment DependencyKind = "development"
)

// DependencySource identifies a workspace that directly declares a queried
// package. It is produced only as a query result, never stored.
type DependencySource struct {
	// WorkspacePath is the declaring workspace's table key.
	WorkspacePath string

	// WorkspaceName is the declaring workspace's display name, if any.
	WorkspaceName string

	// Kind reports which dependency map declares the package.
	Kind DependencyKind

	// Range is the declared version range for the package.
	Range string
}

// TransitiveEdge identifies a resolved package that transitively requires a
// queried package. It is produced only as a query result, never stored.
type TransitiveEdge struct {
	// Name is the dependent package's bare name.
	Name string

	// Version is the dependent's resolved version.
	Version string

	// Chain holds the intermediate package names between the dependent and
	// the queried target, nearest-to-target first, excluding both ends.
	Chain []string
}

// WhyResult aggregates both attribution queries for one target package.
type WhyResult struct {
	// Target is the queried package name.
	Target string

	// Direct lists workspaces that declare the target directly.
	Direct []DependencySource

	// Transitive lists resolved packages that pull the target in.
	Transitive []TransitiveEdge
}

// Found reports whether either query matched. A false result is a valid
// empty outcome, not an error.
func (r WhyResult) Found() bool {
	return len(r.Direct) > 0 || len(r.Transitive) > 0
}

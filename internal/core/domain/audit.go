package domain

// AuditTree is the nested dependency description expected by the registry's
// legacy vulnerability-audit endpoint: root package identity, the root
// workspace's declared requirements, and one node per bare package name.
// It is built fresh for each audit invocation and never persisted.
type AuditTree struct {
	Name         string                `json:"name"`
	Version      string                `json:"version"`
	Requires     map[string]string     `json:"requires"`
	Dependencies map[string]*AuditNode `json:"dependencies"`
}

// AuditNode is one top-level entry of the audit tree's dependency map. The
// legacy schema allows a single node per bare name, so version information
// for additional resolved copies of a name is collapsed away.
type AuditNode struct {
	Version      string               `json:"version"`
	Dev          bool                 `json:"dev,omitempty"`
	Dependencies map[string]AuditEdge `json:"dependencies,omitempty"`
}

// AuditEdge is a one-level nested sub-entry carrying only the declared
// range of a node's dependency. The schema nests no further.
type AuditEdge struct {
	Version string `json:"version"`
}

// AuditRequest is the JSON body submitted to the audit endpoint: the tree
// plus the caller-supplied install/remove/metadata fields.
type AuditRequest struct {
	AuditTree
	Install  []string          `json:"install"`
	Remove   []string          `json:"remove"`
	Metadata map[string]string `json:"metadata"`
}

// NewAuditRequest wraps a tree with empty caller-supplied fields.
func NewAuditRequest(tree *AuditTree) *AuditRequest {
	return &AuditRequest{
		AuditTree: *tree,
		Install:   []string{},
		Remove:    []string{},
		Metadata:  map[string]string{},
	}
}

// AuditOptions carries per-invocation transport settings for an audit
// request.
type AuditOptions struct {
	// Registry is the base URL of the registry hosting the audit endpoint.
	Registry string

	// CacheDir is the directory for cached audit responses.
	CacheDir string

	// NoCache bypasses the response cache entirely.
	NoCache bool
}

// AuditReport is the parsed audit endpoint response.
type AuditReport struct {
	Advisories map[string]Advisory `json:"advisories"`
	Metadata   AuditMetadata       `json:"metadata"`
}

// Advisory describes one known vulnerability affecting a package in the
// submitted tree.
type Advisory struct {
	ID                 int       `json:"id"`
	ModuleName         string    `json:"module_name"`
	Title              string    `json:"title"`
	Severity           string    `json:"severity"`
	URL                string    `json:"url"`
	VulnerableVersions string    `json:"vulnerable_versions"`
	PatchedVersions    string    `json:"patched_versions"`
	Overview           string    `json:"overview"`
	Recommendation     string    `json:"recommendation"`
	Findings           []Finding `json:"findings"`
}

// Finding locates the vulnerable versions of an advisory in the tree.
type Finding struct {
	Version string   `json:"version"`
	Paths   []string `json:"paths"`
}

// AuditMetadata holds the response's aggregate counters.
type AuditMetadata struct {
	Vulnerabilities   VulnerabilityCounts `json:"vulnerabilities"`
	Dependencies      int                 `json:"dependencies"`
	DevDependencies   int                 `json:"devDependencies"`
	TotalDependencies int                 `json:"totalDependencies"`
}

// VulnerabilityCounts is the per-severity vulnerability tally.
type VulnerabilityCounts struct {
	Info     int `json:"info"`
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
	Critical int `json:"critical"`
}

// Total sums all severities.
func (v VulnerabilityCounts) Total() int {
	return v.Info + v.Low + v.Moderate + v.High + v.Critical
}

// HasVulnerabilities reports whether the response counted any
// vulnerability at any severity.
func (r *AuditReport) HasVulnerabilities() bool {
	return r.Metadata.Vulnerabilities.Total() > 0
}

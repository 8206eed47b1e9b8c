// Package render provides a line-oriented renderer for query results.
package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
	"github.com/thewilloftheshadow/bun-deps/internal/ui/style"
)

// Renderer implements ports.Renderer with plain, chronological output.
type Renderer struct {
	stdout io.Writer
}

// NewRenderer creates a new Renderer. A nil writer defaults to os.Stdout.
func NewRenderer(stdout io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Renderer{stdout: stdout}
}

// Why renders an attribution result for one target.
func (r *Renderer) Why(result domain.WhyResult) {
	if !result.Found() {
		fmt.Fprintln(r.stdout, warnStyle.Render(style.Warning+" "+result.Target+" is not in the dependency graph"))
		return
	}

	fmt.Fprintln(r.stdout, headerStyle.Render(result.Target))

	for _, src := range result.Direct {
		kind := "dependencies"
		if src.Kind == domain.KindDevelopment {
			kind = "devDependencies"
		}
		fmt.Fprintf(r.stdout, "  %s declared in %s (%s: %s)\n",
			okStyle.Render(style.Dot), workspaceLabel(src), kind, src.Range)
	}

	for _, edge := range result.Transitive {
		line := fmt.Sprintf("  %s required by %s@%s",
			dimStyle.Render(style.Dot), edge.Name, edge.Version)
		if len(edge.Chain) > 0 {
			line += dimStyle.Render(" (via " + strings.Join(edge.Chain, " "+style.Arrow+" ") + ")")
		}
		fmt.Fprintln(r.stdout, line)
	}
}

// Audit renders an audit report: each advisory, then a severity summary.
func (r *Renderer) Audit(report *domain.AuditReport) {
	counts := report.Metadata.Vulnerabilities
	if counts.Total() == 0 {
		fmt.Fprintln(r.stdout, okStyle.Render(style.Check+" no known vulnerabilities found"))
		return
	}

	for _, id := range sortedAdvisoryIDs(report.Advisories) {
		adv := report.Advisories[id]
		fmt.Fprintf(r.stdout, "%s %s %s: %s\n",
			severityStyle(adv.Severity).Render(style.Dot),
			severityStyle(adv.Severity).Render("["+adv.Severity+"]"),
			adv.ModuleName, adv.Title)
		if adv.VulnerableVersions != "" {
			fmt.Fprintln(r.stdout, dimStyle.Render("    vulnerable: "+adv.VulnerableVersions+", patched: "+patchedLabel(adv)))
		}
		if adv.URL != "" {
			fmt.Fprintln(r.stdout, dimStyle.Render("    "+adv.URL))
		}
	}

	fmt.Fprintln(r.stdout, summaryLine(counts))
}

func patchedLabel(adv domain.Advisory) string {
	if adv.PatchedVersions == "" {
		return "none"
	}
	return adv.PatchedVersions
}

func workspaceLabel(src domain.DependencySource) string {
	if src.WorkspaceName != "" {
		return src.WorkspaceName
	}
	if src.WorkspacePath != "" {
		return src.WorkspacePath
	}
	return "the root workspace"
}

// sortedAdvisoryIDs returns advisory keys in stable order; the response
// map carries no ordering of its own.
func sortedAdvisoryIDs(advisories map[string]domain.Advisory) []string {
	ids := make([]string, 0, len(advisories))
	for id := range advisories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func summaryLine(counts domain.VulnerabilityCounts) string {
	var parts []string
	for _, item := range []struct {
		count int
		label string
	}{
		{counts.Critical, "critical"},
		{counts.High, "high"},
		{counts.Moderate, "moderate"},
		{counts.Low, "low"},
		{counts.Info, "info"},
	} {
		if item.count > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", item.count, item.label))
		}
	}

	noun := "vulnerabilities"
	if counts.Total() == 1 {
		noun = "vulnerability"
	}
	return warnStyle.Render(fmt.Sprintf("%s %d %s found (%s)",
		style.Warning, counts.Total(), noun, strings.Join(parts, ", ")))
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
)

func TestBareName(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "plain name",
			key:  "left-pad",
			want: "left-pad",
		},
		{
			name: "name with locator suffix",
			key:  "left-pad@npm:1.3.0",
			want: "left-pad",
		},
		{
			name: "scoped name",
			key:  "@babel/core",
			want: "@babel/core",
		},
		{
			name: "scoped name with locator suffix",
			key:  "@babel/core@workspace:packages/core",
			want: "@babel/core",
		},
		{
			name: "aliased entry",
			key:  "is-even@npm:is-odd@1.0.0",
			want: "is-even",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.BareName(tt.key))
		})
	}
}

func TestPackageRecord_Version(t *testing.T) {
	tests := []struct {
		name        string
		resolvedKey string
		want        string
	}{
		{
			name:        "plain specifier",
			resolvedKey: "left-pad@1.3.0",
			want:        "1.3.0",
		},
		{
			name:        "scoped specifier",
			resolvedKey: "@babel/core@7.24.0",
			want:        "7.24.0",
		},
		{
			name:        "no separator",
			resolvedKey: "garbage",
			want:        "unknown",
		},
		{
			name:        "empty specifier",
			resolvedKey: "",
			want:        "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := domain.PackageRecord{ResolvedKey: tt.resolvedKey}
			assert.Equal(t, tt.want, rec.Version())
		})
	}
}

func TestLockfile_TableOrder(t *testing.T) {
	lf := domain.NewLockfile(1)

	lf.AddWorkspace(domain.Workspace{Path: "", Name: "root"})
	lf.AddWorkspace(domain.Workspace{Path: "packages/a", Name: "a"})
	lf.AddWorkspace(domain.Workspace{Path: "packages/b", Name: "b"})

	var paths []string
	for path := range lf.Workspaces() {
		paths = append(paths, path)
	}
	assert.Equal(t, []string{"", "packages/a", "packages/b"}, paths)

	lf.AddPackage(domain.PackageRecord{Key: "z-first", Name: "z-first"})
	lf.AddPackage(domain.PackageRecord{Key: "a-second", Name: "a-second"})

	var keys []string
	for key := range lf.Packages() {
		keys = append(keys, key)
	}
	assert.Equal(t, []string{"z-first", "a-second"}, keys)
}

func TestLockfile_ReplaceKeepsOrderSlot(t *testing.T) {
	lf := domain.NewLockfile(1)

	lf.AddPackage(domain.PackageRecord{Key: "dup", ResolvedKey: "dup@1.0.0"})
	lf.AddPackage(domain.PackageRecord{Key: "other", ResolvedKey: "other@1.0.0"})
	lf.AddPackage(domain.PackageRecord{Key: "dup", ResolvedKey: "dup@2.0.0"})

	require.Equal(t, 2, lf.PackageCount())

	rec, ok := lf.Package("dup")
	require.True(t, ok)
	assert.Equal(t, "2.0.0", rec.Version())

	var keys []string
	for key := range lf.Packages() {
		keys = append(keys, key)
	}
	assert.Equal(t, []string{"dup", "other"}, keys)
}

func TestLockfile_RootWorkspace(t *testing.T) {
	t.Run("empty path wins", func(t *testing.T) {
		lf := domain.NewLockfile(1)
		lf.AddWorkspace(domain.Workspace{Path: "packages/a", Name: "a"})
		lf.AddWorkspace(domain.Workspace{Path: "", Name: "root"})

		assert.Equal(t, "root", lf.RootWorkspace().Name)
	})

	t.Run("falls back to first in table order", func(t *testing.T) {
		lf := domain.NewLockfile(1)
		lf.AddWorkspace(domain.Workspace{Path: "packages/a", Name: "a"})
		lf.AddWorkspace(domain.Workspace{Path: "packages/b", Name: "b"})

		assert.Equal(t, "a", lf.RootWorkspace().Name)
	})

	t.Run("zero value when empty", func(t *testing.T) {
		lf := domain.NewLockfile(1)
		assert.Equal(t, domain.Workspace{}, lf.RootWorkspace())
	})
}

func TestVulnerabilityCounts_Total(t *testing.T) {
	counts := domain.VulnerabilityCounts{Info: 1, Low: 2, Moderate: 3, High: 4, Critical: 5}
	assert.Equal(t, 15, counts.Total())

	report := &domain.AuditReport{}
	assert.False(t, report.HasVulnerabilities())

	report.Metadata.Vulnerabilities.High = 1
	assert.True(t, report.HasVulnerabilities())
}

package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thewilloftheshadow/bun-deps/internal/app"
	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
	"github.com/thewilloftheshadow/bun-deps/internal/core/ports/mocks"
	"github.com/thewilloftheshadow/bun-deps/internal/engine/inspect"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	lockfiles *mocks.MockLockfileLoader
	settings  *mocks.MockSettingsLoader
	auditor   *mocks.MockAuditor
	renderer  *mocks.MockRenderer
	logger    *mocks.MockLogger
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		lockfiles: mocks.NewMockLockfileLoader(ctrl),
		settings:  mocks.NewMockSettingsLoader(ctrl),
		auditor:   mocks.NewMockAuditor(ctrl),
		renderer:  mocks.NewMockRenderer(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(f.lockfiles, f.settings, inspect.NewInspector(), f.auditor, f.renderer, f.logger)
	return f
}

func testLockfile() *domain.Lockfile {
	lf := domain.NewLockfile(1)
	lf.AddWorkspace(domain.Workspace{
		Path:         "",
		Name:         "demo",
		Dependencies: map[string]string{"left-pad": "^1.0.0"},
	})
	lf.AddPackage(domain.PackageRecord{
		Key:         "left-pad",
		Name:        "left-pad",
		ResolvedKey: "left-pad@1.3.0",
		SourceID:    "npm",
	})
	return lf
}

func TestApp_Why(t *testing.T) {
	f := newFixture(t)

	f.lockfiles.EXPECT().DiscoverRoot(gomock.Any()).Return("/proj", nil)
	f.lockfiles.EXPECT().Load("/proj").Return(testLockfile(), nil)

	// Attribution runs concurrently but results render in argument order.
	gomock.InOrder(
		f.renderer.EXPECT().Why(gomock.Cond(func(r domain.WhyResult) bool {
			return r.Target == "left-pad" && r.Found()
		})),
		f.renderer.EXPECT().Why(gomock.Cond(func(r domain.WhyResult) bool {
			return r.Target == "ghost" && !r.Found()
		})),
	)

	err := f.app.Why(context.Background(), []string{"left-pad", "ghost"})
	require.NoError(t, err)
}

func TestApp_Why_NoTargets(t *testing.T) {
	f := newFixture(t)

	err := f.app.Why(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrNoTargetsSpecified)
}

func TestApp_Why_DiscoverError(t *testing.T) {
	f := newFixture(t)

	f.lockfiles.EXPECT().DiscoverRoot(gomock.Any()).Return("", domain.ErrLockfileNotFound)

	err := f.app.Why(context.Background(), []string{"left-pad"})
	require.ErrorIs(t, err, domain.ErrLockfileNotFound)
}

func TestApp_Audit(t *testing.T) {
	f := newFixture(t)

	settings := domain.DefaultSettings()
	f.lockfiles.EXPECT().DiscoverRoot(gomock.Any()).Return("/proj", nil)
	f.settings.EXPECT().Load("/proj").Return(settings, nil)
	f.lockfiles.EXPECT().Load("/proj").Return(testLockfile(), nil)

	report := &domain.AuditReport{}
	f.auditor.EXPECT().
		Audit(gomock.Any(), gomock.Any(), domain.AuditOptions{
			Registry: settings.Registry,
			CacheDir: domain.DefaultCachePath("/proj"),
		}).
		DoAndReturn(func(_ context.Context, req *domain.AuditRequest, _ domain.AuditOptions) (*domain.AuditReport, error) {
			assert.Equal(t, "demo", req.Name)
			assert.Equal(t, map[string]string{"left-pad": "^1.0.0"}, req.Requires)
			return report, nil
		})
	f.renderer.EXPECT().Audit(report)

	err := f.app.Audit(context.Background(), app.AuditOptions{})
	require.NoError(t, err)
}

func TestApp_Audit_VulnerabilitiesFound(t *testing.T) {
	f := newFixture(t)

	f.lockfiles.EXPECT().DiscoverRoot(gomock.Any()).Return("/proj", nil)
	f.settings.EXPECT().Load("/proj").Return(domain.DefaultSettings(), nil)
	f.lockfiles.EXPECT().Load("/proj").Return(testLockfile(), nil)

	report := &domain.AuditReport{
		Metadata: domain.AuditMetadata{
			Vulnerabilities: domain.VulnerabilityCounts{High: 2},
		},
	}
	f.auditor.EXPECT().Audit(gomock.Any(), gomock.Any(), gomock.Any()).Return(report, nil)

	// The report is rendered before the sentinel error is returned.
	f.renderer.EXPECT().Audit(report)

	err := f.app.Audit(context.Background(), app.AuditOptions{})
	require.ErrorIs(t, err, domain.ErrVulnerabilitiesFound)
}

func TestApp_Audit_NoCacheFlagWins(t *testing.T) {
	f := newFixture(t)

	f.lockfiles.EXPECT().DiscoverRoot(gomock.Any()).Return("/proj", nil)
	f.settings.EXPECT().Load("/proj").Return(domain.DefaultSettings(), nil)
	f.lockfiles.EXPECT().Load("/proj").Return(testLockfile(), nil)

	f.auditor.EXPECT().
		Audit(gomock.Any(), gomock.Any(), gomock.Cond(func(opts domain.AuditOptions) bool {
			return opts.NoCache
		})).
		Return(&domain.AuditReport{}, nil)
	f.renderer.EXPECT().Audit(gomock.Any())

	err := f.app.Audit(context.Background(), app.AuditOptions{NoCache: true})
	require.NoError(t, err)
}

func TestApp_Audit_RequestError(t *testing.T) {
	f := newFixture(t)

	f.lockfiles.EXPECT().DiscoverRoot(gomock.Any()).Return("/proj", nil)
	f.settings.EXPECT().Load("/proj").Return(domain.DefaultSettings(), nil)
	f.lockfiles.EXPECT().Load("/proj").Return(testLockfile(), nil)

	f.auditor.EXPECT().
		Audit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("registry unreachable"))

	err := f.app.Audit(context.Background(), app.AuditOptions{})
	require.ErrorContains(t, err, "registry unreachable")
}

// Package app implements the application layer for bun-deps.
package app

import (
	"context"
	"os"

	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
	"github.com/thewilloftheshadow/bun-deps/internal/core/ports"
	"github.com/thewilloftheshadow/bun-deps/internal/engine/inspect"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	lockfiles ports.LockfileLoader
	settings  ports.SettingsLoader
	inspector *inspect.Inspector
	auditor   ports.Auditor
	renderer  ports.Renderer
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	lockfiles ports.LockfileLoader,
	settings ports.SettingsLoader,
	inspector *inspect.Inspector,
	auditor ports.Auditor,
	renderer ports.Renderer,
	log ports.Logger,
) *App {
	return &App{
		lockfiles: lockfiles,
		settings:  settings,
		inspector: inspector,
		auditor:   auditor,
		renderer:  renderer,
		logger:    log,
	}
}

// Why explains how each target package entered the dependency graph. The
// attribution queries run concurrently, one per target, but the results
// are rendered in argument order.
func (a *App) Why(ctx context.Context, targets []string) error {
	if len(targets) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	lf, err := a.loadLockfile()
	if err != nil {
		return err
	}

	results := make([]domain.WhyResult, len(targets))
	eg, _ := errgroup.WithContext(ctx)
	for i, target := range targets {
		eg.Go(func() error {
			results[i] = a.inspector.Why(lf, target)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		a.renderer.Why(result)
	}
	return nil
}

// AuditOptions configuration for the Audit method.
type AuditOptions struct {
	NoCache bool
}

// Audit exports the lockfile as an audit tree, submits it to the
// configured registry, and renders the advisory report. Returns
// domain.ErrVulnerabilitiesFound when the report contains at least one
// vulnerability, so the caller can map it to a non-zero exit code.
func (a *App) Audit(ctx context.Context, opts AuditOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	root, err := a.lockfiles.DiscoverRoot(cwd)
	if err != nil {
		return err
	}

	settings, err := a.settings.Load(root)
	if err != nil {
		return err
	}

	lf, err := a.lockfiles.Load(root)
	if err != nil {
		return err
	}

	tree := a.inspector.BuildAuditTree(lf)
	req := domain.NewAuditRequest(tree)

	ctx, cancel := context.WithTimeout(ctx, settings.Timeout)
	defer cancel()

	report, err := a.auditor.Audit(ctx, req, domain.AuditOptions{
		Registry: settings.Registry,
		CacheDir: domain.DefaultCachePath(root),
		NoCache:  opts.NoCache || settings.NoCache,
	})
	if err != nil {
		return err
	}

	a.renderer.Audit(report)

	if report.HasVulnerabilities() {
		return domain.ErrVulnerabilitiesFound
	}
	return nil
}

func (a *App) loadLockfile() (*domain.Lockfile, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}
	root, err := a.lockfiles.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}
	return a.lockfiles.Load(root)
}

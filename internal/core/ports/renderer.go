package ports

import "github.com/thewilloftheshadow/bun-deps/internal/core/domain"

// Renderer defines the interface for presenting query results to the user.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Why renders the attribution result for one target, including the
	// not-found case.
	Why(result domain.WhyResult)

	// Audit renders an audit report.
	Audit(report *domain.AuditReport)
}

package ports

import (
	"context"

	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
)

// Auditor defines the interface for submitting an audit tree to a
// vulnerability-advisory service.
//
//go:generate mockgen -source=auditor.go -destination=mocks/mock_auditor.go -package=mocks
type Auditor interface {
	// Audit submits the request to the registry's audit endpoint and
	// returns the parsed report. The request is not retried on failure.
	Audit(ctx context.Context, req *domain.AuditRequest, opts domain.AuditOptions) (*domain.AuditReport, error)
}

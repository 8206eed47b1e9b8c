// Package audit implements the Auditor port against a registry's legacy
// bulk-advisory endpoint, with a local content-addressed response cache.
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
	"github.com/thewilloftheshadow/bun-deps/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	auditEndpointPath = "/-/npm/v1/security/audits"
	httpClientTimeout = 60 * time.Second
)

// Client implements ports.Auditor over HTTP.
type Client struct {
	httpClient *http.Client
	logger     ports.Logger
}

// NewClient creates a new audit Client.
func NewClient(logger ports.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: httpClientTimeout},
		logger:     logger,
	}
}

// newClientWithHTTP creates a Client with a custom http client (used for
// testing).
func newClientWithHTTP(logger ports.Logger, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Audit serializes the request, consults the response cache, and on a miss
// submits the tree to the registry's audit endpoint. The request is never
// retried; cache write failures are not fatal.
func (c *Client) Audit(ctx context.Context, req *domain.AuditRequest, opts domain.AuditOptions) (*domain.AuditReport, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAuditMarshalFailed.Error())
	}

	cache := NewCache(opts.CacheDir)
	if !opts.NoCache {
		if report, err := cache.Load(body); err == nil {
			return report, nil
		}
	}

	report, err := c.query(ctx, opts.Registry, body)
	if err != nil {
		return nil, err
	}

	if !opts.NoCache {
		if err := cache.Save(body, report); err != nil {
			c.logger.Warn("failed to cache audit response: " + err.Error())
		}
	}

	return report, nil
}

func (c *Client) query(ctx context.Context, registry string, body []byte) (*domain.AuditReport, error) {
	url := strings.TrimRight(registry, "/") + auditEndpointPath

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAuditRequestFailed.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAuditRequestFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		reqErr := zerr.With(domain.ErrAuditRequestFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(reqErr, "url", url)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAuditRequestFailed.Error())
	}

	var report domain.AuditReport
	if err := json.Unmarshal(respBody, &report); err != nil {
		return nil, zerr.Wrap(err, domain.ErrAuditParseFailed.Error())
	}

	return &report, nil
}

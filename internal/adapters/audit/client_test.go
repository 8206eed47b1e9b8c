package audit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
	"github.com/thewilloftheshadow/bun-deps/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func sampleRequest() *domain.AuditRequest {
	return domain.NewAuditRequest(&domain.AuditTree{
		Name:         "demo",
		Version:      "0.0.0",
		Requires:     map[string]string{"left-pad": "^1.0.0"},
		Dependencies: map[string]*domain.AuditNode{"left-pad": {Version: "1.3.0"}},
	})
}

func TestClient_Audit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/-/npm/v1/security/audits", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.AuditRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "demo", req.Name)

		_ = json.NewEncoder(w).Encode(sampleReport())
	}))
	defer server.Close()

	client := newClientWithHTTP(mocks.NewMockLogger(ctrl), server.Client())

	opts := domain.AuditOptions{
		Registry: server.URL,
		CacheDir: filepath.Join(t.TempDir(), "cache"),
	}

	report, err := client.Audit(t.Context(), sampleRequest(), opts)
	require.NoError(t, err)
	assert.Equal(t, sampleReport(), report)
	assert.Equal(t, 1, hits)

	// Second identical request is served from the cache.
	report, err = client.Audit(t.Context(), sampleRequest(), opts)
	require.NoError(t, err)
	assert.Equal(t, sampleReport(), report)
	assert.Equal(t, 1, hits)
}

func TestClient_Audit_NoCacheBypassesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_ = json.NewEncoder(w).Encode(sampleReport())
	}))
	defer server.Close()

	client := newClientWithHTTP(mocks.NewMockLogger(ctrl), server.Client())

	opts := domain.AuditOptions{
		Registry: server.URL,
		CacheDir: filepath.Join(t.TempDir(), "cache"),
		NoCache:  true,
	}

	for range 2 {
		_, err := client.Audit(t.Context(), sampleRequest(), opts)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, hits)
}

func TestClient_Audit_NonSuccessStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer server.Close()

	client := newClientWithHTTP(mocks.NewMockLogger(ctrl), server.Client())

	_, err := client.Audit(t.Context(), sampleRequest(), domain.AuditOptions{
		Registry: server.URL,
		CacheDir: filepath.Join(t.TempDir(), "cache"),
	})
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrAuditRequestFailed.Error())
}

func TestClient_Audit_UnparseableResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newClientWithHTTP(mocks.NewMockLogger(ctrl), server.Client())

	_, err := client.Audit(t.Context(), sampleRequest(), domain.AuditOptions{
		Registry: server.URL,
		CacheDir: filepath.Join(t.TempDir(), "cache"),
	})
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrAuditParseFailed.Error())
}

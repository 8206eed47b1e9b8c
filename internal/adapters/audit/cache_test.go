package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
)

func sampleReport() *domain.AuditReport {
	return &domain.AuditReport{
		Advisories: map[string]domain.Advisory{
			"1001": {
				ID:         1001,
				ModuleName: "left-pad",
				Severity:   "high",
				Title:      "Prototype pollution",
			},
		},
		Metadata: domain.AuditMetadata{
			Vulnerabilities: domain.VulnerabilityCounts{High: 1},
		},
	}
}

func TestCache_RoundTrip(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "cache"))
	body := []byte(`{"name":"demo"}`)

	_, err := cache.Load(body)
	require.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, cache.Save(body, sampleReport()))

	got, err := cache.Load(body)
	require.NoError(t, err)
	assert.Equal(t, sampleReport(), got)

	// A different request body addresses a different entry.
	_, err = cache.Load([]byte(`{"name":"other"}`))
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCache_ExpiredEntryIsAMiss(t *testing.T) {
	dir := t.TempDir()
	cache := NewCache(dir)
	body := []byte(`{"name":"demo"}`)

	require.NoError(t, cache.Save(body, sampleReport()))

	// Age the stored entry past the TTL.
	path := cache.entryPath(body)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry cacheEntry
	require.NoError(t, json.Unmarshal(data, &entry))
	entry.Timestamp = time.Now().Add(-cacheTTL - time.Minute)

	aged, err := json.Marshal(entry)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, aged, 0o644))

	_, err = cache.Load(body)
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCache_CorruptEntry(t *testing.T) {
	dir := t.TempDir()
	cache := NewCache(dir)
	body := []byte(`{"name":"demo"}`)

	require.NoError(t, cache.Save(body, sampleReport()))
	require.NoError(t, os.WriteFile(cache.entryPath(body), []byte("not json"), 0o644))

	_, err := cache.Load(body)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrCacheUnmarshalFailed.Error())
}

func TestCache_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	cache := NewCache(dir)

	require.NoError(t, cache.Save([]byte("body"), sampleReport()))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

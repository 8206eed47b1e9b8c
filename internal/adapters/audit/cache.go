package audit

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
	"go.trai.ch/zerr"
)

// cacheTTL bounds how long a cached audit response is served before the
// endpoint is queried again.
const cacheTTL = 24 * time.Hour

// Cache stores audit responses on disk, addressed by a hash of the request
// body, so identical trees skip the network entirely.
type Cache struct {
	dir string
}

// NewCache creates a Cache rooted at the given directory. The directory is
// created lazily on the first write.
func NewCache(dir string) *Cache {
	return &Cache{dir: filepath.Clean(dir)}
}

// cacheEntry is the on-disk representation of one cached response.
type cacheEntry struct {
	Digest    string              `json:"digest"`
	Report    *domain.AuditReport `json:"report"`
	Timestamp time.Time           `json:"timestamp"`
}

// Load returns the cached report for the given request body, or
// ErrCacheMiss when the entry is absent, expired or unreadable.
func (c *Cache) Load(body []byte) (*domain.AuditReport, error) {
	path := c.entryPath(body)

	data, err := os.ReadFile(path) //nolint:gosec // path is constructed from the cache dir and a hashed filename
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrCacheMiss
		}
		return nil, zerr.Wrap(err, domain.ErrCacheMiss.Error())
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheUnmarshalFailed.Error())
	}

	if entry.Report == nil || time.Since(entry.Timestamp) > cacheTTL {
		return nil, domain.ErrCacheMiss
	}

	return entry.Report, nil
}

// Save writes the report for the given request body atomically.
func (c *Cache) Save(body []byte, report *domain.AuditReport) error {
	entry := cacheEntry{
		Digest:    digest(body),
		Report:    report,
		Timestamp: time.Now(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if err := c.atomicWriteFile(c.entryPath(body), data); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

func (c *Cache) entryPath(body []byte) string {
	return filepath.Join(c.dir, digest(body)+".json")
}

// digest derives the content address for a request body.
func digest(body []byte) string {
	return strconv.FormatUint(xxhash.Sum64(body), 16)
}

// atomicWriteFile writes data to a file atomically by writing to a temp
// file and renaming it.
func (c *Cache) atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}

	tmpFile, err := os.CreateTemp(dir, "audit-cache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

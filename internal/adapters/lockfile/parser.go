// Package lockfile provides discovery, reading and parsing of the resolved
// dependency lockfile into the domain model.
package lockfile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
	"go.trai.ch/zerr"
)

// workspaceEntry mirrors one value of the lockfile's workspace table.
type workspaceEntry struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// packageMetadata mirrors the third element of a package tuple. Range
// values are decoded loosely so non-textual entries can be coerced instead
// of failing the record.
type packageMetadata struct {
	Dependencies         map[string]any `json:"dependencies"`
	DevDependencies      map[string]any `json:"devDependencies"`
	PeerDependencies     map[string]any `json:"peerDependencies"`
	OptionalDependencies map[string]any `json:"optionalDependencies"`
	OS                   any            `json:"os"`
	CPU                  any            `json:"cpu"`
	Bin                  any            `json:"bin"`
}

// Parse builds the typed lockfile model from raw lockfile text.
//
// The text is normalized first (comments and trailing commas removed),
// then decoded with a streaming decoder so the file's key order is
// preserved for both the workspace and the package table. Individual
// package entries that do not match the expected tuple shape are
// classified as skipped here, once, and never fail the model; a document
// that is not well-formed, or that lacks a packages table, fails with
// ErrMalformedLockfile.
func Parse(data []byte) (*domain.Lockfile, error) {
	dec := json.NewDecoder(bytes.NewReader(normalizeJSONC(data)))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
	}

	lf := domain.NewLockfile(0)
	sawPackages := false

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
		}
		key, ok := tok.(string)
		if !ok {
			return nil, zerr.With(domain.ErrMalformedLockfile, "token", fmt.Sprint(tok))
		}

		switch key {
		case "lockfileVersion":
			var version int
			if err := dec.Decode(&version); err != nil {
				return nil, zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
			}
			lf.Version = version

		case "workspaces":
			if err := parseWorkspaces(dec, lf); err != nil {
				return nil, err
			}

		case "packages":
			if err := parsePackages(dec, lf); err != nil {
				return nil, err
			}
			sawPackages = true

		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
			}
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
	}

	if !sawPackages {
		return nil, zerr.With(domain.ErrMalformedLockfile, "reason", "missing packages table")
	}

	// Every downstream query expects at least the root workspace.
	if lf.WorkspaceCount() == 0 {
		lf.AddWorkspace(domain.Workspace{Path: ""})
	}

	return lf, nil
}

func parseWorkspaces(dec *json.Decoder, lf *domain.Lockfile) error {
	if err := expectDelim(dec, '{'); err != nil {
		return zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
		}
		path, _ := tok.(string)

		var entry workspaceEntry
		if err := dec.Decode(&entry); err != nil {
			return zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
		}
		lf.AddWorkspace(domain.Workspace{
			Path:            path,
			Name:            entry.Name,
			Version:         entry.Version,
			Dependencies:    entry.Dependencies,
			DevDependencies: entry.DevDependencies,
		})
	}
	if _, err := dec.Token(); err != nil {
		return zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
	}
	return nil
}

func parsePackages(dec *json.Decoder, lf *domain.Lockfile) error {
	if err := expectDelim(dec, '{'); err != nil {
		return zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
		}

		rec, ok := decodeRecord(key, raw)
		if !ok {
			lf.AddSkipped(key)
			continue
		}
		lf.AddPackage(rec)
	}
	if _, err := dec.Token(); err != nil {
		return zerr.Wrap(err, domain.ErrMalformedLockfile.Error())
	}
	return nil
}

// decodeRecord classifies one raw package entry. A well-formed entry is an
// ordered tuple of at least three elements: resolved key, source id and a
// metadata object, optionally followed by an integrity string. Anything
// else is reported as malformed so the caller can skip it.
func decodeRecord(key string, raw json.RawMessage) (domain.PackageRecord, bool) {
	var rec domain.PackageRecord

	var tuple []json.RawMessage
	if err := json.Unmarshal(raw, &tuple); err != nil || len(tuple) < 3 {
		return rec, false
	}

	var resolvedKey, sourceID string
	if err := json.Unmarshal(tuple[0], &resolvedKey); err != nil {
		return rec, false
	}
	if err := json.Unmarshal(tuple[1], &sourceID); err != nil {
		return rec, false
	}

	var meta packageMetadata
	if err := json.Unmarshal(tuple[2], &meta); err != nil {
		return rec, false
	}

	var integrity string
	if len(tuple) >= 4 {
		// A non-string integrity element does not invalidate the record.
		_ = json.Unmarshal(tuple[3], &integrity)
	}

	rec = domain.PackageRecord{
		Key:                  key,
		Name:                 domain.BareName(key),
		ResolvedKey:          resolvedKey,
		SourceID:             sourceID,
		Integrity:            integrity,
		Dependencies:         normalizeRanges(meta.Dependencies),
		DevDependencies:      normalizeRanges(meta.DevDependencies),
		PeerDependencies:     normalizeRanges(meta.PeerDependencies),
		OptionalDependencies: normalizeRanges(meta.OptionalDependencies),
		OS:                   stringList(meta.OS),
		CPU:                  stringList(meta.CPU),
		Bin:                  binEntries(meta.Bin),
	}
	return rec, true
}

// normalizeRanges coerces non-textual declared ranges to the wildcard
// marker, so query sites never re-check value shapes.
func normalizeRanges(raw map[string]any) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for name, value := range raw {
		if s, ok := value.(string); ok {
			out[name] = s
			continue
		}
		out[name] = "*"
	}
	return out
}

// stringList accepts either a single string or an array of strings, the
// two shapes platform constraints appear in.
func stringList(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func binEntries(value any) map[string]string {
	raw, ok := value.(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for name, path := range raw {
		if s, ok := path.(string); ok {
			out[name] = s
		}
	}
	return out
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want.String(), tok)
	}
	return nil
}

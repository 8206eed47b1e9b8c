package domain

import "go.trai.ch/zerr"

var (
	// ErrLockfileNotFound is returned when no lockfile is found in the
	// working directory or any of its parents.
	ErrLockfileNotFound = zerr.New("could not find " + LockFileName)

	// ErrLockfileReadFailed is returned when the lockfile cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrMalformedLockfile is returned when the lockfile text cannot be
	// parsed into the minimal required shape. Fatal, no partial results.
	ErrMalformedLockfile = zerr.New("malformed lockfile")

	// ErrNoTargetsSpecified is returned when the why command is invoked
	// without package names.
	ErrNoTargetsSpecified = zerr.New("no packages specified")

	// ErrSettingsReadFailed is returned when the settings file exists but
	// cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be
	// parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrAuditMarshalFailed is returned when the audit request body cannot
	// be serialized.
	ErrAuditMarshalFailed = zerr.New("failed to marshal audit request")

	// ErrAuditRequestFailed is returned when the audit endpoint cannot be
	// reached or answers with a non-success status.
	ErrAuditRequestFailed = zerr.New("audit request failed")

	// ErrAuditParseFailed is returned when the audit response cannot be
	// parsed.
	ErrAuditParseFailed = zerr.New("failed to parse audit response")

	// ErrVulnerabilitiesFound is returned by the audit flow when the
	// report counts at least one vulnerability, after the report has been
	// rendered. It maps to a non-zero exit status.
	ErrVulnerabilitiesFound = zerr.New("vulnerabilities found")

	// ErrCacheMiss is returned when a requested audit response is not in
	// the cache or has expired.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrCacheCreateFailed is returned when the cache directory cannot be
	// created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheMarshalFailed is returned when a cache entry cannot be
	// serialized.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrCacheUnmarshalFailed is returned when a cache entry cannot be
	// deserialized.
	ErrCacheUnmarshalFailed = zerr.New("failed to unmarshal cache entry")

	// ErrCacheWriteFailed is returned when a cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")
)

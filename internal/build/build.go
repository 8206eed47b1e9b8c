// Package build holds build-time metadata injected via ldflags.
package build

// Version is the application version, set at build time.
var Version = "dev"

// Commit is the git commit the binary was built from.
var Commit = "none"

// Date is the build timestamp.
var Date = "unknown"

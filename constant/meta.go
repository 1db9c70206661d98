// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Lectern is the canonical application identifier used for filesystem paths and CLI branding.
	Lectern = "lectern"

	// Version is the current application semantic version string.
	Version = "0.2.1"

	// UserAgent is the HTTP User-Agent string presented to the streaming portal.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, overridden at link time via -ldflags.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)

// Package constant defines immutable application-level identifiers.
package constant

const (
	// Miru is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	Miru = "miru"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is sent with every request to the metadata and token-exchange services.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

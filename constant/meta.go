// Package constant defines immutable application-level identifiers and build metadata.
package constant

import _ "embed"

const (
	// Lifo is the canonical application identifier used for filesystem paths and CLI branding.
	Lifo = "lifo"

	// Version is the current application semantic version string.
	Version = "0.3.1"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Logo is the banner printed above the root command help.
//
//go:embed logo.txt
var Logo string

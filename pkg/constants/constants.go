// Package constants provides shared constants used throughout the keyatlas
// codebase. This includes file permissions, default input/output paths, and
// naming constants that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Default path constants for the build pipeline inputs and output
const (
	// DefaultSourcesDir is where versioned keycode definition files live
	DefaultSourcesDir = "data/keycodes"

	// DefaultOverridesFile is the two-column description override table
	DefaultOverridesFile = "data/descriptions.tsv"

	// DefaultRegistryFile is the previously generated descriptor registry
	DefaultRegistryFile = "data/registry.json"

	// DefaultOutputFile is where the generated registry artifact is written
	DefaultOutputFile = "build/keycodes.json"
)

// Naming constants for source file discovery
const (
	// SourceFilePrefix starts every keycode definition filename
	SourceFilePrefix = "keycodes_"
)

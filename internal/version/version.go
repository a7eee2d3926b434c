// Package version holds build metadata and the profile schema versions
// shared by the settings and migration packages.
package version

// Build information (set via ldflags during build).
var (
	ProgramVersion = "3.4.0"
	Commit         = "unknown"
	Date           = "unknown"
)

const (
	// ConfigFileVersion is the profile schema version written by this build.
	ConfigFileVersion = 6

	// MinConfigMigrationVersion is the oldest profile version that can be upgraded.
	MinConfigMigrationVersion = 2

	// LatestConfigMigrationVersion is the newest profile version that still
	// needs an upgrade pass.
	LatestConfigMigrationVersion = 5
)

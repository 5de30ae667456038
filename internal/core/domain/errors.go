package domain

import "go.trai.ch/zerr"

var (
	// ErrRootNotFound is returned when no project root containing the manifest can be located.
	ErrRootNotFound = zerr.New("could not locate project root")

	// ErrManifestNotFound is returned when the manifest file is missing from the project root.
	ErrManifestNotFound = zerr.New("manifest file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrOutputOutsideRoot is returned when a lockfile output path escapes the project root.
	ErrOutputOutsideRoot = zerr.New("lockfile output path is outside project root")

	// ErrResolutionFailed is returned when the dependency resolver cannot produce a lockfile.
	ErrResolutionFailed = zerr.New("dependency resolution failed")

	// ErrConstraintsMissing is returned when the dev compile starts without a usable base lockfile.
	ErrConstraintsMissing = zerr.New("constraints lockfile missing or unreadable")

	// ErrSyncFailed is returned when the environment sync cannot reconcile the installed packages.
	ErrSyncFailed = zerr.New("environment sync failed")

	// ErrCleanFailed is returned when removing stale build metadata fails.
	ErrCleanFailed = zerr.New("failed to remove stale build metadata")

	// ErrWorkdirFailed is returned when the working directory cannot be captured or changed.
	ErrWorkdirFailed = zerr.New("failed to change working directory")

	// ErrLockfileParseFailed is returned when a lockfile line cannot be parsed as a pin.
	ErrLockfileParseFailed = zerr.New("failed to parse lockfile")

	// ErrCommandFailed is returned when an external tool exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrEmptyCommand is returned when a tool invocation has no argv.
	ErrEmptyCommand = zerr.New("empty command")
)

package ports

import "context"

// SyncRequest describes one environment-sync invocation.
type SyncRequest struct {
	// Tool is the sync tool argv prefix from the project layout. Empty
	// means the adapter's default tool.
	Tool []string

	// Lockfiles are the lockfile paths whose union defines the target
	// installed-package set.
	Lockfiles []string

	// Elevate is an argv prefix prepended to the invocation to gain
	// elevated privileges. Empty runs the tool unprivileged.
	Elevate []string
}

// EnvironmentSyncer defines the interface for the environment sync tool.
//
//go:generate mockgen -source=syncer.go -destination=mocks/mock_syncer.go -package=mocks
type EnvironmentSyncer interface {
	// Sync reconciles the installed package set to exactly match the union
	// of the request's lockfiles: missing packages are installed,
	// extraneous ones removed, mismatched ones up- or downgraded. It
	// returns an error wrapping domain.ErrSyncFailed if the tool reports
	// an error.
	Sync(ctx context.Context, req SyncRequest) error
}

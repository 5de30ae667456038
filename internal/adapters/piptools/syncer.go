package piptools

import (
	"context"
	"errors"
	"slices"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Syncer implements ports.EnvironmentSyncer using pip-sync.
type Syncer struct {
	runner ports.CommandRunner
}

// NewSyncer creates a Syncer executing sync invocations through the runner.
func NewSyncer(runner ports.CommandRunner) *Syncer {
	return &Syncer{runner: runner}
}

// Sync reconciles the installed package set against the request's lockfiles.
// The elevate prefix is prepended verbatim; an empty prefix runs the tool
// with the caller's privileges.
func (s *Syncer) Sync(ctx context.Context, req ports.SyncRequest) error {
	tool := req.Tool
	if len(tool) == 0 {
		tool = domain.DefaultSyncTool()
	}

	argv := slices.Clone(req.Elevate)
	argv = append(argv, tool...)
	argv = append(argv, req.Lockfiles...)

	if err := s.runner.Run(ctx, argv, ""); err != nil {
		return zerr.With(errors.Join(domain.ErrSyncFailed, err), "lockfiles", strings.Join(req.Lockfiles, ", "))
	}

	return nil
}

var _ ports.EnvironmentSyncer = (*Syncer)(nil)

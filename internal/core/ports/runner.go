package ports

import "context"

// CommandRunner defines the interface for running external tools.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes argv in dir (empty means the current working
	// directory), streaming the tool's stdout and stderr line by line to
	// the logger. On a non-zero exit it returns an error wrapping
	// domain.ErrCommandFailed with the exit code attached as metadata.
	Run(ctx context.Context, argv []string, dir string) error
}

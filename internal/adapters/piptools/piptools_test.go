package piptools_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/piptools"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestCompiler_BaseInvocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), []string{
		"pip-compile",
		"--upgrade",
		"--extra", "full",
		"--output-file", "requirements.txt",
		"pyproject.toml",
	}, "").Return(nil)

	c := piptools.NewCompiler(runner)
	err := c.Compile(context.Background(), ports.CompileRequest{
		Manifest: "pyproject.toml",
		Extras:   []string{"full"},
		Output:   "requirements.txt",
		Upgrade:  true,
	})
	require.NoError(t, err)
}

func TestCompiler_ConstrainedDevInvocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), []string{
		"pip-compile",
		"--upgrade",
		"--extra", "full",
		"--extra", "dev",
		"--constraint", "requirements.txt",
		"--output-file", "dev-requirements.txt",
		"pyproject.toml",
	}, "").Return(nil)

	c := piptools.NewCompiler(runner)
	err := c.Compile(context.Background(), ports.CompileRequest{
		Manifest:    "pyproject.toml",
		Extras:      []string{"full", "dev"},
		Constraints: "requirements.txt",
		Output:      "dev-requirements.txt",
		Upgrade:     true,
	})
	require.NoError(t, err)
}

func TestCompiler_CustomTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), []string{
		"uv", "pip", "compile",
		"--output-file", "requirements.txt",
		"pyproject.toml",
	}, "").Return(nil)

	c := piptools.NewCompiler(runner)
	err := c.Compile(context.Background(), ports.CompileRequest{
		Tool:     []string{"uv", "pip", "compile"},
		Manifest: "pyproject.toml",
		Output:   "requirements.txt",
	})
	require.NoError(t, err)
}

func TestCompiler_ResolverFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), "").Return(zerr.New("conflicting pins"))

	c := piptools.NewCompiler(runner)
	err := c.Compile(context.Background(), ports.CompileRequest{
		Manifest: "pyproject.toml",
		Output:   "requirements.txt",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResolutionFailed)
}

func TestSyncer_ElevatedInvocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), []string{
		"sudo", "pip-sync", "requirements.txt", "dev-requirements.txt",
	}, "").Return(nil)

	s := piptools.NewSyncer(runner)
	err := s.Sync(context.Background(), ports.SyncRequest{
		Lockfiles: []string{"requirements.txt", "dev-requirements.txt"},
		Elevate:   []string{"sudo"},
	})
	require.NoError(t, err)
}

func TestSyncer_UnprivilegedInvocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), []string{
		"pip-sync", "requirements.txt",
	}, "").Return(nil)

	s := piptools.NewSyncer(runner)
	err := s.Sync(context.Background(), ports.SyncRequest{
		Lockfiles: []string{"requirements.txt"},
	})
	require.NoError(t, err)
}

func TestSyncer_SyncFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), "").Return(zerr.New("permission denied"))

	s := piptools.NewSyncer(runner)
	err := s.Sync(context.Background(), ports.SyncRequest{
		Lockfiles: []string{"requirements.txt", "dev-requirements.txt"},
		Elevate:   []string{"sudo"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSyncFailed)
}

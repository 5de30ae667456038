package main

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newTestApp(ctrl *gomock.Controller, locator *mocks.MockRootLocator, logger *mocks.MockLogger) *app.App {
	return app.New(
		locator,
		mocks.NewMockConfigLoader(ctrl),
		mocks.NewMockLockfileCompiler(ctrl),
		mocks.NewMockEnvironmentSyncer(ctrl),
		mocks.NewMockWatcher(ctrl),
		logger,
	)
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocator := mocks.NewMockRootLocator(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := newTestApp(ctrl, mockLocator, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocator := mocks.NewMockRootLocator(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	// The failing error is reported through the logger.
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	// Root discovery failing aborts the update.
	mockLocator.EXPECT().Locate(".").Return("", domain.ErrRootNotFound)

	application := newTestApp(ctrl, mockLocator, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"update"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_PropagatesToolExitCode verifies that a failing external tool's
// exit code becomes the process exit code.
func TestRun_PropagatesToolExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocator := mocks.NewMockRootLocator(ctrl)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockCompiler := mocks.NewMockLockfileCompiler(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	root := t.TempDir()
	mockLocator.EXPECT().Locate(".").Return(root, nil)
	mockLoader.EXPECT().Load(root).Return(domain.DefaultLayout(root), nil)

	// A real exec.ExitError, carried through the chain the way the runner
	// reports one.
	cmdErr := exec.Command("sh", "-c", "exit 3").Run()
	require.Error(t, cmdErr)
	mockCompiler.EXPECT().
		Compile(gomock.Any(), gomock.Any()).
		Return(zerr.With(errors.Join(domain.ErrResolutionFailed, cmdErr), "exit_code", 3))

	application := app.New(
		mockLocator,
		mockLoader,
		mockCompiler,
		mocks.NewMockEnvironmentSyncer(ctrl),
		mocks.NewMockWatcher(ctrl),
		mockLogger,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"update"}, stderr, provider)

	assert.Equal(t, 3, exitCode)
}

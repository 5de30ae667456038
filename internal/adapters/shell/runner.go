// Package shell provides a CommandRunner for invoking external tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner streaming tool output to the given logger.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes argv in dir and waits for it to complete. The tool's stdout
// and stderr are streamed line by line through the logger, so the underlying
// tool's diagnostics stay visible verbatim. The environment is inherited
// unchanged so the tool sees the same PATH and credentials as the invoking
// shell.
func (r *Runner) Run(ctx context.Context, argv []string, dir string) error {
	if len(argv) == 0 {
		return domain.ErrEmptyCommand
	}

	stdoutLog := &logWriter{logger: r.logger, level: "info"}
	stderrLog := &logWriter{logger: r.logger, level: "error"}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv comes from validated config
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdout = stdoutLog
	cmd.Stderr = stderrLog

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		cmdErr := zerr.With(errors.Join(domain.ErrCommandFailed, err), "command", strings.Join(argv, " "))
		return zerr.With(cmdErr, "exit_code", exitCode)
	}

	return nil
}

// logWriter buffers writes and forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		line := w.buf[:i]
		w.logLine(line)

		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes any remaining partial line.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}

var _ ports.CommandRunner = (*Runner)(nil)

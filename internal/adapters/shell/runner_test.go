package shell

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/core/domain"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Info(msg string) { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warn(string)     {}
func (l *recordingLogger) Error(err error) { l.errors = append(l.errors, err.Error()) }

func TestRunner_EmptyCommand(t *testing.T) {
	log := &recordingLogger{}
	r := NewRunner(log)

	err := r.Run(context.Background(), nil, "")
	assert.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestRunner_StreamsStdout(t *testing.T) {
	log := &recordingLogger{}
	r := NewRunner(log)

	err := r.Run(context.Background(), []string{"sh", "-c", "echo one; echo two"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, log.infos)
}

func TestRunner_NonZeroExitCode(t *testing.T) {
	log := &recordingLogger{}
	r := NewRunner(log)

	err := r.Run(context.Background(), []string{"sh", "-c", "echo oops >&2; exit 3"}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.Equal(t, []string{"oops"}, log.errors)
}

func TestRunner_RunsInDir(t *testing.T) {
	log := &recordingLogger{}
	r := NewRunner(log)

	dir := t.TempDir()
	err := r.Run(context.Background(), []string{"pwd"}, dir)
	require.NoError(t, err)
	require.Len(t, log.infos, 1)
	// TempDir may be a symlink; compare the unique leaf only.
	assert.Contains(t, log.infos[0], filepath.Base(dir))
}

func TestLogWriter_BuffersPartialLines(t *testing.T) {
	log := &recordingLogger{}
	w := &logWriter{logger: log, level: "info"}

	_, err := w.Write([]byte("hel"))
	require.NoError(t, err)
	assert.Empty(t, log.infos)

	_, err = w.Write([]byte("lo\nwor"))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, log.infos)

	require.NoError(t, w.Close())
	assert.Equal(t, []string{"hello", "wor"}, log.infos)
}

func TestLogWriter_StripsCarriageReturn(t *testing.T) {
	log := &recordingLogger{}
	w := &logWriter{logger: log, level: "info"}

	_, err := w.Write([]byte("progress\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"progress"}, log.infos)
}

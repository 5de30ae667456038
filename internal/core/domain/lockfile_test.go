package domain_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/core/domain"
)

func TestParseLockfile(t *testing.T) {
	t.Run("parses resolver output", func(t *testing.T) {
		data := []byte(`#
# This file is autogenerated by pip-compile with Python 3.11
# by the following command:
#
#    pip-compile --extra=full --output-file=requirements.txt pyproject.toml
#
aiohttp==3.9.1
    # via demo (pyproject.toml)
aiosignal==1.3.1
    # via aiohttp
typing_extensions==4.9.0 ; python_version < "3.12"
uvicorn[standard]==0.25.0
yarl==1.9.4 \
    # via aiohttp
`)
		lf, err := domain.ParseLockfile(data)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			"aiohttp":           "3.9.1",
			"aiosignal":         "1.3.1",
			"typing-extensions": "4.9.0",
			"uvicorn":           "0.25.0",
			"yarl":              "1.9.4",
		}, lf.Pins)
	})

	t.Run("skips option lines", func(t *testing.T) {
		data := []byte("--index-url https://pypi.org/simple\n-e .\nanyio==4.2.0\n")
		lf, err := domain.ParseLockfile(data)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"anyio": "4.2.0"}, lf.Pins)
	})

	t.Run("empty input yields no pins", func(t *testing.T) {
		lf, err := domain.ParseLockfile(nil)
		require.NoError(t, err)
		assert.Empty(t, lf.Pins)
	})

	t.Run("rejects unpinned entries", func(t *testing.T) {
		_, err := domain.ParseLockfile([]byte("anyio==4.2.0\nrequests>=2.0\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrLockfileParseFailed)
	})

	t.Run("rejects entries without a version", func(t *testing.T) {
		_, err := domain.ParseLockfile([]byte("anyio==\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrLockfileParseFailed)
	})
}

func TestDiff(t *testing.T) {
	prev := &domain.Lockfile{Pins: map[string]string{
		"anyio":  "3.7.1",
		"orjson": "3.9.10",
		"yarl":   "1.9.4",
	}}
	next := &domain.Lockfile{Pins: map[string]string{
		"anyio":    "4.2.0",
		"pydantic": "2.6.0",
		"yarl":     "1.9.4",
	}}

	t.Run("classifies changes", func(t *testing.T) {
		d := domain.Diff(prev, next)

		assert.Equal(t, []domain.PinChange{{Name: "pydantic", To: "2.6.0"}}, d.Added)
		assert.Equal(t, []domain.PinChange{{Name: "anyio", From: "3.7.1", To: "4.2.0"}}, d.Changed)
		assert.Equal(t, []domain.PinChange{{Name: "orjson", From: "3.9.10"}}, d.Removed)
		assert.False(t, d.Empty())
	})

	t.Run("nil previous generation diffs as all added", func(t *testing.T) {
		d := domain.Diff(nil, next)
		assert.Len(t, d.Added, 3)
		assert.Empty(t, d.Changed)
		assert.Empty(t, d.Removed)
	})

	t.Run("identical generations diff empty", func(t *testing.T) {
		d := domain.Diff(prev, prev)
		assert.True(t, d.Empty())
		assert.Equal(t, "no pin changes", d.Summary())
	})

	t.Run("summary renders one line per package", func(t *testing.T) {
		d := domain.Diff(prev, next)

		g := goldie.New(t)
		g.Assert(t, "diff_summary", []byte(d.Summary()))
	})
}

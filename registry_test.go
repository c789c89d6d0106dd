// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logkit

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLogger(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	dir := t.TempDir()

	opts := DefaultOptions()
	opts.ConsoleWriter = new(bytes.Buffer)

	handle, err := registry.Logger("scraper", dir, "scraper", opts)
	require.NoError(t, err)
	assert.Equal(t, "scraper", handle.Name())
	assert.Len(t, handle.Sinks(), 2)

	// Requesting the same name again returns the first handle with its
	// sinks unchanged.
	again, err := registry.Logger("scraper", dir, "scraper", opts)
	require.NoError(t, err)
	assert.Same(t, handle, again)
	assert.Len(t, again.Sinks(), 2)
}

func TestRegistryLoggerBlankName(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, name := range []string{"", " ", "   ", "\t\n"} {
		_, err := registry.Logger(name, t.TempDir(), "job", DefaultOptions())
		require.ErrorIs(t, err, ErrConfiguration)
	}
}

func TestRegistryLoggerSinkSelection(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	opts := DefaultOptions()
	opts.FileSinkEnabled = false
	opts.ConsoleWriter = new(bytes.Buffer)

	handle, err := registry.Logger("console-only", "", "", opts)
	require.NoError(t, err)
	require.Len(t, handle.Sinks(), 1)
	assert.Equal(t, INFO, handle.Sinks()[0].Threshold())

	opts = DefaultOptions()
	opts.ConsoleSinkEnabled = false

	handle, err = registry.Logger("file-only", t.TempDir(), "job", opts)
	require.NoError(t, err)
	require.Len(t, handle.Sinks(), 1)
	assert.Equal(t, DEBUG, handle.Sinks()[0].Threshold())
}

func TestRegistryLoggerMissingDirectory(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	dir := filepath.Join(t.TempDir(), "missing")

	_, err := registry.Logger("orphan", dir, "job", DefaultOptions())
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrConfiguration)
}

func TestNewUsesDefaultRegistry(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.FileSinkEnabled = false
	opts.ConsoleWriter = new(bytes.Buffer)

	handle, err := New("default-registry-logger", "", "", opts)
	require.NoError(t, err)

	again, err := New("default-registry-logger", "", "", opts)
	require.NoError(t, err)
	assert.Same(t, handle, again)
}

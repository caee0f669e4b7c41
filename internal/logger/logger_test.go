package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_RecordsLines(t *testing.T) {
	log := New(WithConsole(nil))

	log.Info("model loaded", "name", "duck.glb", "meshes", 1)
	log.Error("load failed", "error", "bad magic")

	assert.Equal(t, []string{
		"INFO model loaded name=duck.glb meshes=1",
		"ERROR load failed error=bad magic",
	}, log.Lines())
}

func TestLogger_LevelFiltersEverySink(t *testing.T) {
	var console bytes.Buffer
	log := New(WithConsole(&console), WithLevel(slog.LevelWarn))

	log.Info("hidden")
	log.Warn("shown")

	assert.Equal(t, []string{"WARN shown"}, log.Lines())
	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "shown")
}

func TestLogger_WithAttrsAndGroups(t *testing.T) {
	log := New(WithConsole(nil))

	log.With("source", "file").WithGroup("asset").Info("decoded", "meshes", 2)

	assert.Equal(t, []string{"INFO decoded source=file asset.meshes=2"}, log.Lines())
}

func TestLogger_MaxLines(t *testing.T) {
	log := New(WithConsole(nil), WithMaxLines(2))

	log.Info("one")
	log.Info("two")
	log.Info("three")

	assert.Equal(t, []string{"INFO two", "INFO three"}, log.Lines())
}

func TestLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewer.log")
	log := New(WithConsole(nil), WithLogFile(path))

	log.Info("written to disk")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to disk")
}

func TestLogger_EverySinkGetsDerivedAttrs(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "viewer.log")
	log := New(WithConsole(&console), WithLogFile(path))

	log.With("source", "url").Warn("fetch slow", "ms", 900)
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"WARN fetch slow source=url ms=900"}, log.Lines())
	assert.Contains(t, string(data), "source=url")
	assert.Contains(t, string(data), "ms=900")
	assert.Contains(t, console.String(), "fetch slow")
	assert.Contains(t, console.String(), "source=")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glb-viewer/internal/config"
)

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
}

func TestLoad_DoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"# viewer\n"+
			ModelURL+"=\"https://example.com/duck.glb\"\n"+
			LogLevel+"=debug\n"), 0644))

	t.Setenv(LogLevel, "warn")
	t.Setenv(ModelURL, "")
	require.NoError(t, os.Unsetenv(ModelURL))

	require.NoError(t, Load(path))

	assert.Equal(t, "https://example.com/duck.glb", os.Getenv(ModelURL))
	assert.Equal(t, "warn", os.Getenv(LogLevel))
}

func TestApply(t *testing.T) {
	t.Setenv(ModelURL, "https://example.com/duck.glb")
	t.Setenv(LogLevel, "debug")
	t.Setenv(LogFile, "/tmp/viewer.log")
	t.Setenv(Watch, "true")

	p := config.Default()
	require.NoError(t, Apply(&p))

	assert.Equal(t, "https://example.com/duck.glb", p.Model.URL)
	assert.Equal(t, "debug", p.Log.Level)
	assert.Equal(t, "/tmp/viewer.log", p.Log.File)
	assert.True(t, p.Model.Watch)
}

func TestApply_EmptyLeavesDefaults(t *testing.T) {
	t.Setenv(ModelURL, "")
	t.Setenv(LogLevel, "")
	t.Setenv(LogFile, "")
	t.Setenv(Watch, "")

	p := config.Default()
	require.NoError(t, Apply(&p))
	assert.Equal(t, config.Default(), p)
}

func TestApply_Invalid(t *testing.T) {
	t.Setenv(LogLevel, "loud")
	p := config.Default()
	assert.Error(t, Apply(&p))

	t.Setenv(LogLevel, "")
	t.Setenv(Watch, "sometimes")
	assert.Error(t, Apply(&p))
}

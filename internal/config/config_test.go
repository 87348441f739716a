package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nrender:\n  plain: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the values are taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.True(t, conf.Render.Plain)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: debug\n"), 0o600))
		t.Setenv("LOG_LEVEL", "error")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
	})

	t.Run("Defaults without a file", func(t *testing.T) {
		// Given: no config file and no overrides
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		conf, err := Load(path)

		// Then: defaults apply
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.Render.Plain)
	})

	t.Run("Malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("render: [\n"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}

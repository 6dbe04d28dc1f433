package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dusklight/pixelpipe/pkg/config"
	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// A missing user file leaves the embedded defaults in effect
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, "current", cfg.Pipeline.DefaultVersion)
	assert.Equal(t, types.VersionCurrent, cfg.DefaultVersion())
	assert.Equal(t, "", cfg.Storage.Path)
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadUserFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixelpipe.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"[pipeline]\ndefault_version = \"legacy\"\n\n[log]\nverbosity = 2\n"), 0644))

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, types.VersionLegacy, cfg.DefaultVersion())
	assert.Equal(t, 2, cfg.Log.Verbosity)
	// Untouched sections keep their defaults
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PIXELPIPE_OUTPUT_COLOR", "never")

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Output.Color)
}

func TestLoadRejectsInvalid(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "pixelpipe.toml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("unknown_version", func(t *testing.T) {
		_, err := config.LoadFrom(write(t, "[pipeline]\ndefault_version = \"v99\"\n"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("custom_is_not_a_default", func(t *testing.T) {
		_, err := config.LoadFrom(write(t, "[pipeline]\ndefault_version = \"custom\"\n"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("bad_color_mode", func(t *testing.T) {
		_, err := config.LoadFrom(write(t, "[output]\ncolor = \"sometimes\"\n"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("unparseable_toml", func(t *testing.T) {
		_, err := config.LoadFrom(write(t, "not [valid toml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestGenerate(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	data, err := cfg.Generate()
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_version = 'current'")
	assert.Contains(t, string(data), "[output]")
}

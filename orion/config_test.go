package orion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplayConfigDefaults(t *testing.T) {
	config, err := ParseDisplayConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDisplayConfig(), config)
}

func TestParseDisplayConfig(t *testing.T) {
	config, err := ParseDisplayConfig([]byte(`
title = "Logo"
width = 800
clear_color = [1.0, 1.0, 1.0, 1.0]
msaa = false
`))

	require.NoError(t, err)

	assert.Equal(t, "Logo", config.Title)
	assert.Equal(t, 800, config.Width)
	assert.Equal(t, 768, config.Height)
	assert.True(t, config.Resizable)
	assert.False(t, config.MSAA)
	assert.Equal(t, float32(1), config.Clear().Red())
}

func TestParseDisplayConfigUnknownField(t *testing.T) {
	_, err := ParseDisplayConfig([]byte(`fullscreen = true`))
	assert.Error(t, err)
}

func TestParseDisplayConfigInvalidSize(t *testing.T) {
	_, err := ParseDisplayConfig([]byte(`width = 0`))
	assert.ErrorContains(t, err, "invalid window size")
}

func TestLoadDisplayConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.toml")
	require.NoError(t, os.WriteFile(path, []byte(`height = 300`), 0o644))

	config, err := LoadDisplayConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 300, config.Height)

	_, err = LoadDisplayConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

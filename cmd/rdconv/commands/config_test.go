package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdconv.toml")
	require.NoError(t, os.WriteFile(path, []byte("variant = \"joffe32\"\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "joffe32", cfg.Variant)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdconv.toml")
	require.NoError(t, os.WriteFile(path, []byte("variant = [unterminated"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

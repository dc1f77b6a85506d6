package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFile(t *testing.T) {
	v, err := Load(t.TempDir(), "missing")
	require.NoError(t, err)

	v.SetDefault("rowid.randomness_length", 22)
	t.Setenv("ROWID_RANDOMNESS_LENGTH", "6")
	assert.Equal(t, 6, v.GetInt("rowid.randomness_length"))
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("rowid:\n  alphabet: ABC\n"), 0o600))

	v, err := Load(dir, "config")
	require.NoError(t, err)
	assert.Equal(t, "ABC", v.GetString("rowid.alphabet"))
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("rowid: [\n"), 0o600))

	_, err := Load(dir, "config")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  port: 9000\n"), 0o600))

	v, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, v.GetInt("http.port"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

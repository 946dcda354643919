package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDhyanHome(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("DHYAN_HOME", dir)

		assert.Equal(t, dir, GetDhyanHome())
		assert.Equal(t, filepath.Join(dir, "state.db"), GetDBPath())
		assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
		assert.Equal(t, filepath.Join(dir, "sounds"), GetSoundsDir())
		assert.Equal(t, filepath.Join(dir, "dhyan.lock"), GetLockPath())
	})

	t.Run("default under user home", func(t *testing.T) {
		t.Setenv("DHYAN_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(home, ".dhyan"), GetDhyanHome())
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "sounds"), ExpandPath("~/sounds"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "", ExpandPath(""))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("returns defaults when no config file exists", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "", cfg.URL)
		assert.Equal(t, DefaultOutputDir, cfg.Output)
		assert.False(t, cfg.Zip)
	})

	t.Run("reads values from mongovault.yaml", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)

		dir := filepath.Join(home, "mongovault")
		require.NoError(t, os.MkdirAll(dir, 0755))
		content := "url: mongodb://localhost:27017\noutput: /srv/backups\nzip: true\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "mongovault.yaml"), []byte(content), 0644))

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "mongodb://localhost:27017", cfg.URL)
		assert.Equal(t, "/srv/backups", cfg.Output)
		assert.True(t, cfg.Zip)
	})

	t.Run("environment overrides the config file", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)

		dir := filepath.Join(home, "mongovault")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "mongovault.yaml"), []byte("url: mongodb://file:27017\n"), 0644))

		t.Setenv("MONGOVAULT_URL", "mongodb://env:27017")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "mongodb://env:27017", cfg.URL)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)

		dir := filepath.Join(home, "mongovault")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "mongovault.yaml"), []byte("url: [broken\n"), 0644))

		_, err := Load()

		assert.Error(t, err)
	})
}

func TestSave(t *testing.T) {
	t.Run("round trips through Load", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		err := Save(&Config{URL: "mongodb://localhost:27017", Output: "/data/dumps", Zip: true})
		require.NoError(t, err)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "mongodb://localhost:27017", cfg.URL)
		assert.Equal(t, "/data/dumps", cfg.Output)
		assert.True(t, cfg.Zip)
	})

	t.Run("preserves keys added by hand", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)

		dir := filepath.Join(home, "mongovault")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "mongovault.yaml"), []byte("custom_note: keep me\n"), 0644))

		require.NoError(t, Save(&Config{URL: "mongodb://localhost:27017"}))

		content, err := os.ReadFile(filepath.Join(dir, "mongovault.yaml"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "custom_note: keep me")
		assert.Contains(t, string(content), "mongodb://localhost:27017")
	})

	t.Run("does not overwrite url with empty value", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)

		require.NoError(t, Save(&Config{URL: "mongodb://localhost:27017"}))
		require.NoError(t, Save(&Config{Output: "/elsewhere"}))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "mongodb://localhost:27017", cfg.URL)
		assert.Equal(t, "/elsewhere", cfg.Output)
	})
}

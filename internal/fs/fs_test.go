package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealFS(t *testing.T) {
	t.Run("creates and removes directory trees", func(t *testing.T) {
		dir := t.TempDir()
		nested := filepath.Join(dir, "a", "b", "c")

		require.NoError(t, Default.MkdirAll(nested, 0755))

		info, err := os.Stat(nested)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		require.NoError(t, Default.RemoveAll(filepath.Join(dir, "a")))

		_, err = os.Stat(nested)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestFaultFS(t *testing.T) {
	t.Run("forces RemoveAll to fail", func(t *testing.T) {
		boom := errors.New("device busy")
		fsys := NewFaultFS()
		fsys.RemoveAllErr = boom

		err := fsys.RemoveAll(t.TempDir())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("forces MkdirAll to fail", func(t *testing.T) {
		boom := errors.New("read-only file system")
		fsys := NewFaultFS()
		fsys.MkdirAllErr = boom

		err := fsys.MkdirAll(filepath.Join(t.TempDir(), "sub"), 0755)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("delegates when no fault is set", func(t *testing.T) {
		fsys := NewFaultFS()
		dir := t.TempDir()

		require.NoError(t, fsys.MkdirAll(filepath.Join(dir, "sub"), 0755))

		info, err := os.Stat(filepath.Join(dir, "sub"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plank/internal/adapters/fs"
)

func TestFileSystem_Exists(t *testing.T) {
	f := fs.New()
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.True(t, f.Exists(path))
	assert.True(t, f.Exists(dir))
	assert.False(t, f.Exists(filepath.Join(dir, "missing")))
}

func TestFileSystem_IsDirectory(t *testing.T) {
	f := fs.New()
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.True(t, f.IsDirectory(dir))
	assert.False(t, f.IsDirectory(path))
	assert.False(t, f.IsDirectory(filepath.Join(dir, "missing")))
}

func TestFileSystem_ReadDir(t *testing.T) {
	f := fs.New()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o750))

	names, err := f.ReadDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "sub"}, names)

	_, err = f.ReadDir(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read directory")
}

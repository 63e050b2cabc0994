package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/renamer/pkg/types"
)

func testFSBehavior(t *testing.T, fs types.FS, root string) {
	t.Helper()

	sub := filepath.ToSlash(filepath.Join(root, "sub"))
	file := filepath.ToSlash(filepath.Join(sub, "a.txt"))
	moved := filepath.ToSlash(filepath.Join(sub, "b.txt"))

	require.NoError(t, fs.MkdirAll(sub, 0755))
	require.NoError(t, fs.WriteFile(file, []byte("hello"), 0644))

	fi, err := fs.Stat(file)
	require.NoError(t, err)
	assert.True(t, fi.Mode().IsRegular())

	entries, err := fs.ReadDir(sub)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.txt", entries[0].Name())

	data, err := fs.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, fs.Rename(file, moved))
	_, err = fs.Stat(file)
	assert.Error(t, err)
	data, err = fs.ReadFile(moved)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, fs.Remove(moved))
	require.NoError(t, fs.RemoveAll(sub))
	_, err = fs.Stat(sub)
	assert.Error(t, err)
}

func TestOSFS(t *testing.T) {
	testFSBehavior(t, NewOS(), t.TempDir())
}

func TestMemoryFS(t *testing.T) {
	testFSBehavior(t, NewMemory(), "/work")
}

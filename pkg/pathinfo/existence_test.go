package pathinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/renamer/pkg/filesystem"
	"github.com/arthur-debert/renamer/pkg/types"
)

func memFS(t *testing.T) types.FS {
	t.Helper()
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/work/docs", 0755))
	require.NoError(t, fs.WriteFile("/work/Report.txt", []byte("x"), 0644))
	require.NoError(t, fs.WriteFile("/work/docs/notes.md", []byte("x"), 0644))
	return fs
}

func TestCheckerCaseSensitive(t *testing.T) {
	c := NewChecker(memFS(t), CaseSensitive)

	exist, actual := c.Lookup("/work/Report.txt")
	assert.Equal(t, ExistsSameCase, exist)
	assert.Equal(t, "/work/Report.txt", actual)

	exist, _ = c.Lookup("/work/report.txt")
	assert.Equal(t, Missing, exist)

	exist, _ = c.Lookup("/work/absent.txt")
	assert.Equal(t, Missing, exist)
}

func TestCheckerCaseInsensitive(t *testing.T) {
	c := NewChecker(memFS(t), CaseInsensitive)

	// Any casing resolves to the same slot, reported as same-case.
	exist, actual := c.Lookup("/work/REPORT.TXT")
	assert.Equal(t, ExistsSameCase, exist)
	assert.Equal(t, "/work/Report.txt", actual)
}

func TestCheckerCasePreserving(t *testing.T) {
	c := NewChecker(memFS(t), CasePreserving)

	exist, actual := c.Lookup("/work/report.txt")
	assert.Equal(t, ExistsDifferentCase, exist)
	assert.Equal(t, "/work/Report.txt", actual)

	exist, _ = c.Lookup("/work/Report.txt")
	assert.Equal(t, ExistsSameCase, exist)
}

func TestCheckerEntryType(t *testing.T) {
	c := NewChecker(memFS(t), CaseSensitive)

	assert.Equal(t, TypeFile, c.EntryType("/work/Report.txt"))
	assert.Equal(t, TypeDirectory, c.EntryType("/work/docs"))
	assert.Equal(t, TypeMissing, c.EntryType("/work/absent"))
}

func TestCheckerNonEmptyDir(t *testing.T) {
	fs := memFS(t)
	require.NoError(t, fs.MkdirAll("/work/empty", 0755))
	c := NewChecker(fs, CaseSensitive)

	assert.True(t, c.IsNonEmptyDir("/work/docs"))
	assert.False(t, c.IsNonEmptyDir("/work/empty"))
	assert.False(t, c.IsNonEmptyDir("/work/Report.txt"))
}

func TestCheckerRootAndDot(t *testing.T) {
	c := NewChecker(memFS(t), CaseSensitive)

	exist, _ := c.Lookup("/")
	assert.Equal(t, ExistsSameCase, exist)
}

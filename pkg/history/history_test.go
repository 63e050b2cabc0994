package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/renamer/pkg/plan"
)

func TestStoreSaveAndList(t *testing.T) {
	store := NewStore(t.TempDir())

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := store.Save(Run{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Summary:   plan.Summary{NPaths: i + 1, OK: true},
			Cursor:    i,
			Completed: i != 1,
		})
		require.NoError(t, err)
	}

	runs, err := store.List()
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Oldest first.
	assert.Equal(t, 1, runs[0].Summary.NPaths)
	assert.Equal(t, 3, runs[2].Summary.NPaths)
	assert.False(t, runs[1].Completed)
}

func TestStoreLatest(t *testing.T) {
	store := NewStore(t.TempDir())

	latest, err := store.Latest()
	require.NoError(t, err)
	assert.Nil(t, latest)

	_, err = store.Save(Run{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Cursor:    2,
		Completed: false,
		Error:     "renaming failed at tracking cursor 2",
	})
	require.NoError(t, err)

	latest, err = store.Latest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 2, latest.Cursor)
	assert.Contains(t, latest.Error, "cursor 2")
}

func TestStoreMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "never-created"))

	runs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreZeroTimestamp(t *testing.T) {
	store := NewStore(t.TempDir())

	path, err := store.Save(Run{Completed: true})
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	latest, err := store.Latest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.False(t, latest.Timestamp.IsZero())
}

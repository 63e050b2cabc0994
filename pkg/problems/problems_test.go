package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemID(t *testing.T) {
	assert.Equal(t, "missing", New(CategoryMissing, SeverityNone).ID())
	assert.Equal(t, "exists-diff", New(CategoryExists, SeverityDiff).ID())
	assert.Equal(t, "noop-equal", New(CategoryNoop, SeverityEqual).ID())
	assert.Equal(t, "code-filter", New(CategoryCode, SeverityFilter, assert.AnError).ID())
}

func TestProblemResolvable(t *testing.T) {
	assert.False(t, New(CategoryMissing, SeverityNone).Resolvable())
	assert.False(t, New(CategoryNoop, SeverityRecase).Resolvable())
	assert.False(t, New(CategoryDuplicate, SeverityNone).Resolvable())

	assert.True(t, New(CategoryExists, SeverityNone).Resolvable())
	assert.True(t, New(CategoryExists, SeverityFull).Resolvable())
	assert.True(t, New(CategoryCollides, SeverityDiff).Resolvable())
	assert.True(t, New(CategoryParent, SeverityNone).Resolvable())
}

func TestResolvableIDs(t *testing.T) {
	assert.Equal(t, []string{
		"exists", "exists-diff", "exists-full",
		"collides", "collides-diff", "collides-full",
		"parent",
	}, ResolvableIDs())
}

func TestParseID(t *testing.T) {
	cat, sev, err := ParseID("exists-diff")
	require.NoError(t, err)
	assert.Equal(t, CategoryExists, cat)
	assert.Equal(t, SeverityDiff, sev)

	// Underscores are accepted.
	cat, sev, err = ParseID("noop_recase")
	require.NoError(t, err)
	assert.Equal(t, CategoryNoop, cat)
	assert.Equal(t, SeverityRecase, sev)

	cat, sev, err = ParseID("parent")
	require.NoError(t, err)
	assert.Equal(t, CategoryParent, cat)
	assert.Equal(t, SeverityNone, sev)

	_, _, err = ParseID("bogus")
	assert.Error(t, err)

	_, _, err = ParseID("exists-bogus")
	assert.Error(t, err)
}

func TestNewUnknownComboPanics(t *testing.T) {
	assert.Panics(t, func() {
		New(CategoryMissing, SeverityDiff)
	})
}

func TestNewResolveSet(t *testing.T) {
	t.Run("explicit ids", func(t *testing.T) {
		set, err := NewResolveSet([]string{"exists-diff", "parent"})
		require.NoError(t, err)
		assert.True(t, set.Contains(New(CategoryExists, SeverityDiff)))
		assert.True(t, set.Contains(New(CategoryParent, SeverityNone)))
		assert.False(t, set.Contains(New(CategoryExists, SeverityNone)))
	})

	t.Run("bare category covers all severities", func(t *testing.T) {
		set, err := NewResolveSet([]string{"exists"})
		require.NoError(t, err)
		assert.True(t, set.Contains(New(CategoryExists, SeverityNone)))
		assert.True(t, set.Contains(New(CategoryExists, SeverityDiff)))
		assert.True(t, set.Contains(New(CategoryExists, SeverityFull)))
		assert.False(t, set.Contains(New(CategoryParent, SeverityNone)))
	})

	t.Run("all covers everything resolvable", func(t *testing.T) {
		set, err := NewResolveSet([]string{"all"})
		require.NoError(t, err)
		for _, id := range ResolvableIDs() {
			assert.True(t, set[id], id)
		}
	})

	t.Run("unresolvable problems are rejected", func(t *testing.T) {
		_, err := NewResolveSet([]string{"missing"})
		assert.Error(t, err)

		_, err = NewResolveSet([]string{"noop-recase"})
		assert.Error(t, err)
	})

	t.Run("unknown ids are rejected", func(t *testing.T) {
		_, err := NewResolveSet([]string{"bogus"})
		assert.Error(t, err)
	})
}

func TestNewStrictMode(t *testing.T) {
	sm, err := NewStrictMode([]string{"excluded"})
	require.NoError(t, err)
	assert.True(t, sm.Excluded)
	assert.Empty(t, sm.Categories)

	sm, err = NewStrictMode([]string{"parent", "exists"})
	require.NoError(t, err)
	assert.False(t, sm.Excluded)
	assert.True(t, sm.Covers(CategoryParent))
	assert.True(t, sm.Covers(CategoryExists))
	assert.False(t, sm.Covers(CategoryCollides))

	sm, err = NewStrictMode([]string{"all"})
	require.NoError(t, err)
	assert.True(t, sm.Excluded)
	assert.True(t, sm.Covers(CategoryParent))
	assert.True(t, sm.Covers(CategoryExists))
	assert.True(t, sm.Covers(CategoryCollides))

	_, err = NewStrictMode([]string{"missing"})
	assert.Error(t, err)
}

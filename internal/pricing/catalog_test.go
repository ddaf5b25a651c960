package pricing

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCanonicalAndAlias(t *testing.T) {
	c := NewDefault()

	canon, rec, ok := c.Resolve("gpt-4o")
	require.True(t, ok)
	assert.Equal(t, "gpt-4o", canon)
	assert.Equal(t, "openai", rec.Provider)

	// Alias resolves to the same record.
	aliasCanon, aliasRec, ok := c.Resolve("gpt4o")
	require.True(t, ok)
	assert.Equal(t, canon, aliasCanon)
	assert.Equal(t, rec, aliasRec)

	// Lookup is case-insensitive.
	_, upperRec, ok := c.Resolve("GPT-4O")
	require.True(t, ok)
	assert.Equal(t, rec, upperRec)
}

func TestResolveIdempotent(t *testing.T) {
	c := NewDefault()
	_, first, ok1 := c.Resolve("claude-sonnet-4")
	_, second, ok2 := c.Resolve("claude-sonnet-4")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestResolveUnknown(t *testing.T) {
	c := NewDefault()
	_, _, ok := c.Resolve("not-a-model")
	assert.False(t, ok)
}

func TestAliasToMissingTargetFallsThrough(t *testing.T) {
	c := NewCatalog(
		map[string]Record{"real": {DisplayName: "Real", InputPerMTok: 1, OutputPerMTok: 2, ContextWindow: 1000}},
		map[string]string{"ghost": "does-not-exist"},
	)
	_, _, ok := c.Resolve("ghost")
	assert.False(t, ok)
}

func TestListSortedByKey(t *testing.T) {
	c := NewDefault()
	keys := c.Keys()
	assert.True(t, sort.StringsAreSorted(keys))
	assert.Len(t, c.List(), len(keys))
}

func TestOverlayFetchedWins(t *testing.T) {
	c := NewDefault()
	_, before, _ := c.Resolve("gpt-4o")

	merged := c.Overlay(map[string]Record{
		"gpt-4o": {DisplayName: "GPT-4o", Provider: "openai", InputPerMTok: 99, OutputPerMTok: 199, ContextWindow: 128_000},
	})

	_, after, ok := merged.Resolve("gpt-4o")
	require.True(t, ok)
	assert.Equal(t, 99.0, after.InputPerMTok)

	// The original catalog is untouched.
	_, still, _ := c.Resolve("gpt-4o")
	assert.Equal(t, before, still)

	// Aliases survive the overlay.
	_, viaAlias, ok := merged.Resolve("gpt4o")
	require.True(t, ok)
	assert.Equal(t, after, viaAlias)
}

func TestDefaultAliasTargetsExist(t *testing.T) {
	c := NewDefault()
	for alias, target := range defaultAliases {
		_, _, ok := c.Resolve(alias)
		assert.True(t, ok, "alias %q → %q must resolve", alias, target)
	}
}

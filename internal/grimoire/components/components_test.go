package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeFullAndAlias(t *testing.T) {
	d := New()
	assert.Equal(t, "background-color", d.Canonicalize("background-color"))
	assert.Equal(t, "background-color", d.Canonicalize("bgc"))
}

func TestCanonicalizeUnknownPassesThrough(t *testing.T) {
	d := New()
	assert.Equal(t, "--my-var", d.Canonicalize("--my-var"))
	assert.False(t, d.Known("--my-var"))
}

func TestShortestRoundTrips(t *testing.T) {
	d := New()
	short := d.Shortest("background-color")
	require.NotEmpty(t, short)
	assert.Equal(t, "background-color", d.Canonicalize(short))
}

func TestSuggestNearMiss(t *testing.T) {
	d := New()
	got := d.Suggest("bgcc")
	assert.NotEmpty(t, got)
}

func TestBuiltinAnimationComponentPresent(t *testing.T) {
	d := New()
	assert.True(t, d.Known("g-anim"))
	assert.Equal(t, "g-anim", d.Shortest("g-anim"))
}

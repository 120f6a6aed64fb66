package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grimoire-css/grimoire/internal/grimoire/components"
)

func TestShortenBareRewritesComponent(t *testing.T) {
	dict := components.New()
	got, ok := shortenBare("background-color=red", dict)
	assert.True(t, ok)
	assert.Equal(t, "bgc=red", got)
}

func TestShortenBareLeavesAlreadyShortComponentUntouched(t *testing.T) {
	dict := components.New()
	_, ok := shortenBare("bgc=red", dict)
	assert.False(t, ok)
}

func TestShortenBarePreservesAreaFocusEffectsPrefix(t *testing.T) {
	dict := components.New()
	got, ok := shortenBare("md__hover:background-color=red", dict)
	assert.True(t, ok)
	assert.Equal(t, "md__hover:bgc=red", got)
}

func TestShortenTokenRewritesTemplatedParts(t *testing.T) {
	dict := components.New()
	got, ok := shortenToken("g!background-color=red&display=flex;", dict)
	assert.True(t, ok)
	assert.Equal(t, "g!bgc=red&d=flex;", got)
}

func TestShortenContentReplacesAllOccurrences(t *testing.T) {
	dict := components.New()
	content := `<div class="background-color=red"></div><span class="background-color=red"></span>`
	out, n := shortenContent("x.html", content, dict)
	assert.Equal(t, 2, n)
	assert.NotContains(t, out, "background-color=red")
	assert.Contains(t, out, "bgc=red")
}

func TestFormatByteDelta(t *testing.T) {
	assert.Equal(t, "10 B", formatByteDelta(10))
	assert.Equal(t, "1.50 KB", formatByteDelta(1536))
	assert.Equal(t, "-1 B", formatByteDelta(-1))
}

package animate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBuiltin(t *testing.T) {
	c := New(t.TempDir())
	def, err := c.Lookup("bounce")
	require.NoError(t, err)
	assert.Contains(t, def.KeyframesCSS, "@keyframes bounce")
}

func TestLookupUnknownAnimation(t *testing.T) {
	c := New(t.TempDir())
	_, err := c.Lookup("does-not-exist")
	assert.Error(t, err)
}

func TestLookupCustomAnimationFromDisk(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "grimoire", "animations")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "glow.css"), []byte(
		"@keyframes glow {\n  0% { opacity: 0.2; }\n  100% { opacity: 1; }\n}\n\n.GRIMOIRE_CSS_ANIMATION {\n  animation-name: glow;\n}\n",
	), 0644))

	c := New(root)
	def, err := c.Lookup("glow")
	require.NoError(t, err)
	assert.Contains(t, def.KeyframesCSS, "@keyframes glow")
}

func TestRenderRewritesPlaceholder(t *testing.T) {
	def := &Definition{Name: "glow", KeyframesCSS: ".GRIMOIRE_CSS_ANIMATION {\n  animation-name: glow;\n}\n"}
	out := def.Render("my-class")
	assert.Contains(t, out, ".my-class {")
	assert.NotContains(t, out, "GRIMOIRE_CSS_ANIMATION")
}

func TestTrackerEmitsOnce(t *testing.T) {
	tr := NewTracker()
	assert.True(t, tr.ShouldEmit("bounce"))
	assert.False(t, tr.ShouldEmit("bounce"))
	assert.True(t, tr.ShouldEmit("fade-in"))
}

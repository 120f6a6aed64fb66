package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterIgnoredDropsMatchingPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("dist/\n*.gen.html\n"), 0644))

	kept := filepath.Join(dir, "src", "index.html")
	genFile := filepath.Join(dir, "src", "index.gen.html")
	distFile := filepath.Join(dir, "dist", "out.html")

	got := FilterIgnored(dir, []string{kept, genFile, distFile})

	assert.Equal(t, []string{kept}, got)
}

func TestFilterIgnoredNoGitignoreIsNoop(t *testing.T) {
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "a.html"), filepath.Join(dir, "b.html")}

	got := FilterIgnored(dir, paths)

	assert.Equal(t, paths, got)
}

package grimoire

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigAndBuildEndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "src", "index.html"),
		[]byte(`<div class="color=red"></div>`),
		0644,
	))

	cfgPath := filepath.Join(dir, "grimoire.config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{
		"projects": [
			{"projectName": "site", "inputPaths": ["src/*.html"], "outputDirPath": "out"}
		]
	}`), 0644))

	cfg, err := LoadConfig(cfgPath)
	require.NoError(t, err)

	results, err := Build(cfg)
	require.NoError(t, err)
	require.Len(t, results, 1)

	outPath := filepath.Join(dir, "out", "index.css")
	css, ok := results[0].Files[outPath]
	require.True(t, ok)
	assert.Contains(t, css, `.color\=red {color:red;}`)
}

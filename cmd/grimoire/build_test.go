package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommandCompilesProject(t *testing.T) {
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

	cmd := rootCmd
	cmd.SetArgs([]string{"build", "--config", cfgPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "out", "index.css"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `.color\=red {color:red;}`)
}

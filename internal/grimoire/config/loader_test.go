package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoadBasicConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "grimoire.config.json", `{
		"variables": {"primary": "#3366ff"},
		"scrolls": [{"name": "flexCenter", "spells": ["_d:flex", "_ai:center"]}],
		"projects": [{"projectName": "site", "inputPaths": ["src/**/*.html"], "outputDirPath": "dist"}]
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []KV{{Name: "primary", Value: "#3366ff"}}, cfg.Variables)
	require.Len(t, cfg.Scrolls, 1)
	assert.Equal(t, "flexCenter", cfg.Scrolls[0].Name)
	require.Len(t, cfg.Projects, 1)
	assert.Equal(t, "site", cfg.Projects[0].ProjectName)
}

func TestLoadMergesFragmentsWithoutOverridingPrimary(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "grimoire.extra.variables.json", `{"variables": {"primary": "#000000", "accent": "#ff0000"}}`)
	writeJSON(t, dir, "grimoire.extra.scrolls.json", `{"scrolls": [{"name": "card", "spells": ["_p:16px"]}]}`)
	path := writeJSON(t, dir, "grimoire.config.json", `{
		"variables": {"primary": "#3366ff"},
		"projects": [{"projectName": "site", "inputPaths": ["src/**/*.html"], "outputDirPath": "dist"}]
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	vars := cfg.VariableMap()
	assert.Equal(t, "#3366ff", vars["primary"], "primary config wins on collision")
	assert.Equal(t, "#ff0000", vars["accent"], "fragment-only keys are merged in")

	scrolls := cfg.ScrollMap()
	require.Contains(t, scrolls, "card")
}

func TestLoadRejectsMissingProjects(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "grimoire.config.json", `{"variables": {}}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidProjectName(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "grimoire.config.json", `{
		"projects": [{"projectName": "bad name!", "inputPaths": ["src"], "outputDirPath": "dist"}]
	}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsDuplicateProjectNames(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "grimoire.config.json", `{
		"projects": [
			{"projectName": "site", "inputPaths": ["a"], "outputDirPath": "dist-a"},
			{"projectName": "site", "inputPaths": ["b"], "outputDirPath": "dist-b"}
		]
	}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrideLock(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "grimoire.config.json", `{
		"lock": false,
		"projects": [{"projectName": "site", "inputPaths": ["src"], "outputDirPath": "dist"}]
	}`)

	t.Setenv("GRIMOIRE_LOCK", "true")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Lock)
}

func TestEnvOverrideWorkers(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "grimoire.config.json", `{
		"projects": [{"projectName": "site", "inputPaths": ["src"], "outputDirPath": "dist"}]
	}`)

	t.Setenv("GRIMOIRE_WORKERS", "4")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
}

func TestBrowserslistDefaultsWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "grimoire.config.json", `{
		"projects": [{"projectName": "site", "inputPaths": ["src"], "outputDirPath": "dist"}]
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"defaults"}, cfg.Browserslist)
}

func TestEnvOverrideBrowserslistPath(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "grimoire.config.json", `{
		"browserslist": ["> 1%"],
		"projects": [{"projectName": "site", "inputPaths": ["src"], "outputDirPath": "dist"}]
	}`)
	rcPath := writeJSON(t, dir, ".browserslistrc", "# comment\nlast 2 versions\nnot dead\n")

	t.Setenv("GRIMOIRE_BROWSERSLIST_PATH", rcPath)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"last 2 versions", "not dead"}, cfg.Browserslist)
}

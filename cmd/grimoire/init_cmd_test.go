package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommandCreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "grimoire", "config", "grimoire.config.json")

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--config", cfgPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"projects"`)
	assert.Contains(t, string(data), `"default"`)
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "grimoire.config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--config", cfgPath})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommandForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "grimoire.config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--config", cfgPath, "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"projects"`)
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

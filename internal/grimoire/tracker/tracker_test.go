package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackCreatesLockFile(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "file1.css"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "file2.css"), nil, 0644))

	require.NoError(t, Track(cwd, []string{"file1.css", "file2.css"}))

	assert.FileExists(t, filepath.Join(cwd, LockFileName))
}

func TestTrackRemovesStaleFiles(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "old1.css"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "old2.css"), nil, 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(cwd, "grimoire"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cwd, LockFileName), []byte(`{"paths":["old1.css","old2.css"]}`), 0644))

	require.NoError(t, os.WriteFile(filepath.Join(cwd, "new.css"), nil, 0644))
	require.NoError(t, Track(cwd, []string{"new.css"}))

	assert.NoFileExists(t, filepath.Join(cwd, "old1.css"))
	assert.NoFileExists(t, filepath.Join(cwd, "old2.css"))
	assert.FileExists(t, filepath.Join(cwd, "new.css"))
}

func TestTrackHandlesMissingLockFileGracefully(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "file1.css"), nil, 0644))

	require.NoError(t, Track(cwd, []string{"file1.css"}))

	assert.FileExists(t, filepath.Join(cwd, LockFileName))
}

func TestTrackWarnsOnAlreadyMissingStaleFile(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(cwd, "grimoire"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cwd, LockFileName), []byte(`{"paths":["gone.css"]}`), 0644))

	require.NoError(t, Track(cwd, nil))
}

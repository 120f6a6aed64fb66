package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimoire-css/grimoire/internal/grimoire/config"
	"github.com/grimoire-css/grimoire/internal/grimoire/tracker"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuildPerInputOutputMode(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/index.html", `<div class="color=red md__display=flex"></div>`)

	cfg := &config.Config{
		Root: root,
		Projects: []config.Project{
			{
				ProjectName:   "site",
				InputPaths:    []string{"src/*.html"},
				OutputDirPath: "out",
			},
		},
	}

	results, err := New(cfg).Build()
	require.NoError(t, err)
	require.Len(t, results, 1)

	outPath := filepath.Join(root, "out", "index.css")
	css, ok := results[0].Files[outPath]
	require.True(t, ok)
	assert.Contains(t, css, `.color\=red {color:red;}`)
	assert.Contains(t, css, "@media (min-width: 768px) {")
	assert.FileExists(t, outPath)
}

func TestBuildSingleOutputModeDedupesAcrossFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.html", `<div class="color=red"></div>`)
	writeFile(t, root, "src/b.html", `<div class="color=red"></div>`)

	cfg := &config.Config{
		Root: root,
		Projects: []config.Project{
			{
				ProjectName:          "site",
				InputPaths:           []string{"src/*.html"},
				OutputDirPath:        "out",
				SingleOutputFileName: "bundle.css",
			},
		},
	}

	results, err := New(cfg).Build()
	require.NoError(t, err)
	outPath := filepath.Join(root, "out", "bundle.css")
	css := results[0].Files[outPath]

	count := 0
	for i := 0; i+len(`.color\=red`) <= len(css); i++ {
		if css[i:i+len(`.color\=red`)] == `.color\=red` {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildWithLockTracksStaleOutputs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.html", `<div class="color=red"></div>`)

	cfg := &config.Config{
		Root: root,
		Lock: true,
		Projects: []config.Project{
			{ProjectName: "site", InputPaths: []string{"src/*.html"}, OutputDirPath: "out"},
		},
	}

	_, err := New(cfg).Build()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, tracker.LockFileName))

	require.NoError(t, os.Remove(filepath.Join(root, "src", "a.html")))
	writeFile(t, root, "src/b.html", `<div class="color=blue"></div>`)

	_, err = New(cfg).Build()
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(root, "out", "a.css"))
	assert.FileExists(t, filepath.Join(root, "out", "b.css"))
}

func TestBuildSharedUnitComposesFileAndSpellStyles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "raw.css", ".legacy{color:green}")

	cfg := &config.Config{
		Root: root,
		Shared: []config.SharedUnit{
			{
				OutputPath: "shared/out.css",
				Styles:     []string{"raw.css", "color=red"},
				CSSCustomProperties: []config.CSSCustomProperty{
					{Element: "html", DataParam: "theme", DataValue: "dark", CSSVariables: []config.KV{{Name: "bg", Value: "#000"}}},
				},
			},
		},
	}

	_, err := New(cfg).Build()
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "shared", "out.css"))
	require.NoError(t, err)
	css := string(data)
	assert.Contains(t, css, "html[data-theme='dark']")
	assert.Contains(t, css, "--bg: #000;")
	assert.Contains(t, css, ".legacy{color:green}")
	assert.Contains(t, css, `.color\=red {color:red;}`)
}

func TestBuildContinuesOtherProjectsAfterOneFails(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "broken/index.html", `<div class="g-anim=does-not-exist"></div>`)
	writeFile(t, root, "ok/index.html", `<div class="color=red"></div>`)

	cfg := &config.Config{
		Root: root,
		Projects: []config.Project{
			{ProjectName: "broken", InputPaths: []string{"broken/*.html"}, OutputDirPath: "out/broken"},
			{ProjectName: "ok", InputPaths: []string{"ok/*.html"}, OutputDirPath: "out/ok"},
		},
	}

	results, err := New(cfg).Build()
	require.Error(t, err)

	var okResult *ProjectResult
	for i := range results {
		if results[i].ProjectName == "ok" {
			okResult = &results[i]
		}
	}
	require.NotNil(t, okResult, "the ok project must still build despite the broken project's error")
	outPath := filepath.Join(root, "out", "ok", "index.css")
	assert.Contains(t, okResult.Files[outPath], `.color\=red {color:red;}`)
	assert.FileExists(t, outPath)
	assert.NoFileExists(t, filepath.Join(root, "out", "broken", "index.css"))
}

func TestBuildSharedDeclarationsNotDuplicatedInProjectOutput(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/index.html", `<div class="color=red md__display=flex"></div>`)

	cfg := &config.Config{
		Root: root,
		Shared: []config.SharedUnit{
			{OutputPath: "shared/out.css", Styles: []string{"color=red"}},
		},
		Projects: []config.Project{
			{ProjectName: "site", InputPaths: []string{"src/*.html"}, OutputDirPath: "out"},
		},
	}

	results, err := New(cfg).Build()
	require.NoError(t, err)

	sharedData, err := os.ReadFile(filepath.Join(root, "shared", "out.css"))
	require.NoError(t, err)
	assert.Contains(t, string(sharedData), `.color\=red {color:red;}`)

	outPath := filepath.Join(root, "out", "index.css")
	css := results[0].Files[outPath]
	assert.NotContains(t, css, `.color\=red {color:red;}`, "declaration already emitted by the shared unit must not repeat in the project artifact")
	assert.Contains(t, css, "@media (min-width: 768px) {", "declarations not covered by shared must still render")
}

func TestBuildCriticalUnitInlinesIntoHTML(t *testing.T) {
	root := t.TempDir()
	htmlPath := writeFile(t, root, "index.html", "<html><head><title>x</title></head><body></body></html>")

	cfg := &config.Config{
		Root: root,
		Critical: []config.CriticalUnit{
			{FileToInlinePaths: []string{"index.html"}, Styles: []string{"color=red"}},
		},
	}

	_, err := New(cfg).Build()
	require.NoError(t, err)

	data, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, `<style data-grimoire-critical-css>`)
	assert.Contains(t, html, `.color\=red {color:red;}`)
	assert.Contains(t, html, "</head>")
}

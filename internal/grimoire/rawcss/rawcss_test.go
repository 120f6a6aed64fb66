package rawcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBlobReturnsFileContentVerbatim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raw.css")
	css := ".btn { color: red; }\n"
	require.NoError(t, os.WriteFile(path, []byte(css), 0644))

	got, err := ReadBlob(path)
	require.NoError(t, err)
	assert.Equal(t, css, got)
}

func TestShortenTokensRewritesIdentsOnly(t *testing.T) {
	src := `.card { background-color: red; content: "background-color"; }`
	rewrite := func(s string) string {
		if s == "background-color" {
			return "bgc"
		}
		return s
	}

	got := ShortenTokens(src, rewrite)
	assert.Contains(t, got, "bgc: red")
	assert.Contains(t, got, `"background-color"`)
}

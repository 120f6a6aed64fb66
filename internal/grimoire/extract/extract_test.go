package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestExtractDoubleQuotedClassAttribute(t *testing.T) {
	got := Extract("index.html", `<div class="btn btn--primary"></div>`)
	assert.Equal(t, []string{"btn", "btn--primary"}, texts(got))
}

func TestExtractSingleQuotedClassAttribute(t *testing.T) {
	got := Extract("index.html", `<div class='card shadow'></div>`)
	assert.Equal(t, []string{"card", "shadow"}, texts(got))
}

func TestExtractClassNameJSXBraces(t *testing.T) {
	got := Extract("app.jsx", `<div className={"row nested"}></div>`)
	assert.Equal(t, []string{`"row`, `nested"`}, texts(got))
}

func TestExtractHandlesNestedBraces(t *testing.T) {
	got := Extract("app.jsx", `<div className={cx({active: true}) + " row"}></div>`)
	assert.NotEmpty(t, got)
}

func TestExtractTemplatedSpell(t *testing.T) {
	got := Extract("page.html", `<div>g!color=red;</div>`)
	assert.Equal(t, []string{"g!color=red;"}, texts(got))
}

func TestExtractRejectsTemplateNotAtTokenBoundary(t *testing.T) {
	got := Extract("page.html", `<div>bg!color=red;</div>`)
	assert.Empty(t, got)
}

func TestExtractMultipleTemplatesConcatenated(t *testing.T) {
	got := Extract("page.html", `g!display=flex&align-items=center;`)
	assert.Equal(t, []string{"g!display=flex&align-items=center;"}, texts(got))
}

func TestExtractSpansPointIntoSource(t *testing.T) {
	src := `<div class="btn"></div>`
	got := Extract("index.html", src)
	assert.Len(t, got, 1)
	tok := got[0]
	assert.Equal(t, "btn", src[tok.Span.Start:tok.Span.Start+tok.Span.Len])
}

func TestNormalizeClassToken(t *testing.T) {
	assert.Equal(t, "btn", NormalizeClassToken(".btn"))
	assert.Equal(t, "btn", NormalizeClassToken("btn"))
}

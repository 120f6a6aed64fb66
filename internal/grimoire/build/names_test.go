package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaQueryForNamedArea(t *testing.T) {
	assert.Equal(t, "(min-width: 768px)", mediaQueryFor("md"))
	assert.Equal(t, "(min-width: 1536px)", mediaQueryFor("2xl"))
}

func TestMediaQueryForLiteralArea(t *testing.T) {
	assert.Equal(t, "(max-width:600px)", mediaQueryFor("(max-width:600px)"))
	assert.Equal(t, "print and (min-width: 4in)", mediaQueryFor("print_and_(min-width:_4in)"))
}

func TestMediaQueryForEmptyArea(t *testing.T) {
	assert.Equal(t, "", mediaQueryFor(""))
}

func TestEscapeClassNameEscapesSpecialChars(t *testing.T) {
	got := escapeClassName("md__color=red")
	assert.Equal(t, `md\_\_color\=red`, got)
}

func TestBuildSelectorWithEffectsAndFocus(t *testing.T) {
	got := buildSelector("md__{_>_p}hover:color=red", []string{"hover"}, "_>_p")
	assert.Equal(t, `.md\_\_\{\_\>\_p\}hover\:color\=red:hover > p`, got)
}

func TestBuildSelectorBare(t *testing.T) {
	got := buildSelector("color=red", nil, "")
	assert.Equal(t, `.color\=red`, got)
}

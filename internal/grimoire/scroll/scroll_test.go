package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimoire-css/grimoire/internal/grimoire/config"
)

func scrolls(list ...config.Scroll) map[string]*config.Scroll {
	m := make(map[string]*config.Scroll, len(list))
	for i := range list {
		m[list[i].Name] = &list[i]
	}
	return m
}

func TestEffectiveSpellsFlattensExtendsBeforeOwn(t *testing.T) {
	e := New(scrolls(
		config.Scroll{Name: "base", Spells: []string{"display=flex"}},
		config.Scroll{Name: "child", Extends: []string{"base"}, Spells: []string{"color=red"}},
	), nil)

	got, err := e.EffectiveSpells("child")
	require.NoError(t, err)
	assert.Equal(t, []string{"display=flex", "color=red"}, got)
}

func TestEffectiveSpellsDetectsCycles(t *testing.T) {
	e := New(scrolls(
		config.Scroll{Name: "a", Extends: []string{"b"}},
		config.Scroll{Name: "b", Extends: []string{"a"}},
	), nil)

	_, err := e.EffectiveSpells("a")
	assert.Error(t, err)
}

func TestInvokeSubstitutesPositionalArgs(t *testing.T) {
	e := New(scrolls(
		config.Scroll{Name: "pad", Spells: []string{"padding=$", "margin=$"}},
	), nil)

	got, err := e.Invoke("pad", []string{"10px", "5px"})
	require.NoError(t, err)
	assert.Equal(t, []string{"padding=10px", "margin=5px"}, got)
}

func TestInvokeFailsOnArityMismatch(t *testing.T) {
	e := New(scrolls(
		config.Scroll{Name: "pad", Spells: []string{"padding=$"}},
	), nil)

	_, err := e.Invoke("pad", []string{"10px", "5px"})
	assert.Error(t, err)
}

func TestInvokeSpellByArgsSelectsByCount(t *testing.T) {
	e := New(scrolls(
		config.Scroll{
			Name:   "box",
			Spells: []string{"padding=8px"},
			SpellByArgs: map[string][]string{
				"1": {"padding=$"},
			},
		},
	), nil)

	got, err := e.Invoke("box", []string{"20px"})
	require.NoError(t, err)
	assert.Equal(t, []string{"padding=20px"}, got)

	got, err = e.Invoke("box", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"padding=8px"}, got)
}

func TestInvokeUnknownScroll(t *testing.T) {
	e := New(scrolls(), nil)
	_, err := e.Invoke("nope", nil)
	assert.Error(t, err)
}

func TestParseTokenRawSpell(t *testing.T) {
	e := New(scrolls(), nil)
	spells, err := e.ParseToken("color=red")
	require.NoError(t, err)
	require.Len(t, spells, 1)
	assert.Equal(t, "color", spells[0].Component)
	assert.Equal(t, "red", spells[0].Target)
}

func TestParseTokenScrollInvocation(t *testing.T) {
	e := New(scrolls(
		config.Scroll{Name: "flexCenter", Spells: []string{"display=flex", "align-items=center"}},
	), nil)
	spells, err := e.ParseToken("flexCenter")
	require.NoError(t, err)
	require.Len(t, spells, 2)
	assert.Equal(t, "display", spells[0].Component)
	assert.Equal(t, "align-items", spells[1].Component)
}

func TestInvokeFlattensNestedScrollReference(t *testing.T) {
	e := New(scrolls(
		config.Scroll{Name: "inner", Spells: []string{"color=$"}},
		config.Scroll{Name: "outer", Spells: []string{"inner=blue", "display=block"}},
	), nil)

	got, err := e.Invoke("outer", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"color=blue", "display=block"}, got)
}

func TestParseTokenPropagatesOuterContextOntoScrollDeclarations(t *testing.T) {
	e := New(scrolls(
		config.Scroll{Name: "flexCenter", Spells: []string{"display=flex", "align-items=center"}},
	), nil)

	spells, err := e.ParseToken("md__{_>_p}hover:flexCenter")
	require.NoError(t, err)
	require.Len(t, spells, 2)
	for _, s := range spells {
		assert.Equal(t, "md__{_>_p}hover:flexCenter", s.Raw)
		assert.Equal(t, "md", s.Area)
		assert.Equal(t, "_>_p", s.Focus)
		assert.Equal(t, []string{"hover"}, s.Effects)
	}
	assert.Equal(t, "display", spells[0].Component)
	assert.Equal(t, "flex", spells[0].Target)
}

func TestParseTokenComponentBeatsSameNamedScroll(t *testing.T) {
	e := New(scrolls(
		config.Scroll{Name: "color", Spells: []string{"display=flex"}},
	), func(name string) bool { return name == "color" })

	spells, err := e.ParseToken("color=red")
	require.NoError(t, err)
	require.Len(t, spells, 1)
	assert.Equal(t, "color", spells[0].Component)
	assert.Equal(t, "red", spells[0].Target)
}

package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupMergesIdenticalDeclarationSets(t *testing.T) {
	tuples := []Tuple{
		{Selector: ".a", Property: "color", Value: "red"},
		{Selector: ".b", Property: "color", Value: "red"},
	}
	rules := Group(tuples)
	if assert.Len(t, rules, 1) {
		assert.Equal(t, []string{".a", ".b"}, rules[0].Selectors)
	}
}

func TestGroupKeepsDistinctDeclarationSetsSeparate(t *testing.T) {
	tuples := []Tuple{
		{Selector: ".a", Property: "color", Value: "red"},
		{Selector: ".b", Property: "color", Value: "blue"},
	}
	rules := Group(tuples)
	assert.Len(t, rules, 2)
}

func TestGroupDropsExactDuplicateDeclarations(t *testing.T) {
	tuples := []Tuple{
		{Selector: ".a", Property: "color", Value: "red"},
		{Selector: ".a", Property: "color", Value: "red"},
	}
	rules := Group(tuples)
	if assert.Len(t, rules, 1) {
		assert.Len(t, rules[0].Decls, 1)
	}
}

func TestGroupOrdersNonMediaBeforeMedia(t *testing.T) {
	tuples := []Tuple{
		{Media: "(min-width: 768px)", Selector: ".b", Property: "display", Value: "flex"},
		{Media: "", Selector: ".a", Property: "color", Value: "red"},
	}
	rules := Group(tuples)
	if assert.Len(t, rules, 2) {
		assert.Equal(t, "", rules[0].Media)
		assert.Equal(t, "(min-width: 768px)", rules[1].Media)
	}
}

func TestGroupPreservesFirstSeenOrderWithinMedia(t *testing.T) {
	tuples := []Tuple{
		{Selector: ".second", Property: "color", Value: "blue"},
		{Selector: ".first", Property: "color", Value: "red"},
	}
	rules := Group(tuples)
	require := assert.New(t)
	require.Len(rules, 2)
	require.Equal([]string{".second"}, rules[0].Selectors)
	require.Equal([]string{".first"}, rules[1].Selectors)
}

func TestRenderCSSOrdersCustomPropertiesThenRulesThenMedia(t *testing.T) {
	rules := []CSSRule{
		{Selectors: []string{".a"}, Decls: []Declaration{{Property: "color", Value: "red"}}},
		{Media: "(min-width: 768px)", Selectors: []string{".b"}, Decls: []Declaration{{Property: "display", Value: "flex"}}},
	}
	out := RenderCSS("[data-x='y'] {--v: 1;}", []string{"@keyframes k {}"}, rules)

	assert.Contains(t, out, "[data-x='y']")
	assert.Contains(t, out, "@keyframes k {}")
	assert.Contains(t, out, ".a {color:red;}")
	assert.Contains(t, out, "@media (min-width: 768px) {")
	assert.Contains(t, out, ".b {display:flex;}")

	customIdx := indexOf(out, "[data-x='y']")
	ruleIdx := indexOf(out, ".a {")
	mediaIdx := indexOf(out, "@media")
	assert.True(t, customIdx < ruleIdx)
	assert.True(t, ruleIdx < mediaIdx)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

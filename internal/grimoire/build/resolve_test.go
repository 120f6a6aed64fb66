package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimoire-css/grimoire/internal/grimoire/animate"
	"github.com/grimoire-css/grimoire/internal/grimoire/components"
	"github.com/grimoire-css/grimoire/internal/grimoire/config"
)

func newResolver(t *testing.T, cfg *config.Config) *Resolver {
	t.Helper()
	return NewResolver(cfg, components.New(), animate.New(t.TempDir()))
}

func TestResolveTokenPlainSpell(t *testing.T) {
	r := newResolver(t, &config.Config{})
	tuples, extra, err := r.ResolveToken("color=red", animate.NewTracker())
	require.NoError(t, err)
	assert.Empty(t, extra)
	if assert.Len(t, tuples, 1) {
		assert.Equal(t, "color", tuples[0].Property)
		assert.Equal(t, "red", tuples[0].Value)
		assert.Equal(t, `.color\=red`, tuples[0].Selector)
	}
}

func TestResolveTokenSubstitutesVariable(t *testing.T) {
	cfg := &config.Config{Variables: []config.KV{{Name: "primary", Value: "blue"}}}
	r := newResolver(t, cfg)
	tuples, _, err := r.ResolveToken("color=$primary", animate.NewTracker())
	require.NoError(t, err)
	require.Len(t, tuples, 1)
	assert.Equal(t, "blue", tuples[0].Value)
}

func TestResolveTokenCanonicalizesShorthandComponent(t *testing.T) {
	r := newResolver(t, &config.Config{})
	tuples, _, err := r.ResolveToken("bgc=red", animate.NewTracker())
	require.NoError(t, err)
	require.Len(t, tuples, 1)
	assert.Equal(t, "background-color", tuples[0].Property)
}

func TestResolveTokenScrollInvocationPropagatesContext(t *testing.T) {
	cfg := &config.Config{
		Scrolls: []config.Scroll{
			{Name: "flexCenter", Spells: []string{"display=flex", "align-items=center"}},
		},
	}
	r := newResolver(t, cfg)
	tuples, _, err := r.ResolveToken("md__hover:flexCenter", animate.NewTracker())
	require.NoError(t, err)
	require.Len(t, tuples, 2)
	for _, tu := range tuples {
		assert.Equal(t, "(min-width: 768px)", tu.Media)
		assert.Equal(t, `.md\_\_hover\:flexCenter:hover`, tu.Selector)
	}
	assert.Equal(t, "display", tuples[0].Property)
	assert.Equal(t, "align-items", tuples[1].Property)
}

func TestResolveTokenBuiltinAnimation(t *testing.T) {
	r := newResolver(t, &config.Config{})
	tuples, extra, err := r.ResolveToken("g-anim=tada", animate.NewTracker())
	require.NoError(t, err)
	require.Len(t, tuples, 1)
	assert.Equal(t, "animation", tuples[0].Property)
	assert.Contains(t, tuples[0].Value, "tada")
	require.Len(t, extra, 2)
	assert.Contains(t, extra[0], "@keyframes tada")
	assert.Contains(t, extra[1], "animation-name: tada")
}

func TestResolveTokenAnimationKeyframesEmittedOncePerArtifact(t *testing.T) {
	r := newResolver(t, &config.Config{})
	tr := animate.NewTracker()

	_, extra1, err := r.ResolveToken("g-anim=tada", tr)
	require.NoError(t, err)
	_, extra2, err := r.ResolveToken("effect2:g-anim=tada", tr)
	require.NoError(t, err)

	assert.Len(t, extra1, 2)
	assert.Len(t, extra2, 1) // no repeated @keyframes block, only the new placeholder binding
}

func TestResolveTokenUnknownComponentPassesThrough(t *testing.T) {
	r := newResolver(t, &config.Config{})
	tuples, _, err := r.ResolveToken("some-vendor-prop=1px", animate.NewTracker())
	require.NoError(t, err)
	require.Len(t, tuples, 1)
	assert.Equal(t, "some-vendor-prop", tuples[0].Property)
}

package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalColorGrayscale(t *testing.T) {
	c, err := EvalColor("g-grayscale", []string{"#ff0000"})
	require.NoError(t, err)
	assert.Equal(t, "#808080", c.ToHexString())
}

func TestEvalColorMix(t *testing.T) {
	c, err := EvalColor("g-mix", []string{"#ff0000", "#0000ff", "50"})
	require.NoError(t, err)
	assert.Equal(t, "#800080", c.ToHexString())
}

func TestEvalColorLighten(t *testing.T) {
	c, err := EvalColor("g-lighten", []string{"#ff0000", "10"})
	require.NoError(t, err)
	assert.Equal(t, "#ff3333", c.ToHexString())
}

func TestEvalColorUnknownFunction(t *testing.T) {
	_, err := EvalColor("g-unknown", []string{"#fff"})
	assert.Error(t, err)
}

func TestMFSProducesClamp(t *testing.T) {
	out, err := MFS([]string{"12px", "36px"})
	require.NoError(t, err)
	assert.Contains(t, out, "clamp(12px,")
	assert.Contains(t, out, "36px)")
}

func TestMRSDefaultsViewport(t *testing.T) {
	out, err := MRS([]string{"16px", "24px"})
	require.NoError(t, err)
	assert.Contains(t, out, "clamp(16px,")
}

func TestMRSRejectsMismatchedUnits(t *testing.T) {
	_, err := MRS([]string{"16px", "2rem"})
	assert.Error(t, err)
}

func TestEvaluateTargetInlineFunction(t *testing.T) {
	out, err := EvaluateTarget("mfs(12px_36px)")
	require.NoError(t, err)
	assert.Contains(t, out, "clamp(")
}

func TestEvaluateTargetUnderscoreToSpace(t *testing.T) {
	out, err := EvaluateTarget("10px_20px")
	require.NoError(t, err)
	assert.Equal(t, "10px 20px", out)
}

func TestHasBalancedParens(t *testing.T) {
	assert.NoError(t, HasBalancedParens("g-mix(a_b_50)"))
	assert.Error(t, HasBalancedParens("g-mix(a_b_50"))
}

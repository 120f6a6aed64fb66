package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexForms(t *testing.T) {
	c, err := Parse("#fff")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, "#ffffff", c.ToHexString())

	c8, err := Parse("#ff000080")
	require.NoError(t, err)
	assert.True(t, c8.HasAlpha)
}

func TestParseNamedColor(t *testing.T) {
	c, err := Parse("aliceblue")
	require.NoError(t, err)
	assert.Equal(t, "#f0f8ff", c.ToHexString())
}

func TestParseRGBLegacyAndModern(t *testing.T) {
	c1, err := Parse("rgb(255, 0, 0)")
	require.NoError(t, err)
	assert.Equal(t, New(255, 0, 0, 1), RGBA{R: c1.R, G: c1.G, B: c1.B, A: c1.A, HasAlpha: c1.HasAlpha})

	c2, err := Parse("rgb(0 128 255 / 50%)")
	require.NoError(t, err)
	assert.True(t, c2.HasAlpha)
}

func TestMixRedBlue(t *testing.T) {
	red, _ := Parse("red")
	blue, _ := Parse("blue")
	purple := Mix(red, blue, 50)
	assert.Equal(t, "#800080", purple.ToHexString())
}

func TestInvertWhiteIsBlack(t *testing.T) {
	white, _ := Parse("white")
	black := white.Invert(100)
	assert.Equal(t, "#000000", black.ToHexString())
}

func TestGrayscaleZerosSaturation(t *testing.T) {
	red, _ := Parse("red")
	gray := red.Grayscale()
	_, s, _ := gray.ToHSL()
	assert.InDelta(t, 0, s, 0.01)
}

func TestHueNormalizationWraps(t *testing.T) {
	c := FromHSL(-10, 100, 50, 1)
	h, _, _ := c.ToHSL()
	assert.True(t, h >= 0 && h < 360)
}

func TestScaleColorClampsPercent(t *testing.T) {
	red, _ := Parse("red")
	scaled := red.ScaleColor(Delta{}, Delta{}, Delta{}, D(1000), Delta{}, Delta{})
	_, s, _ := scaled.ToHSL()
	assert.LessOrEqual(t, s, 100.0)
}

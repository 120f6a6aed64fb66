// Package color implements CSS Color Module Level 4 parsing, formatting and
// the arithmetic backing Grimoire's g-* color functions (spec.md §4.6).
//
// Channel math follows github.com/lucasb-eyer/go-colorful's HSL<->RGB
// routines for the parts CSS Color 4 shares with standard HSL, and adds the
// CSS-specific parsing (hex/rgb()/hsl()/hwb()/named) and percentage-scaling
// operations go-colorful does not provide.
package color

import (
	"fmt"
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Family records which CSS notation a color was parsed from, so operations
// can preserve the input family on output where unambiguous (spec.md §4.6).
type Family int

const (
	FamilyRGB Family = iota
	FamilyHex
	FamilyHSL
	FamilyHWB
	FamilyNamed
)

// RGBA is a color in 8-bit sRGB channels plus a float alpha in [0,1].
type RGBA struct {
	R, G, B uint8
	A       float32
	// HasAlpha records whether alpha was explicit in the source notation
	// (distinct from A==1, since "rgba(1,2,3,1)" still carries has_alpha).
	HasAlpha bool
	Family   Family
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// NormalizeHue reduces a hue in degrees to [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// New builds an RGBA directly from channel values.
func New(r, g, b uint8, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a, HasAlpha: a != 1, Family: FamilyRGB}
}

// FromHSL builds an RGBA from hue in degrees, saturation/lightness in
// percent (0..100), and alpha in [0,1].
func FromHSL(h, s, l float64, a float32) RGBA {
	hNorm := NormalizeHue(h)
	sF := clampF(s/100, 0, 1)
	lF := clampF(l/100, 0, 1)
	cf := colorful.Hsl(hNorm, sF, lF)
	r, g, b := cf.Clamped().RGB255()
	aCl := float32(clampF(float64(a), 0, 1))
	return RGBA{R: r, G: g, B: b, A: aCl, HasAlpha: aCl != 1, Family: FamilyHSL}
}

// FromHWB builds an RGBA from hue in degrees and whiteness/blackness in
// percent (0..100).
func FromHWB(h, w, bk float64, a float32) RGBA {
	w /= 100
	bk /= 100
	if w+bk > 1 {
		sum := w + bk
		w /= sum
		bk /= sum
	}
	base := colorful.Hsl(NormalizeHue(h), 1, 0.5)
	r := base.R*(1-w-bk) + w
	g := base.G*(1-w-bk) + w
	b := base.B*(1-w-bk) + w
	aCl := float32(clampF(float64(a), 0, 1))
	return RGBA{
		R:        clampU8(int(math.Round(r * 255))),
		G:        clampU8(int(math.Round(g * 255))),
		B:        clampU8(int(math.Round(b * 255))),
		A:        aCl,
		HasAlpha: aCl != 1,
		Family:   FamilyHWB,
	}
}

// ToHSL converts the color to (hue-degrees, saturation-percent,
// lightness-percent).
func (c RGBA) ToHSL() (h, s, l float64) {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, l = cf.Hsl()
	return NormalizeHue(h), s * 100, l * 100
}

// ToHexString renders "#rrggbb" or "#rrggbbaa" when alpha is explicit.
func (c RGBA) ToHexString() string {
	if c.HasAlpha {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, clampU8(int(math.Round(float64(c.A)*255))))
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ToRGBAString renders "rgb(r, g, b)" or "rgba(r, g, b, a)".
func (c RGBA) ToRGBAString() string {
	if c.HasAlpha {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, trimFloat(float64(c.A)))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ToHSLString renders "hsl(h, s%, l%)" or with an alpha component.
func (c RGBA) ToHSLString() string {
	h, s, l := c.ToHSL()
	if c.HasAlpha {
		return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", trimFloat(h), trimFloat(s), trimFloat(l), trimFloat(float64(c.A)))
	}
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", trimFloat(h), trimFloat(s), trimFloat(l))
}

// NamedString returns the CSS named-color keyword for this exact RGBA,
// if one exists.
func (c RGBA) NamedString() (string, bool) {
	for name, rgba := range namedColors {
		if rgba.R == c.R && rgba.G == c.G && rgba.B == c.B && rgba.A == c.A {
			return name, true
		}
	}
	return "", false
}

// String renders the color preserving its input family where unambiguous;
// otherwise falls back to rgb()/rgba() (spec.md §4.6).
func (c RGBA) String() string {
	switch c.Family {
	case FamilyHex:
		return c.ToHexString()
	case FamilyHSL:
		return c.ToHSLString()
	case FamilyNamed:
		if name, ok := c.NamedString(); ok {
			return name
		}
	}
	return c.ToRGBAString()
}

func trimFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return s
}

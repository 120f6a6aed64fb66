package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// numOrPct matches a bare number or a percentage, both possibly signed and
// fractional — the two forms rgb()/hsl()/hwb() channel values may take.
var numOrPct = `[+-]?[0-9]*\.?[0-9]+%?`

var (
	reHex = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	reRGB = regexp.MustCompile(`(?i)^rgba?\(\s*(none|` + numOrPct + `)\s*[,\s]\s*(none|` + numOrPct + `)\s*[,\s]\s*(none|` + numOrPct + `)\s*(?:[,/]\s*(none|` + numOrPct + `)\s*)?\)$`)
	reHSL = regexp.MustCompile(`(?i)^hsla?\(\s*(none|[+-]?[0-9]*\.?[0-9]+(?:deg|grad|rad|turn)?)\s*[,\s]\s*(none|` + numOrPct + `)\s*[,\s]\s*(none|` + numOrPct + `)\s*(?:[,/]\s*(none|` + numOrPct + `)\s*)?\)$`)
	reHWB = regexp.MustCompile(`(?i)^hwb\(\s*(none|[+-]?[0-9]*\.?[0-9]+(?:deg|grad|rad|turn)?)\s*(?:,\s*)?(none|` + numOrPct + `)\s*(?:,\s*)?(none|` + numOrPct + `)\s*(?:[,/]\s*(none|` + numOrPct + `)\s*)?\)$`)
)

// Parse accepts any CSS Color Module Level 4 notation: hex (#rgb, #rgba,
// #rrggbb, #rrggbbaa), rgb()/rgba() (legacy comma or modern slash-alpha,
// numbers or percentages), hsl()/hsla(), hwb(), or a named color.
func Parse(input string) (RGBA, error) {
	s := strings.TrimSpace(input)
	lower := strings.ToLower(s)

	if strings.HasPrefix(s, "#") {
		c, err := parseHex(s)
		if err != nil {
			return RGBA{}, err
		}
		c.Family = FamilyHex
		return c, nil
	}

	if m := reRGB.FindStringSubmatch(lower); m != nil {
		return parseRGBMatch(m)
	}
	if m := reHSL.FindStringSubmatch(lower); m != nil {
		return parseHSLMatch(m)
	}
	if m := reHWB.FindStringSubmatch(lower); m != nil {
		return parseHWBMatch(m)
	}
	if c, ok := namedColors[lower]; ok {
		c.Family = FamilyNamed
		return c, nil
	}

	return RGBA{}, fmt.Errorf("color: unrecognized value %q", input)
}

func parseHex(s string) (RGBA, error) {
	if !reHex.MatchString(s) {
		return RGBA{}, fmt.Errorf("color: invalid hex value %q", s)
	}
	hex := s[1:]
	expand := func(c byte) uint8 {
		v, _ := strconv.ParseUint(string([]byte{c, c}), 16, 8)
		return uint8(v)
	}
	parseByte := func(h string) uint8 {
		v, _ := strconv.ParseUint(h, 16, 8)
		return uint8(v)
	}
	switch len(hex) {
	case 3:
		return RGBA{R: expand(hex[0]), G: expand(hex[1]), B: expand(hex[2]), A: 1, HasAlpha: false}, nil
	case 4:
		a := expand(hex[3])
		return RGBA{R: expand(hex[0]), G: expand(hex[1]), B: expand(hex[2]), A: float32(a) / 255, HasAlpha: true}, nil
	case 6:
		return RGBA{R: parseByte(hex[0:2]), G: parseByte(hex[2:4]), B: parseByte(hex[4:6]), A: 1, HasAlpha: false}, nil
	case 8:
		a := parseByte(hex[6:8])
		return RGBA{R: parseByte(hex[0:2]), G: parseByte(hex[2:4]), B: parseByte(hex[4:6]), A: float32(a) / 255, HasAlpha: true}, nil
	default:
		return RGBA{}, fmt.Errorf("color: hex value %q must have 3, 4, 6 or 8 digits", s)
	}
}

// channelValue parses a bare number or percentage token into a float64 plus
// whether it was a percentage. "none" is treated as 0.
func channelValue(tok string) (val float64, isPct bool) {
	tok = strings.TrimSpace(tok)
	if tok == "" || tok == "none" {
		return 0, false
	}
	if strings.HasSuffix(tok, "%") {
		f, _ := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		return f / 100, true
	}
	f, _ := strconv.ParseFloat(tok, 64)
	return f, false
}

func hueValue(tok string) float64 {
	tok = strings.TrimSpace(tok)
	if tok == "" || tok == "none" {
		return 0
	}
	switch {
	case strings.HasSuffix(tok, "deg"):
		f, _ := strconv.ParseFloat(strings.TrimSuffix(tok, "deg"), 64)
		return f
	case strings.HasSuffix(tok, "grad"):
		f, _ := strconv.ParseFloat(strings.TrimSuffix(tok, "grad"), 64)
		return f * 0.9
	case strings.HasSuffix(tok, "rad"):
		f, _ := strconv.ParseFloat(strings.TrimSuffix(tok, "rad"), 64)
		return f * 180 / 3.14159265358979323846
	case strings.HasSuffix(tok, "turn"):
		f, _ := strconv.ParseFloat(strings.TrimSuffix(tok, "turn"), 64)
		return f * 360
	default:
		f, _ := strconv.ParseFloat(tok, 64)
		return f
	}
}

func alphaValue(tok string) float32 {
	v, isPct := channelValue(tok)
	if tok == "" {
		return 1
	}
	if isPct {
		return float32(clampF(v, 0, 1))
	}
	return float32(clampF(v, 0, 1))
}

func parseRGBMatch(m []string) (RGBA, error) {
	rv, rp := channelValue(m[1])
	gv, _ := channelValue(m[2])
	bv, _ := channelValue(m[3])
	toByte := func(v float64, isPct bool) uint8 {
		if isPct {
			return clampU8(int(round(v * 255)))
		}
		return clampU8(int(round(v)))
	}
	r := toByte(rv, rp)
	g := toByte(gv, rp)
	b := toByte(bv, rp)
	a := float32(1)
	hasAlpha := false
	if m[4] != "" {
		hasAlpha = true
		a = alphaValue(m[4])
	}
	return RGBA{R: r, G: g, B: b, A: a, HasAlpha: hasAlpha || a != 1, Family: FamilyRGB}, nil
}

func parseHSLMatch(m []string) (RGBA, error) {
	h := hueValue(m[1])
	s, _ := channelValue(m[2])
	l, _ := channelValue(m[3])
	a := float32(1)
	hasAlpha := false
	if m[4] != "" {
		hasAlpha = true
		a = alphaValue(m[4])
	}
	c := FromHSL(h, s*100, l*100, a)
	c.HasAlpha = hasAlpha || c.A != 1
	c.Family = FamilyHSL
	return c, nil
}

func parseHWBMatch(m []string) (RGBA, error) {
	h := hueValue(m[1])
	w, _ := channelValue(m[2])
	bk, _ := channelValue(m[3])
	a := float32(1)
	hasAlpha := false
	if m[4] != "" {
		hasAlpha = true
		a = alphaValue(m[4])
	}
	c := FromHWB(h, w*100, bk*100, a)
	c.HasAlpha = hasAlpha || c.A != 1
	c.Family = FamilyHWB
	return c, nil
}

func round(f float64) float64 {
	if f >= 0 {
		return float64(int(f + 0.5))
	}
	return float64(int(f - 0.5))
}

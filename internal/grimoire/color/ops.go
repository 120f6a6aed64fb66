package color

import "math"

// Grayscale sets saturation to 0, leaving hue, lightness and alpha
// unchanged.
func (c RGBA) Grayscale() RGBA {
	h, _, l := c.ToHSL()
	out := FromHSL(h, 0, l, c.A)
	out.Family = c.Family
	return out
}

// Complement returns the color 180 degrees around the hue wheel.
func (c RGBA) Complement() RGBA {
	h, s, l := c.ToHSL()
	out := FromHSL(h+180, s, l, c.A)
	out.Family = c.Family
	return out
}

// Invert blends the color toward its RGB inverse by weight percent
// (0..100, default 100).
func (c RGBA) Invert(weight float64) RGBA {
	w := clampF(weight, 0, 100) / 100
	invR, invG, invB := 255-int(c.R), 255-int(c.G), 255-int(c.B)
	r := clampU8(int(math.Round(float64(c.R)*(1-w) + float64(invR)*w)))
	g := clampU8(int(math.Round(float64(c.G)*(1-w) + float64(invG)*w)))
	b := clampU8(int(math.Round(float64(c.B)*(1-w) + float64(invB)*w)))
	return RGBA{R: r, G: g, B: b, A: c.A, HasAlpha: c.HasAlpha || c.A != 1, Family: c.Family}
}

// Mix blends two colors, weight is "percentage of the first color"
// (spec.md §4.6).
func Mix(c1, c2 RGBA, weight float64) RGBA {
	w := clampF(weight, 0, 100) / 100
	r := clampU8(int(math.Round(float64(c1.R)*w + float64(c2.R)*(1-w))))
	g := clampU8(int(math.Round(float64(c1.G)*w + float64(c2.G)*(1-w))))
	b := clampU8(int(math.Round(float64(c1.B)*w + float64(c2.B)*(1-w))))
	a := float32(float64(c1.A)*w + float64(c2.A)*(1-w))
	return RGBA{R: r, G: g, B: b, A: a, HasAlpha: c1.HasAlpha || c2.HasAlpha || a != 1, Family: c1.Family}
}

// AdjustHue rotates hue by degrees, wrapping modulo 360.
func (c RGBA) AdjustHue(degrees float64) RGBA {
	h, s, l := c.ToHSL()
	out := FromHSL(h+degrees, s, l, c.A)
	out.Family = c.Family
	return out
}

// Delta holds an optional numeric adjustment; Set is false when the
// argument was omitted at the call site (spec.md's optional-argument
// g-adjust-color / g-change-color / g-scale-color functions).
type Delta struct {
	Value float64
	Set   bool
}

func D(v float64) Delta { return Delta{Value: v, Set: true} }

// AdjustColor applies signed deltas to RGB channels (integers) and HSL +
// alpha channels (floats); unset deltas leave that component unchanged.
func (c RGBA) AdjustColor(rd, gd, bd, hd, sd, ld, ad Delta) RGBA {
	h, s, l := c.ToHSL()
	r, g, b := int(c.R), int(c.G), int(c.B)
	if rd.Set {
		r = int(clampF(float64(r)+rd.Value, 0, 255))
	}
	if gd.Set {
		g = int(clampF(float64(g)+gd.Value, 0, 255))
	}
	if bd.Set {
		b = int(clampF(float64(b)+bd.Value, 0, 255))
	}
	hNew := h
	if hd.Set {
		hNew += hd.Value
	}
	sNew := s
	if sd.Set {
		sNew += sd.Value
	}
	lNew := l
	if ld.Set {
		lNew += ld.Value
	}
	aNew := float64(c.A)
	if ad.Set {
		aNew += ad.Value
	}
	aNew = clampF(aNew, 0, 1)

	out := FromHSL(hNew, sNew, lNew, float32(aNew))
	out.R, out.G, out.B = uint8(r), uint8(g), uint8(b)
	out.HasAlpha = out.HasAlpha || aNew != 1
	out.Family = c.Family
	return out
}

// ChangeColor sets absolute values for whichever channels are given;
// unset ones keep their current value.
func (c RGBA) ChangeColor(r, g, b, h, s, l, a Delta) RGBA {
	ch, cs, cl := c.ToHSL()

	rr := float64(c.R)
	if r.Set {
		rr = r.Value
	}
	gg := float64(c.G)
	if g.Set {
		gg = g.Value
	}
	bb := float64(c.B)
	if b.Set {
		bb = b.Value
	}

	hNew := ch
	if h.Set {
		hNew = h.Value
	}
	sNew := cs
	if s.Set {
		sNew = s.Value
	}
	lNew := cl
	if l.Set {
		lNew = l.Value
	}
	aNew := float64(c.A)
	if a.Set {
		aNew = a.Value
	}
	aNew = clampF(aNew, 0, 1)

	out := FromHSL(hNew, sNew, lNew, float32(aNew))
	if r.Set {
		out.R = clampU8(int(rr))
	}
	if g.Set {
		out.G = clampU8(int(gg))
	}
	if b.Set {
		out.B = clampU8(int(bb))
	}
	out.HasAlpha = out.HasAlpha || aNew != 1
	out.Family = c.Family
	return out
}

// ScaleColor scales channels by a percentage toward their maximum
// (positive) or minimum (negative) value; unset channels are unchanged.
func (c RGBA) ScaleColor(rs, gs, bs, ss, ls, as Delta) RGBA {
	h, s, l := c.ToHSL()
	a := c.A

	if ss.Set {
		s = scaleHSL(s, ss.Value)
		s = clampF(s, 0, 100)
	}
	if ls.Set {
		l = scaleHSL(l, ls.Value)
		l = clampF(l, 0, 100)
	}
	if as.Set {
		a = float32(scaleAlpha(float64(a), as.Value))
	}
	h = NormalizeHue(h)

	out := FromHSL(h, s, l, a)
	if rs.Set {
		out.R = scaleChannel(out.R, rs.Value)
	}
	if gs.Set {
		out.G = scaleChannel(out.G, gs.Value)
	}
	if bs.Set {
		out.B = scaleChannel(out.B, bs.Value)
	}
	out.HasAlpha = out.HasAlpha || a != 1
	out.Family = c.Family
	return out
}

func scaleChannel(val uint8, scale float64) uint8 {
	v := float64(val)
	if scale > 0 {
		diff := 255 - v
		return clampU8(int(math.Round(v + diff*(scale/100))))
	}
	diff := v
	return clampU8(int(math.Round(v - diff*(-scale/100))))
}

func scaleHSL(val, scale float64) float64 {
	if scale > 0 {
		diff := 100 - val
		return val + diff*(scale/100)
	}
	diff := val
	return val - diff*(-scale/100)
}

func scaleAlpha(val, scale float64) float64 {
	if scale > 0 {
		diff := 1 - val
		return clampF(val+diff*(scale/100), 0, 1)
	}
	diff := val
	return clampF(val-diff*(-scale/100), 0, 1)
}

// WithAlpha returns a copy with alpha replaced (clamped to [0,1]).
func (c RGBA) WithAlpha(alpha float64) RGBA {
	a := float32(clampF(alpha, 0, 1))
	return RGBA{R: c.R, G: c.G, B: c.B, A: a, HasAlpha: c.HasAlpha || a != 1, Family: c.Family}
}

func (c RGBA) Lighten(amount float64) RGBA {
	h, s, l := c.ToHSL()
	out := FromHSL(h, s, clampF(l+amount, 0, 100), c.A)
	out.Family = c.Family
	return out
}

func (c RGBA) Darken(amount float64) RGBA {
	h, s, l := c.ToHSL()
	out := FromHSL(h, s, clampF(l-amount, 0, 100), c.A)
	out.Family = c.Family
	return out
}

func (c RGBA) Saturate(amount float64) RGBA {
	h, s, l := c.ToHSL()
	out := FromHSL(h, clampF(s+amount, 0, 100), l, c.A)
	out.Family = c.Family
	return out
}

func (c RGBA) Desaturate(amount float64) RGBA {
	h, s, l := c.ToHSL()
	out := FromHSL(h, clampF(s-amount, 0, 100), l, c.A)
	out.Family = c.Family
	return out
}

func (c RGBA) Opacify(amount float64) RGBA {
	a := float32(clampF(float64(c.A)+amount, 0, 1))
	return RGBA{R: c.R, G: c.G, B: c.B, A: a, HasAlpha: c.HasAlpha || a != 1, Family: c.Family}
}

func (c RGBA) FadeIn(amount float64) RGBA { return c.Opacify(amount) }

func (c RGBA) Transparentize(amount float64) RGBA {
	a := float32(clampF(float64(c.A)-amount, 0, 1))
	return RGBA{R: c.R, G: c.G, B: c.B, A: a, HasAlpha: c.HasAlpha || a != 1, Family: c.Family}
}

func (c RGBA) FadeOut(amount float64) RGBA { return c.Transparentize(amount) }

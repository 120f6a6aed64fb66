// Package functions implements the grimoire function evaluator (spec.md
// §4.6): the closed set of g-* color functions plus the mrs/mfs fluid
// sizing functions, operating on already-variable-resolved spell targets.
package functions

import (
	"strconv"

	"github.com/grimoire-css/grimoire/internal/grimoire/color"
	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
)

type colorHandler func(args []string) (color.RGBA, bool)

// colorHandlers dispatches by function name, mirroring the closed set
// spec.md §4.6 enumerates.
var colorHandlers = map[string]colorHandler{
	"g-grayscale":       handleGrayscale,
	"g-complement":      handleComplement,
	"g-invert":          handleInvert,
	"g-mix":             handleMix,
	"g-adjust-hue":      handleAdjustHue,
	"g-adjust-color":    handleAdjustColor,
	"g-change-color":    handleChangeColor,
	"g-scale-color":     handleScaleColor,
	"g-rgba":            handleRGBA,
	"g-lighten":         handleLighten,
	"g-darken":          handleDarken,
	"g-saturate":        handleSaturate,
	"g-desaturate":      handleDesaturate,
	"g-opacify":         handleOpacify,
	"g-fade-in":         handleFadeIn,
	"g-transparentize":  handleTransparentize,
	"g-fade-out":        handleFadeOut,
}

// IsColorFunction reports whether name is one of the closed set of g-*
// color functions.
func IsColorFunction(name string) bool {
	_, ok := colorHandlers[name]
	return ok
}

// EvalColor dispatches a "g-func" call by name over its underscore-split,
// already-variable-resolved arguments (spec.md §4.6: "arguments are
// positional and underscore-separated").
func EvalColor(name string, args []string) (color.RGBA, error) {
	h, ok := colorHandlers[name]
	if !ok {
		return color.RGBA{}, diag.New(diag.KindEvaluation, "unknown color function %q", name)
	}
	c, ok := h(args)
	if !ok {
		return color.RGBA{}, diag.New(diag.KindEvaluation, "invalid arguments to %s(%v)", name, args)
	}
	return c, nil
}

func parseColor(s string) (color.RGBA, bool) {
	c, err := color.Parse(s)
	if err != nil {
		return color.RGBA{}, false
	}
	return c, true
}

func parseF32(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func optF32(args []string, idx int) color.Delta {
	if idx >= len(args) {
		return color.Delta{}
	}
	f, ok := parseF32(args[idx])
	if !ok {
		return color.Delta{}
	}
	return color.D(f)
}

func handleGrayscale(args []string) (color.RGBA, bool) {
	if len(args) != 1 {
		return color.RGBA{}, false
	}
	c, ok := parseColor(args[0])
	if !ok {
		return color.RGBA{}, false
	}
	return c.Grayscale(), true
}

func handleComplement(args []string) (color.RGBA, bool) {
	if len(args) != 1 {
		return color.RGBA{}, false
	}
	c, ok := parseColor(args[0])
	if !ok {
		return color.RGBA{}, false
	}
	return c.Complement(), true
}

func handleInvert(args []string) (color.RGBA, bool) {
	if len(args) < 1 {
		return color.RGBA{}, false
	}
	c, ok := parseColor(args[0])
	if !ok {
		return color.RGBA{}, false
	}
	weight := 100.0
	if len(args) > 1 {
		if w, ok := parseF32(args[1]); ok {
			weight = w
		}
	}
	return c.Invert(weight), true
}

func handleMix(args []string) (color.RGBA, bool) {
	if len(args) != 3 {
		return color.RGBA{}, false
	}
	c1, ok := parseColor(args[0])
	if !ok {
		return color.RGBA{}, false
	}
	c2, ok := parseColor(args[1])
	if !ok {
		return color.RGBA{}, false
	}
	w, ok := parseF32(args[2])
	if !ok {
		return color.RGBA{}, false
	}
	return color.Mix(c1, c2, w), true
}

func handleAdjustHue(args []string) (color.RGBA, bool) {
	if len(args) != 2 {
		return color.RGBA{}, false
	}
	c, ok := parseColor(args[0])
	if !ok {
		return color.RGBA{}, false
	}
	deg, ok := parseF32(args[1])
	if !ok {
		return color.RGBA{}, false
	}
	return c.AdjustHue(deg), true
}

func handleAdjustColor(args []string) (color.RGBA, bool) {
	if len(args) < 1 {
		return color.RGBA{}, false
	}
	c, ok := parseColor(args[0])
	if !ok {
		return color.RGBA{}, false
	}
	return c.AdjustColor(
		optF32(args, 1), optF32(args, 2), optF32(args, 3),
		optF32(args, 4), optF32(args, 5), optF32(args, 6), optF32(args, 7),
	), true
}

func handleChangeColor(args []string) (color.RGBA, bool) {
	if len(args) < 1 {
		return color.RGBA{}, false
	}
	c, ok := parseColor(args[0])
	if !ok {
		return color.RGBA{}, false
	}
	return c.ChangeColor(
		optF32(args, 1), optF32(args, 2), optF32(args, 3),
		optF32(args, 4), optF32(args, 5), optF32(args, 6), optF32(args, 7),
	), true
}

func handleScaleColor(args []string) (color.RGBA, bool) {
	if len(args) < 1 {
		return color.RGBA{}, false
	}
	c, ok := parseColor(args[0])
	if !ok {
		return color.RGBA{}, false
	}
	return c.ScaleColor(
		optF32(args, 1), optF32(args, 2), optF32(args, 3),
		optF32(args, 4), optF32(args, 5), optF32(args, 6),
	), true
}

func handleRGBA(args []string) (color.RGBA, bool) {
	if len(args) != 2 {
		return color.RGBA{}, false
	}
	c, ok := parseColor(args[0])
	if !ok {
		return color.RGBA{}, false
	}
	a, ok := parseF32(args[1])
	if !ok {
		return color.RGBA{}, false
	}
	return c.WithAlpha(a), true
}

func simpleAmountFn(f func(color.RGBA, float64) color.RGBA) colorHandler {
	return func(args []string) (color.RGBA, bool) {
		if len(args) != 2 {
			return color.RGBA{}, false
		}
		c, ok := parseColor(args[0])
		if !ok {
			return color.RGBA{}, false
		}
		amt, ok := parseF32(args[1])
		if !ok {
			return color.RGBA{}, false
		}
		return f(c, amt), true
	}
}

var (
	handleLighten         = simpleAmountFn(color.RGBA.Lighten)
	handleDarken          = simpleAmountFn(color.RGBA.Darken)
	handleSaturate        = simpleAmountFn(color.RGBA.Saturate)
	handleDesaturate      = simpleAmountFn(color.RGBA.Desaturate)
	handleOpacify         = simpleAmountFn(color.RGBA.Opacify)
	handleFadeIn          = simpleAmountFn(color.RGBA.FadeIn)
	handleTransparentize  = simpleAmountFn(color.RGBA.Transparentize)
	handleFadeOut         = simpleAmountFn(color.RGBA.FadeOut)
)

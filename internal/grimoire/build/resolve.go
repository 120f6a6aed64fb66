// Package build implements the CSS builder (spec.md §4.9): turning
// extracted class tokens into grouped, deduplicated CSS text.
//
// The pipeline diverges deliberately from original_source's
// css_builder_base.rs, which concatenates per-spell raw CSS strings with
// byte-range piece tracking and isolates malformed pieces via a
// binary-search call into an optimizer.validate() trait method. spec.md
// §4.9 instead describes a structured (media, selector, property, value)
// tuple model with explicit grouping and merge rules, which this package
// implements directly — there is no piece-isolation step because there is
// no analogous capability on postprocess.Processor (see DESIGN.md).
package build

import (
	"strings"

	"github.com/grimoire-css/grimoire/internal/grimoire/animate"
	"github.com/grimoire-css/grimoire/internal/grimoire/components"
	"github.com/grimoire-css/grimoire/internal/grimoire/config"
	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
	"github.com/grimoire-css/grimoire/internal/grimoire/functions"
	"github.com/grimoire-css/grimoire/internal/grimoire/scroll"
	"github.com/grimoire-css/grimoire/internal/grimoire/variables"
)

// defaultAnimationTiming is the shorthand duration/easing g-anim applies
// when a spell only names the animation, not its timing (original_source
// lets the full "animation" shorthand spell out every detail explicitly;
// g-anim exists precisely so callers don't have to, so a sane default is
// required here — see DESIGN.md).
const defaultAnimationTiming = "1s ease-in-out"

// Tuple is one (media, selector, property, value) declaration (spec.md
// §4.9 step 3c). Selector already encodes the spell's effects and focus
// fragments, so it doubles as the "selector+focus+effects composite" step
// 4 groups by.
type Tuple struct {
	Media    string
	Selector string
	Property string
	Value    string
}

// Resolver turns extracted class tokens into Tuples, threading scroll
// expansion, variable substitution, function evaluation, and animation
// catalog lookups (spec.md §4.9 step 3).
type Resolver struct {
	scrolls *scroll.Engine
	vars    *variables.Resolver
	dict    *components.Dictionary
	catalog *animate.Catalog
}

// NewResolver builds a Resolver bound to one project's fully-merged
// config, dictionary, and animation catalog.
func NewResolver(cfg *config.Config, dict *components.Dictionary, catalog *animate.Catalog) *Resolver {
	return &Resolver{
		scrolls: scroll.New(cfg.ScrollMap(), dict.Known),
		vars:    variables.New(cfg.VariableMap()),
		dict:    dict,
		catalog: catalog,
	}
}

// ResolveToken expands one extracted class token into zero or more
// declaration tuples, plus any raw CSS blocks it references directly
// (animation keyframes and their placeholder bindings — spec.md §4.2, §4.9
// step 6). tracker gates keyframe blocks to at most once per artifact;
// placeholder bindings are per-occurrence and never gated.
func (r *Resolver) ResolveToken(token string, tracker *animate.Tracker) ([]Tuple, []string, error) {
	spells, err := r.scrolls.ParseToken(token)
	if err != nil {
		return nil, nil, err
	}

	var tuples []Tuple
	var extraCSS []string
	for _, sp := range spells {
		if sp.Component == "" || sp.Target == "" {
			// A bare, unresolved scroll/component name with nothing to
			// declare — not an error, just nothing to emit.
			continue
		}
		tuple, blocks, err := r.resolveDeclaration(sp.Raw, sp.Area, sp.Focus, sp.Effects, sp.Component, sp.Target, tracker)
		if err != nil {
			return nil, nil, err
		}
		if tuple != nil {
			tuples = append(tuples, *tuple)
		}
		extraCSS = append(extraCSS, blocks...)
	}
	return tuples, extraCSS, nil
}

func (r *Resolver) resolveDeclaration(rawToken, area, focus string, effects []string, component, target string, tracker *animate.Tracker) (*Tuple, []string, error) {
	resolved, err := r.vars.Resolve(target)
	if err != nil {
		return nil, nil, err
	}
	if err := functions.HasBalancedParens(resolved); err != nil {
		return nil, nil, err
	}
	evaluated, err := functions.EvaluateTarget(resolved)
	if err != nil {
		return nil, nil, err
	}

	selector := buildSelector(rawToken, effects, focus)
	media := mediaQueryFor(area)
	property := r.dict.Canonicalize(component)
	value := evaluated

	var blocks []string
	switch property {
	case "g-anim":
		def, err := r.catalog.Lookup(evaluated)
		if err != nil {
			return nil, nil, diag.New(diag.KindResolution, "unknown animation %q referenced by %s", evaluated, rawToken)
		}
		bareSelector := escapeClassName(rawToken) + suffixOf(effects, focus)
		keyframes, bound := def.Bind(bareSelector)
		if tracker.ShouldEmit(def.Name) && keyframes != "" {
			blocks = append(blocks, keyframes)
		}
		if bound != "" {
			blocks = append(blocks, bound)
		}
		property = "animation"
		value = evaluated + " " + defaultAnimationTiming

	case "animation", "animation-name":
		if name := firstKnownAnimation(r.catalog, evaluated); name != "" {
			def, _ := r.catalog.Lookup(name)
			keyframes, _ := def.SplitKeyframes()
			if tracker.ShouldEmit(def.Name) && keyframes != "" {
				blocks = append(blocks, keyframes)
			}
		}
	}

	return &Tuple{Media: media, Selector: selector, Property: property, Value: value}, blocks, nil
}

// suffixOf reproduces the effects/focus portion of buildSelector without
// the leading class name, so g-anim's placeholder binding can target the
// exact same selector its declaration tuple would have used.
func suffixOf(effects []string, focus string) string {
	var b strings.Builder
	if len(effects) > 0 {
		b.WriteByte(':')
		b.WriteString(strings.Join(effects, ":"))
	}
	if focus != "" {
		f := strings.ReplaceAll(focus, "_", " ")
		if !strings.HasPrefix(f, " ") {
			b.WriteByte(' ')
		}
		b.WriteString(f)
	}
	return b.String()
}

// firstKnownAnimation scans a plain "animation"/"animation-name" value for
// the first whitespace-separated token the catalog recognizes, mirroring
// original_source's tolerant scan: an animation shorthand may name a
// duration, easing, and animation name in any order, and only the latter
// carries keyframes worth pulling in.
func firstKnownAnimation(catalog *animate.Catalog, value string) string {
	for _, tok := range strings.Fields(value) {
		if _, err := catalog.Lookup(tok); err == nil {
			return tok
		}
	}
	return ""
}

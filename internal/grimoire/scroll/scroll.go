// Package scroll implements resolution of scroll invocations into flat
// spell lists (spec.md §4.7): extends-chain flattening with cycle
// detection, spellByArgs selection, positional $ substitution, and
// recursive templated-scroll flattening.
package scroll

import (
	"strconv"
	"strings"

	"github.com/grimoire-css/grimoire/internal/grimoire/config"
	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
	"github.com/grimoire-css/grimoire/internal/grimoire/spell"
)

// visitState is the tri-state cycle detector for extends-chain traversal:
// unvisited scrolls are absent from the map, in-progress scrolls are
// visiting, and finished ones are done — a plain visited set can't tell
// "currently on the stack" from "already fully resolved".
type visitState int

const (
	visiting visitState = iota
	done
)

// Engine resolves scroll invocations against a fixed scroll table.
type Engine struct {
	scrolls map[string]*config.Scroll

	// isKnownComponent reports whether a name is a recognized CSS
	// property/alias. A recognized component always wins over a
	// same-named scroll (spec.md §4.7 step 1, grounded on
	// original_source's check_raw_scroll_spells, which checks
	// get_css_property before ever consulting the scroll table).
	isKnownComponent func(string) bool
}

// New builds an Engine over the given scroll table (spec.md §3's Scroll
// type, keyed by name). isKnownComponent may be nil, in which case no name
// is ever treated as a recognized component and any same-named scroll
// wins.
func New(scrolls map[string]*config.Scroll, isKnownComponent func(string) bool) *Engine {
	if isKnownComponent == nil {
		isKnownComponent = func(string) bool { return false }
	}
	return &Engine{scrolls: scrolls, isKnownComponent: isKnownComponent}
}

// Lookup reports whether name refers to a known scroll.
func (e *Engine) Lookup(name string) (*config.Scroll, bool) {
	s, ok := e.scrolls[name]
	return s, ok
}

// EffectiveSpells resolves a scroll's own spell list, ignoring any
// invocation arguments: extends are expanded depth-first, left-to-right,
// with parent spells preceding the scroll's own spells (spec.md §4.7
// step 3, grounded on original_source's resolve_spells).
func (e *Engine) EffectiveSpells(name string) ([]string, error) {
	state := make(map[string]visitState)
	return e.effectiveSpells(name, state)
}

func (e *Engine) effectiveSpells(name string, state map[string]visitState) ([]string, error) {
	s, ok := e.scrolls[name]
	if !ok {
		return nil, diag.New(diag.KindResolution, "unknown scroll %q", name)
	}
	if st, seen := state[name]; seen {
		if st == visiting {
			return nil, diag.New(diag.KindResolution, "cyclic scroll inheritance involving %q", name)
		}
	}
	state[name] = visiting

	var out []string
	for _, parent := range s.Extends {
		parentSpells, err := e.effectiveSpells(parent, state)
		if err != nil {
			return nil, err
		}
		out = append(out, parentSpells...)
	}
	out = append(out, spellListFor(s, nil)...)

	state[name] = done
	return out, nil
}

// spellListFor picks between spellByArgs and spells (spec.md §4.7 step
// 4). A nil or empty args vector selects the base spells list unless
// spellByArgs has an entry keyed "0" or "".
func spellListFor(s *config.Scroll, args []string) []string {
	if len(s.SpellByArgs) > 0 {
		match, ambiguous := matchSpellByArgs(s.SpellByArgs, args)
		if ambiguous {
			return nil
		}
		if match != nil {
			return match
		}
	}
	return s.Spells
}

// matchSpellByArgs selects the spellByArgs entry keyed by argument count,
// or by an explicit "_"-joined argument pattern. spec.md leaves the
// multi-match case undefined except to say it must be a ResolutionError
// rather than a silent pick — signaled here via the ambiguous return.
func matchSpellByArgs(byArgs map[string][]string, args []string) (spells []string, ambiguous bool) {
	countKey := strconv.Itoa(len(args))
	patternKey := strings.Join(args, "_")

	byCount, hasCount := byArgs[countKey]
	byPattern, hasPattern := byArgs[patternKey]

	switch {
	case hasCount && hasPattern && countKey != patternKey:
		return nil, true
	case hasPattern:
		return byPattern, false
	case hasCount:
		return byCount, false
	default:
		return nil, false
	}
}

// Invoke resolves "scroll-name" or "scroll-name=arg1_arg2…" into a flat,
// fully-substituted list of raw spell strings (spec.md §4.7 steps 4-6).
func (e *Engine) Invoke(name string, args []string) ([]string, error) {
	state := make(map[string]visitState)
	return e.invoke(name, args, state)
}

func (e *Engine) invoke(name string, args []string, state map[string]visitState) ([]string, error) {
	s, ok := e.scrolls[name]
	if !ok {
		return nil, diag.New(diag.KindResolution, "unknown scroll %q", name)
	}
	if st, seen := state[name]; seen && st == visiting {
		return nil, diag.New(diag.KindResolution, "cyclic scroll inheritance involving %q", name)
	}
	state[name] = visiting

	var raw []string
	for _, parent := range s.Extends {
		parentSpells, err := e.invoke(parent, nil, state)
		if err != nil {
			return nil, err
		}
		raw = append(raw, parentSpells...)
	}

	own, ambiguous := matchSpellByArgs(s.SpellByArgs, args)
	if ambiguous {
		return nil, diag.New(diag.KindResolution, "argument vector %v matches multiple spellByArgs entries in scroll %q", args, name)
	}
	if own == nil {
		own = s.Spells
	}

	substituted, err := substitutePositional(name, own, args)
	if err != nil {
		return nil, err
	}
	raw = append(raw, substituted...)

	state[name] = done

	// Recursively flatten any templated scroll references nested inside
	// this scroll's own spells (spec.md §4.7 step 6): a raw entry that
	// isn't itself a valid spell (no top-level '=' component=target with
	// a known component) and instead names another scroll.
	var flat []string
	for _, rs := range raw {
		if inner, innerArgs, isRef := splitScrollInvocation(rs); isRef && !e.isKnownComponent(inner) {
			if _, known := e.scrolls[inner]; known {
				expanded, err := e.invoke(inner, innerArgs, state)
				if err != nil {
					return nil, err
				}
				flat = append(flat, expanded...)
				continue
			}
		}
		flat = append(flat, rs)
	}

	return flat, nil
}

// substitutePositional replaces "$" placeholders in each spell's target
// with the invocation's positional arguments, in order of appearance
// across the whole spell list (spec.md §4.7 step 5, grounded on
// original_source's parse_scroll "=$" substitution).
func substitutePositional(scrollName string, spells []string, args []string) ([]string, error) {
	used := 0
	out := make([]string, 0, len(spells))
	for _, raw := range spells {
		if !strings.Contains(raw, "=$") {
			out = append(out, raw)
			continue
		}
		if used >= len(args) {
			return nil, diag.New(diag.KindResolution,
				"scroll %q: not enough arguments for '$' placeholders (expected at least %d, got %d)",
				scrollName, used+1, len(args))
		}
		out = append(out, strings.Replace(raw, "=$", "="+args[used], 1))
		used++
	}
	if used != len(args) {
		return nil, diag.New(diag.KindResolution,
			"scroll %q: not all arguments used (expected %d, used %d)", scrollName, len(args), used)
	}
	return out, nil
}

// splitScrollInvocation splits "name=arg1_arg2…" into the scroll name and
// its positional arguments. Used only once a caller has already decided
// the token names a scroll rather than a raw spell.
func splitScrollInvocation(raw string) (name string, args []string, ok bool) {
	before, after, found := strings.Cut(raw, "=")
	if before == "" {
		return "", nil, false
	}
	if !found {
		return before, nil, true
	}
	return before, strings.Split(after, "_"), true
}

// scrollCandidate reports whether sp names a scroll invocation — either
// bare ("flexCenter") or with arguments ("flexCenter=10_20") — rather than
// a plain component=target spell. A recognized CSS component always wins
// over a same-named scroll (see isKnownComponent).
func (e *Engine) scrollCandidate(sp *spell.Spell) (name string, args []string, yes bool) {
	if sp.Component == "" || e.isKnownComponent(sp.Component) {
		return "", nil, false
	}
	if _, known := e.scrolls[sp.Component]; !known {
		return "", nil, false
	}
	if sp.Target == "" {
		return sp.Component, nil, true
	}
	return sp.Component, strings.Split(sp.Target, "_"), true
}

// ParseToken resolves a single extracted class token all the way down to
// concrete spell.Spell values (spec.md §4.7 steps 1-2, 7): scroll
// invocations resolve via Invoke, with the outer token's area/focus/
// effects propagated onto every resulting declaration by composition
// (nearest wins for area, concatenation for focus, first-seen union for
// effects); anything else is a plain spell already carrying its own
// context.
func (e *Engine) ParseToken(token string) ([]*spell.Spell, error) {
	sp, err := spell.Parse(token)
	if err != nil {
		return nil, err
	}

	if sp.WithTemplate {
		out := make([]*spell.Spell, 0, len(sp.Parts))
		for _, part := range sp.Parts {
			resolved, err := e.resolveOne(sp.Raw, part)
			if err != nil {
				return nil, err
			}
			out = append(out, resolved...)
		}
		return out, nil
	}

	return e.resolveOne(sp.Raw, sp)
}

// resolveOne expands sp if it names a scroll invocation, composing each
// resulting declaration's context with sp's own; otherwise it returns sp
// with Raw set to rawToken, so a template part emits under the whole
// g!...; token.
func (e *Engine) resolveOne(rawToken string, sp *spell.Spell) ([]*spell.Spell, error) {
	name, args, yes := e.scrollCandidate(sp)
	if !yes {
		if sp.Raw != rawToken {
			cp := *sp
			cp.Raw = rawToken
			return []*spell.Spell{&cp}, nil
		}
		return []*spell.Spell{sp}, nil
	}

	raws, err := e.Invoke(name, args)
	if err != nil {
		return nil, err
	}
	out := make([]*spell.Spell, 0, len(raws))
	for _, rs := range raws {
		inner, err := spell.Parse(rs)
		if err != nil {
			return nil, err
		}
		out = append(out, composeContext(rawToken, sp, inner))
	}
	return out, nil
}

// composeContext builds the final declaration a scroll's own inner spell
// produces once composed with the invocation's outer context (spec.md
// §4.7 step 7). The selector-bearing Raw field always stays the literal,
// user-written outer token — only area/focus/effects compose, and
// component/target come from the inner declaration.
func composeContext(rawToken string, outer, inner *spell.Spell) *spell.Spell {
	area := outer.Area
	if inner.Area != "" {
		area = inner.Area
	}
	return &spell.Spell{
		Raw:          rawToken,
		Area:         area,
		Focus:        joinFocus(outer.Focus, inner.Focus),
		Effects:      unionEffects(outer.Effects, inner.Effects),
		Component:    inner.Component,
		Target:       inner.Target,
		WithTemplate: outer.WithTemplate,
		Span:         outer.Span,
	}
}

// joinFocus concatenates two focus fragments with a descendant combinator
// space, treating an absent side as identity.
func joinFocus(outer, inner string) string {
	switch {
	case outer == "":
		return inner
	case inner == "":
		return outer
	default:
		return outer + " " + inner
	}
}

// unionEffects merges two effect lists, preserving first-seen order and
// dropping duplicates (spec.md §4.7 step 7).
func unionEffects(outer, inner []string) []string {
	if len(outer) == 0 && len(inner) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(outer)+len(inner))
	out := make([]string, 0, len(outer)+len(inner))
	for _, list := range [][]string{outer, inner} {
		for _, e := range list {
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

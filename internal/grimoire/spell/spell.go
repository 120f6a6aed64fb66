// Package spell implements the Grimoire spell grammar: parsing a token of
// the form area__{focus}effects:component=target into a structured Spell,
// including the g!...; templated-spell form (spec.md §4.4).
package spell

import (
	"strings"

	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
)

// Spell is the parsed form of one spell token.
type Spell struct {
	// Raw is the original, unmodified token text (used verbatim, CSS
	// escaped, as the emitted selector — spec.md §4.9 step 3a).
	Raw string

	Area      string
	Focus     string
	Effects   []string
	Component string
	Target    string

	// WithTemplate marks a g!...; occurrence; Parts holds the sub-spells
	// separated by '&' inside the template.
	WithTemplate bool
	Parts        []*Spell

	// Span is the byte range of Raw within its originating source text.
	Span diag.Span
}

// HasTarget reports whether the spell carries a component=target pair, as
// opposed to a bare scroll invocation (spec.md §4.3's data model note:
// "at least one of {component, target} required").
func (s *Spell) HasTarget() bool {
	return s.Component != "" && s.Target != ""
}

// checkForTemplate reports whether raw looks like a g!...; occurrence.
func checkForTemplate(raw string) bool {
	return strings.HasPrefix(raw, "g!") && strings.HasSuffix(raw, ";")
}

// Parse parses one raw class token into a Spell. A bare token with no '='
// (e.g. "flexCenter") still parses successfully, with Component set to the
// whole remaining text and Target empty — disambiguating it as a scroll
// invocation or an unrecognized component is the caller's job (see
// package scroll), not Parse's.
func Parse(raw string) (*Spell, error) {
	withTemplate := checkForTemplate(raw)
	body := raw
	if withTemplate {
		body = strings.TrimSuffix(strings.TrimPrefix(raw, "g!"), ";")
	}

	if withTemplate {
		parts := splitNonEmpty(body, "&")
		if len(parts) == 0 {
			return nil, diag.New(diag.KindParse, "empty templated spell %q", raw)
		}
		sp := &Spell{Raw: raw, WithTemplate: true}
		for _, p := range parts {
			child, err := Parse(p)
			if err != nil {
				return nil, err
			}
			if child != nil {
				sp.Parts = append(sp.Parts, child)
			}
		}
		return sp, nil
	}

	return parseBare(raw, body)
}

func parseBare(raw, body string) (*Spell, error) {
	area, rest := splitOnce(body, "__")

	focus, rest := splitFocus(rest)

	effectsStr, rest := splitOnce(rest, ":")

	component, target, hasEq := cut(rest, "=")
	if !hasEq {
		// No '=' — either a bare scroll invocation name, or malformed.
		return &Spell{
			Raw:       raw,
			Area:      area,
			Focus:     focus,
			Effects:   splitEffects(effectsStr),
			Component: rest,
			Target:    "",
		}, nil
	}

	return &Spell{
		Raw:       raw,
		Area:      area,
		Focus:     focus,
		Effects:   splitEffects(effectsStr),
		Component: component,
		Target:    target,
	}, nil
}

func splitEffects(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// splitOnce mirrors Rust's split_once: returns ("", whole) when sep is
// absent, matching spell.rs's use of split_once with an ("", rest)
// fallback.
func splitOnce(s, sep string) (before, after string) {
	idx := strings.Index(s, sep)
	if idx < 0 {
		return "", s
	}
	return s[:idx], s[idx+len(sep):]
}

// cut is like strings.Cut.
func cut(s, sep string) (before, after string, found bool) {
	idx := strings.Index(s, sep)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+len(sep):], true
}

// splitFocus extracts the "{...}" focus fragment, if present at the start
// of the remaining text, tolerating unbalanced/missing braces the way
// spell.rs's split_once('}') does.
func splitFocus(s string) (focus, rest string) {
	idx := strings.Index(s, "}")
	if idx < 0 {
		return "", s
	}
	f, r := s[:idx], s[idx+1:]
	f = strings.TrimPrefix(f, "{")
	return f, r
}

func splitNonEmpty(s, sep string) []string {
	raw := strings.Split(s, sep)
	out := raw[:0]
	for _, p := range raw {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

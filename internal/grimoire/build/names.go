package build

import "strings"

// areaBreakpoints maps a named area to its fixed min-width breakpoint
// (spec.md §4.4, grounded on original_source's wrap_base_css_with_media_query:
// the five named areas are literal, not configurable).
var areaBreakpoints = map[string]string{
	"sm":  "640px",
	"md":  "768px",
	"lg":  "1024px",
	"xl":  "1280px",
	"2xl": "1536px",
}

// mediaQueryFor turns a spell's area fragment into a @media condition.
// Named areas resolve to their fixed breakpoint; anything else is a
// literal media condition with '_' standing in for spaces (e.g.
// "(max-width:600px)" or "print"). An empty area produces no condition.
func mediaQueryFor(area string) string {
	if area == "" {
		return ""
	}
	if px, ok := areaBreakpoints[area]; ok {
		return "(min-width: " + px + ")"
	}
	return strings.ReplaceAll(area, "_", " ")
}

// cssEscapeChars are the characters original_source's escape_css_class_name
// backslash-escapes when turning a raw spell token into a CSS class
// selector, plus the brace pair Grimoire's own focus-fragment syntax
// introduces — those are CSS-selector-unsafe if left bare and have no
// analogue in the original's flat (non-braced) focus syntax.
const cssEscapeChars = "!\"#$%&'()*+,./:;<=>?@[\\]^_`{}|~"

// escapeClassName backslash-escapes every CSS-special character in raw so
// it can be used verbatim as a class selector (spec.md §4.9 step 3a: "the
// output selector must equal the user-written class verbatim, appropriately
// CSS-escaped"). A literal space is also escaped, though authors are
// expected to write '_' instead.
func escapeClassName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) * 2)
	for _, r := range raw {
		if r == ' ' || strings.ContainsRune(cssEscapeChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// buildSelector reconstructs the CSS selector for one resolved
// declaration: the escaped literal class name, followed by any effects as
// chained pseudo-classes, followed by any focus fragment as a descendant
// combinator (spec.md §4.4, grounded on original_source's
// generate_css_class_name/generate_effect).
func buildSelector(rawToken string, effects []string, focus string) string {
	var b strings.Builder
	b.WriteByte('.')
	b.WriteString(escapeClassName(rawToken))
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

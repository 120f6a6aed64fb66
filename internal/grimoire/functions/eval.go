package functions

import (
	"regexp"
	"strings"

	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
)

// callRe matches one grimoire function call — mrs(...), mfs(...), or any
// g-* color function — with balanced-paren argument text (spec.md §4.4's
// "function-like targets must have balanced parentheses").
var callRe = regexp.MustCompile(`(mrs|mfs|g-[a-z-]+)\(([^()]*)\)`)

// EvaluateTarget resolves every grimoire function call embedded in an
// already-variable-resolved target, then turns remaining underscores into
// spaces (spec.md §4.4's target grammar).
func EvaluateTarget(target string) (string, error) {
	var evalErr error
	replaced := callRe.ReplaceAllStringFunc(target, func(call string) string {
		if evalErr != nil {
			return call
		}
		m := callRe.FindStringSubmatch(call)
		name, argStr := m[1], m[2]
		args := splitArgs(argStr)

		switch name {
		case "mrs":
			out, err := MRS(args)
			if err != nil {
				evalErr = err
				return call
			}
			return out
		case "mfs":
			out, err := MFS(args)
			if err != nil {
				evalErr = err
				return call
			}
			return out
		default:
			c, err := EvalColor(name, args)
			if err != nil {
				evalErr = err
				return call
			}
			return c.String()
		}
	})
	if evalErr != nil {
		return "", evalErr
	}
	return strings.ReplaceAll(replaced, "_", " "), nil
}

// splitArgs splits a function's argument text on '_' (spec.md §4.6:
// "arguments are positional and underscore-separated"), dropping empty
// trailing pieces from a bare `func()` call.
func splitArgs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "_")
}

// HasBalancedParens validates the surface syntax rule spec.md §4.4 states
// for function-like targets.
func HasBalancedParens(s string) error {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth < 0 {
			return diag.New(diag.KindParse, "unbalanced parentheses in %q", s)
		}
	}
	if depth != 0 {
		return diag.New(diag.KindParse, "unbalanced parentheses in %q", s)
	}
	return nil
}

// Package variables implements Grimoire's $name substitution inside spell
// targets (spec.md §4.5).
package variables

import (
	"strings"

	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
)

// Resolver holds the config-level variable bindings.
type Resolver struct {
	values map[string]string
}

func New(values map[string]string) *Resolver {
	return &Resolver{values: values}
}

// Resolve substitutes every $name occurrence in target with its bound
// value. Unbound references are fatal (spec.md §4.5); substitution is a
// single textual pass — resolved values are not themselves re-scanned for
// further $ references.
func (r *Resolver) Resolve(target string) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(target) {
		ch := target[i]
		if ch != '$' {
			out.WriteByte(ch)
			i++
			continue
		}
		name, next := scanName(target, i+1)
		if name == "" {
			out.WriteByte(ch)
			i++
			continue
		}
		val, ok := r.values[name]
		if !ok {
			return "", diag.New(diag.KindResolution, "unbound variable $%s", name).
				WithHelp("define %q under \"variables\" in the config", name)
		}
		out.WriteString(val)
		i = next
	}
	return out.String(), nil
}

// scanName reads an identifier (letters, digits, '-', '_') starting at
// start, returning it and the index immediately after it.
func scanName(s string, start int) (name string, end int) {
	i := start
	for i < len(s) {
		c := s[i]
		if isIdentChar(c) {
			i++
			continue
		}
		break
	}
	return s[start:i], i
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

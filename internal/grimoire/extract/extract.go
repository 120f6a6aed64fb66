// Package extract implements the class-token extractor (spec.md §4.8):
// scanning an arbitrary text blob for class="…"/className="…" attributes
// and templated g!<spell>; occurrences, and splitting each into
// whitespace-delimited class tokens with byte spans.
//
// Grounded on the teacher's scanFile/extractClassesFromLine in
// scanner.go, generalized from Go-source-specific patterns (templ.Classes,
// ui.Foo constants) to markup class attributes and templated spells.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
)

// Token is one extracted class token with its location in the source
// text (spec.md §4.8: "an ordered multiset of class tokens with byte
// spans").
type Token struct {
	Text string
	Span diag.Span
}

var attrRe = regexp.MustCompile(`\b(?:class|className)\s*=\s*(['"{])`)

// templateRe finds a g!...; occurrence, requiring "g!" to sit at a token
// boundary (start of text or preceded by a non-identifier character) per
// spec.md §4.4/§4.8.
var templateRe = regexp.MustCompile(`g!([^;]*);`)

var identCharRe = regexp.MustCompile(`[A-Za-z0-9_-]`)

// Extract scans text for class attributes and templated spells, returning
// every whitespace-split class token it finds, in first-seen order.
// file is an informational hint only, carried through into each Span.
func Extract(file, text string) []Token {
	var tokens []Token

	for _, loc := range attrRe.FindAllStringSubmatchIndex(text, -1) {
		openQuoteIdx := loc[2] // start of the captured quote/brace char
		quoteChar := text[openQuoteIdx]
		valueStart := openQuoteIdx + 1

		valueEnd, ok := findMatchingTerminator(text, valueStart, quoteChar)
		if !ok {
			continue
		}
		value := text[valueStart:valueEnd]
		tokens = append(tokens, tokenizeValue(file, valueStart, value)...)
	}

	for _, loc := range templateRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[0], loc[1]
		if !atTokenBoundary(text, start) {
			continue
		}
		tokens = append(tokens, Token{
			Text: text[start:end],
			Span: diag.Span{File: file, Start: start, Len: end - start},
		})
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Span.Start < tokens[j].Span.Start
	})
	return tokens
}

// atTokenBoundary reports whether position idx in text is preceded by
// start-of-text or a non-identifier character, so "g!" embedded inside a
// larger identifier (e.g. "bg!foo;" as part of another word) is rejected.
func atTokenBoundary(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	prev := text[idx-1 : idx]
	return !identCharRe.MatchString(prev)
}

// findMatchingTerminator locates the exact counterpart of the opening
// quote/brace character, honoring nested braces for the class={…} form
// (spec.md §4.8: "mixed quote styles... follow the initial quote").
func findMatchingTerminator(text string, start int, open byte) (int, bool) {
	if open != '{' {
		idx := strings.IndexByte(text[start:], open)
		if idx < 0 {
			return 0, false
		}
		return start + idx, true
	}

	depth := 1
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// tokenizeValue splits an attribute value on whitespace into individual
// class tokens, computing each token's absolute byte offset. Tokens
// beginning with '.' are accepted (spec.md §4.8) and kept as written —
// callers decide whether to strip the dot.
func tokenizeValue(file string, valueStart int, value string) []Token {
	var out []Token
	i := 0
	for i < len(value) {
		for i < len(value) && isSpace(value[i]) {
			i++
		}
		j := i
		for j < len(value) && !isSpace(value[j]) {
			j++
		}
		if j > i {
			tok := value[i:j]
			out = append(out, Token{
				Text: tok,
				Span: diag.Span{File: file, Start: valueStart + i, Len: j - i},
			})
		}
		i = j
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// NormalizeClassToken strips a leading '.' if present, so ".btn" and
// "btn" resolve identically (spec.md §4.8).
func NormalizeClassToken(tok string) string {
	return strings.TrimPrefix(tok, ".")
}

// Package rawcss handles opaque CSS blob inputs: raw .css files referenced
// from shared/critical style lists (spec.md §4.9's shared/critical
// pipelines can name a CSS file directly, not just a spell/scroll), plus
// ShortenTokens, an identifier rewrite over CSS text that leaves string
// and comment tokens untouched. The shorten command does not call it.
//
// The reference project has no CSS tokenizer of its own — this package is
// grounded directly on SPEC_FULL.md's DOMAIN STACK wiring, using
// tdewolff/parse/v2's css lexer the way its own examples tokenize CSS:
// pull tokens until ErrorToken, branch on token type.
package rawcss

import (
	"os"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
)

// ReadBlob reads a raw CSS file and runs it through the CSS lexer. Only a
// read failure produces a diagnostic: validate accepts any content, so
// malformed CSS is returned as read.
func ReadBlob(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", diag.New(diag.KindIO, "failed to read raw CSS file %s: %v", path, err).WithSource(path)
	}
	if err := validate(path, data); err != nil {
		return "", err
	}
	return string(data), nil
}

// validate tokenizes the blob until the lexer's first ErrorToken and
// always returns nil. An ErrorToken at end of input is normal (the
// reference project's parser.go treats it the same way), a lexer error
// before the end is not reported either, and text that isn't valid CSS
// syntax tokenizes as a run of DelimTokens rather than failing, so this is
// a pass over the tokens, not a CSS grammar validator.
func validate(path string, data []byte) error {
	l := css.NewLexer(parse.NewInputString(string(data)))
	for {
		tt, _ := l.Next()
		if tt == css.ErrorToken {
			return nil
		}
	}
}

// RewriteFunc maps one identifier-like token's text to its replacement
// (e.g. components.Dictionary.Shortest).
type RewriteFunc func(text string) string

// ShortenTokens rewrites every identifier token in css using rewrite,
// leaving string and comment tokens untouched. The `shorten` command does
// not use it: it rewrites only the class tokens the extractor finds.
func ShortenTokens(source string, rewrite RewriteFunc) string {
	l := css.NewLexer(parse.NewInputString(source))
	var out []byte
	for {
		tt, buf := l.Next()
		if tt == css.ErrorToken {
			break
		}
		switch tt {
		case css.StringToken, css.CommentToken:
			out = append(out, buf...)
		case css.IdentToken:
			out = append(out, []byte(rewrite(string(buf)))...)
		default:
			out = append(out, buf...)
		}
	}
	return string(out)
}

// Package postprocess defines the post-processor adapter contract
// (spec.md §4.11): CSS text plus a browserslist hint in, final CSS bytes
// out. The core builder's correctness invariant is that unminified,
// unprefixed CSS is a valid — if unoptimized — output whenever no
// processor is configured, so the no-op Processor below is a first-class
// implementation, not a stub.
package postprocess

// Processor transforms assembled CSS before it is written or returned to
// the caller (e.g. minification, autoprefixing). Implementations must
// treat input as opaque CSS text; they must not assume anything about the
// selectors or declarations the builder produced.
type Processor interface {
	Process(css string, browserslist []string) (string, error)
}

// Identity is the no-op Processor: it returns its input unchanged. This
// is the Processor build.New installs by default (the config has no
// post-processor setting), and it is what proves the core pipeline's output is valid CSS on its
// own (spec.md §4.11).
type Identity struct{}

// Process implements Processor.
func (Identity) Process(css string, _ []string) (string, error) {
	return css, nil
}

// DefaultBrowserslist is synthesized by the config loader when no
// browserslist hint is supplied (spec.md §4.1).
var DefaultBrowserslist = []string{"defaults"}

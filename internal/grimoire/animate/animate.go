// Package animate implements the animation catalog (spec.md §4.2):
// built-in keyframe blocks compiled into the binary, plus lazy discovery
// of custom animations from grimoire/animations/*.css, and the
// GRIMOIRE_CSS_ANIMATION placeholder rewrite performed at emit time.
//
// Grounded on original_source's animations.rs static table; the catalog
// itself is data, not behavior, so only a representative built-in subset
// is transcribed here (SPEC_FULL.md's supplemented-features decision) —
// the lazy-loading and placeholder-rewrite mechanism is transcribed in
// full.
package animate

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
)

// Placeholder is the literal selector custom animation files bind
// supplemental declarations to.
const Placeholder = "GRIMOIRE_CSS_ANIMATION"

// Definition is one resolved animation (spec.md §3's "Animation
// definition"): an opaque @keyframes block plus optional declarations
// originally bound to Placeholder.
type Definition struct {
	Name         string
	KeyframesCSS string
}

// Catalog resolves animation names to definitions, checking built-ins
// first and lazily scanning the custom animations directory on miss.
type Catalog struct {
	root string

	mu      sync.Mutex
	custom  map[string]*Definition
	scanned bool
}

// New builds a Catalog that looks for grimoire/animations/*.css under
// root (typically the config's directory).
func New(root string) *Catalog {
	return &Catalog{root: root}
}

// Lookup resolves name to its keyframes block, checking built-ins first,
// then lazily-scanned custom animations (spec.md §4.2).
func (c *Catalog) Lookup(name string) (*Definition, error) {
	if css, ok := builtins[name]; ok {
		return &Definition{Name: name, KeyframesCSS: css}, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.scanned {
		if err := c.scanCustom(); err != nil {
			return nil, err
		}
		c.scanned = true
	}
	if def, ok := c.custom[name]; ok {
		return def, nil
	}
	return nil, diag.New(diag.KindResolution, "unknown animation %q", name)
}

func (c *Catalog) scanCustom() error {
	c.custom = make(map[string]*Definition)
	pattern := filepath.Join(c.root, "grimoire", "animations", "*.css")
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return diag.New(diag.KindIO, "failed to scan custom animations: %v", err)
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return diag.New(diag.KindIO, "failed to read animation file %s: %v", p, err).WithSource(p)
		}
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		c.custom[name] = &Definition{Name: name, KeyframesCSS: string(data)}
	}
	return nil
}

var placeholderSelectorRe = regexp.MustCompile(`\.` + Placeholder + `\b`)

// Render substitutes the GRIMOIRE_CSS_ANIMATION placeholder selector in
// the definition's CSS with "." followed by classSelector, the class
// selector that triggered the animation. classSelector is inserted as
// given; Render does no escaping of its own.
func (d *Definition) Render(classSelector string) string {
	return placeholderSelectorRe.ReplaceAllString(d.KeyframesCSS, "."+classSelector)
}

// SplitKeyframes separates the definition's shared @keyframes block from
// its trailing placeholder-bound declaration block. Callers emit the
// keyframes block at most once per artifact (spec.md §4.2's "emit
// referenced animations once per artifact") but must bind the
// placeholder to every selector that references the animation, so the
// two halves have different emission lifetimes.
func (d *Definition) SplitKeyframes() (keyframes, placeholderBlock string) {
	loc := placeholderSelectorRe.FindStringIndex(d.KeyframesCSS)
	if loc == nil {
		return d.KeyframesCSS, ""
	}
	return d.KeyframesCSS[:loc[0]], d.KeyframesCSS[loc[0]:]
}

// Bind is SplitKeyframes plus placeholder substitution on just the
// trailing half: it returns the shared keyframes block unchanged and the
// placeholder-bound declaration block with its selector replaced by
// selector (no leading '.' — Bind adds it), so callers can emit the two
// halves on independent schedules without duplicating the keyframes text.
func (d *Definition) Bind(selector string) (keyframes, bound string) {
	kf, ph := d.SplitKeyframes()
	if ph == "" {
		return kf, ""
	}
	return kf, placeholderSelectorRe.ReplaceAllString(ph, "."+selector)
}

// Tracker records which animation names have already been emitted into
// the current artifact, enforcing spec.md §4.2's "at most once per
// output artifact" rule. Not safe for concurrent use across artifacts —
// callers create one per artifact being built.
type Tracker struct {
	emitted map[string]bool
}

// NewTracker returns an empty per-artifact animation tracker.
func NewTracker() *Tracker {
	return &Tracker{emitted: make(map[string]bool)}
}

// ShouldEmit reports whether name has not yet been emitted in this
// artifact, and marks it emitted as a side effect.
func (t *Tracker) ShouldEmit(name string) bool {
	if t.emitted[name] {
		return false
	}
	t.emitted[name] = true
	return true
}

package build

import (
	"sort"
	"strings"
)

// declKey identifies one (property, value) pair for exact-duplicate
// detection within a selector group (spec.md §4.9 step 4).
type declKey struct{ property, value string }

type selectorGroup struct {
	selectors []string
	order     int
	decls     []declKey
	seen      map[declKey]bool
}

func (g *selectorGroup) add(d declKey) {
	if g.seen[d] {
		return
	}
	g.seen[d] = true
	g.decls = append(g.decls, d)
}

func (g *selectorGroup) declKeyString() string {
	parts := make([]string, len(g.decls))
	for i, d := range g.decls {
		parts[i] = d.property + ":" + d.value
	}
	return strings.Join(parts, ";")
}

type mediaGroup struct {
	media      string
	order      int
	bySelector map[string]*selectorGroup
	groups     []*selectorGroup
}

// Group implements spec.md §4.9 steps 4-5: tuples are grouped first by
// media, then by selector, exact-duplicate (property, value) pairs are
// dropped, and selector groups sharing an identical declaration set
// within the same media are merged into one rule with a comma-joined
// selector list. First-seen order is preserved throughout.
func Group(tuples []Tuple) []CSSRule {
	mediaOrder := []string{}
	media := map[string]*mediaGroup{}

	for _, t := range tuples {
		mg, ok := media[t.Media]
		if !ok {
			mg = &mediaGroup{media: t.Media, order: len(mediaOrder), bySelector: map[string]*selectorGroup{}}
			media[t.Media] = mg
			mediaOrder = append(mediaOrder, t.Media)
		}
		sg, ok := mg.bySelector[t.Selector]
		if !ok {
			sg = &selectorGroup{selectors: []string{t.Selector}, order: len(mg.groups), seen: map[declKey]bool{}}
			mg.bySelector[t.Selector] = sg
			mg.groups = append(mg.groups, sg)
		}
		sg.add(declKey{t.Property, t.Value})
	}

	var rules []CSSRule
	for _, m := range mediaOrder {
		mg := media[m]
		merged := mergeIdenticalDeclSets(mg.groups)
		for _, sg := range merged {
			rules = append(rules, CSSRule{
				Media:       mg.media,
				mediaOrder:  mg.order,
				selectorSeq: sg.order,
				Selectors:   sg.selectors,
				Decls:       declKeysToPairs(sg.decls),
			})
		}
	}

	sort.SliceStable(rules, func(i, j int) bool {
		// Non-media rules first, then media blocks in first-seen order;
		// within a media group, rules follow first-seen order (spec.md
		// §4.9 step 5).
		iCond, jCond := rules[i].Media != "", rules[j].Media != ""
		if iCond != jCond {
			return !iCond
		}
		if rules[i].mediaOrder != rules[j].mediaOrder {
			return rules[i].mediaOrder < rules[j].mediaOrder
		}
		return rules[i].selectorSeq < rules[j].selectorSeq
	})
	return rules
}

func mergeIdenticalDeclSets(groups []*selectorGroup) []*selectorGroup {
	byKey := map[string]*selectorGroup{}
	var merged []*selectorGroup
	for _, sg := range groups {
		key := sg.declKeyString()
		if existing, ok := byKey[key]; ok {
			existing.selectors = append(existing.selectors, sg.selectors...)
			continue
		}
		byKey[key] = sg
		merged = append(merged, sg)
	}
	return merged
}

func declKeysToPairs(keys []declKey) []Declaration {
	out := make([]Declaration, len(keys))
	for i, k := range keys {
		out[i] = Declaration{Property: k.property, Value: k.value}
	}
	return out
}

// Declaration is one property:value pair within a CSSRule.
type Declaration struct {
	Property string
	Value    string
}

// CSSRule is one grouped, deduplicated, possibly-merged rule ready for
// text emission.
type CSSRule struct {
	Media     string
	Selectors []string
	Decls     []Declaration

	mediaOrder  int
	selectorSeq int
}

// RenderCSS writes rules as CSS text (spec.md §4.9 step 5): non-media
// rules first, then media-query blocks, each wrapping its rules in
// textual order. customProperties and extraCSS (raw animation blocks) are
// spliced in per the same step's ordering: custom-properties block, then
// non-media rules, then media blocks; extraCSS (already-formed keyframes
// and placeholder bindings) is appended once, in first-seen order, ahead
// of the rules that reference it.
func RenderCSS(customProperties string, extraCSS []string, rules []CSSRule) string {
	var b strings.Builder

	if customProperties != "" {
		b.WriteString(customProperties)
		if !strings.HasSuffix(customProperties, "\n") {
			b.WriteByte('\n')
		}
	}
	for _, block := range extraCSS {
		b.WriteString(block)
		if !strings.HasSuffix(block, "\n") {
			b.WriteByte('\n')
		}
	}

	var mediaBlocks []CSSRule
	for _, r := range rules {
		if r.Media == "" {
			writeRule(&b, r)
			continue
		}
		mediaBlocks = append(mediaBlocks, r)
	}

	var curMedia string
	var inBlock bool
	for _, r := range mediaBlocks {
		if r.Media != curMedia || !inBlock {
			if inBlock {
				b.WriteString("}\n")
			}
			b.WriteString("@media ")
			b.WriteString(r.Media)
			b.WriteString(" {\n")
			curMedia = r.Media
			inBlock = true
		}
		b.WriteByte(' ')
		writeRule(&b, r)
	}
	if inBlock {
		b.WriteString("}\n")
	}

	return b.String()
}

func writeRule(b *strings.Builder, r CSSRule) {
	b.WriteString(strings.Join(r.Selectors, ", "))
	b.WriteString(" {")
	for _, d := range r.Decls {
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	b.WriteString("}\n")
}

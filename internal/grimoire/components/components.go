// Package components implements the bidirectional mapping between verbose
// CSS property names and their shorthand aliases (spec.md §4.3).
package components

type componentEntry struct {
	Full  string
	Short string
}

// componentTable is the bidirectional CSS property <-> shorthand alias table,
// transcribed from Grimoire CSS's canonical component list.
var componentTable = []componentEntry{
	{Full: "accent-color", Short: "acc"},
	{Full: "align-content", Short: "ac"},
	{Full: "align-items", Short: "ai"},
	{Full: "align-self", Short: "as"},
	{Full: "align-tracks", Short: "atr"},
	{Full: "all", Short: "all"},
	{Full: "anchor-name", Short: "anc-n"},
	{Full: "anchor-scope", Short: "anc-s"},
	{Full: "animation", Short: "anim"},
	{Full: "animation-composition", Short: "anim-comp"},
	{Full: "animation-delay", Short: "anim-d"},
	{Full: "animation-direction", Short: "anim-dir"},
	{Full: "animation-duration", Short: "anim-du"},
	{Full: "animation-fill-mode", Short: "anim-fm"},
	{Full: "animation-iteration-count", Short: "anim-ic"},
	{Full: "animation-name", Short: "anim-n"},
	{Full: "animation-play-state", Short: "anim-ps"},
	{Full: "animation-range", Short: "anim-r"},
	{Full: "animation-range-end", Short: "anim-re"},
	{Full: "animation-range-start", Short: "anim-rs"},
	{Full: "animation-timeline", Short: "at"},
	{Full: "animation-timing-function", Short: "atf"},
	{Full: "animationType", Short: "atype"},
	{Full: "appearance", Short: "app"},
	{Full: "appliesto", Short: "applies"},
	{Full: "aspect-ratio", Short: "ar"},
	{Full: "azimuth", Short: "az"},
	{Full: "backdrop-filter", Short: "bf"},
	{Full: "backface-visibility", Short: "bvis"},
	{Full: "background", Short: "bg"},
	{Full: "background-attachment", Short: "bga"},
	{Full: "background-blend-mode", Short: "bgblm"},
	{Full: "background-clip", Short: "bg-cl"},
	{Full: "background-color", Short: "bgc"},
	{Full: "background-image", Short: "bgi"},
	{Full: "background-origin", Short: "bgo"},
	{Full: "background-position", Short: "bgp"},
	{Full: "background-position-x", Short: "bgpx"},
	{Full: "background-position-y", Short: "bgpy"},
	{Full: "background-repeat", Short: "bgr"},
	{Full: "background-size", Short: "bgsz"},
	{Full: "block-size", Short: "bsz"},
	{Full: "border", Short: "b"},
	{Full: "border-block", Short: "bb"},
	{Full: "border-block-color", Short: "bbc"},
	{Full: "border-block-end", Short: "bbe"},
	{Full: "border-block-end-color", Short: "bbec"},
	{Full: "border-block-end-style", Short: "bbes"},
	{Full: "border-block-end-width", Short: "bbew"},
	{Full: "border-block-start", Short: "bbs"},
	{Full: "border-block-start-color", Short: "bbsc"},
	{Full: "border-block-start-style", Short: "bbss"},
	{Full: "border-block-start-width", Short: "bbsw"},
	{Full: "border-block-style", Short: "bbs"},
	{Full: "border-block-width", Short: "bbw"},
	{Full: "border-bottom", Short: "bb"},
	{Full: "border-bottom-color", Short: "bbc"},
	{Full: "border-bottom-left-radius", Short: "bblr"},
	{Full: "border-bottom-right-radius", Short: "bbrr"},
	{Full: "border-bottom-style", Short: "bbs"},
	{Full: "border-bottom-width", Short: "bbw"},
	{Full: "border-collapse", Short: "bcoll"},
	{Full: "border-color", Short: "bc"},
	{Full: "border-end-end-radius", Short: "beer"},
	{Full: "border-end-start-radius", Short: "besr"},
	{Full: "border-image", Short: "bi"},
	{Full: "border-image-outset", Short: "bio"},
	{Full: "border-image-repeat", Short: "bir"},
	{Full: "border-image-slice", Short: "bis"},
	{Full: "border-image-source", Short: "bisrc"},
	{Full: "border-image-width", Short: "biw"},
	{Full: "border-inline", Short: "bli"},
	{Full: "border-inline-color", Short: "blic"},
	{Full: "border-inline-end", Short: "blie"},
	{Full: "border-inline-end-color", Short: "bliec"},
	{Full: "border-inline-end-style", Short: "blies"},
	{Full: "border-inline-end-width", Short: "bliew"},
	{Full: "border-inline-start", Short: "blis"},
	{Full: "border-inline-start-color", Short: "blisc"},
	{Full: "border-inline-start-style", Short: "bliss"},
	{Full: "border-inline-start-width", Short: "blisw"},
	{Full: "border-inline-style", Short: "blis"},
	{Full: "border-inline-width", Short: "bliw"},
	{Full: "border-left", Short: "bl"},
	{Full: "border-left-color", Short: "blc"},
	{Full: "border-left-style", Short: "bls"},
	{Full: "border-left-width", Short: "blw"},
	{Full: "border-radius", Short: "br"},
	{Full: "border-right", Short: "brt"},
	{Full: "border-right-color", Short: "brc"},
	{Full: "border-right-style", Short: "brs"},
	{Full: "border-right-width", Short: "brw"},
	{Full: "border-spacing", Short: "bsp"},
	{Full: "border-start-end-radius", Short: "bser"},
	{Full: "border-start-start-radius", Short: "bssr"},
	{Full: "border-style", Short: "bst"},
	{Full: "border-top", Short: "bt"},
	{Full: "border-top-color", Short: "btc"},
	{Full: "border-top-left-radius", Short: "btlr"},
	{Full: "border-top-right-radius", Short: "btrr"},
	{Full: "border-top-style", Short: "bts"},
	{Full: "border-top-width", Short: "btw"},
	{Full: "border-width", Short: "bw"},
	{Full: "bottom", Short: "btm"},
	{Full: "box-align", Short: "bxa"},
	{Full: "box-decoration-break", Short: "bxdb"},
	{Full: "box-direction", Short: "bxd"},
	{Full: "box-flex", Short: "bxf"},
	{Full: "box-flex-group", Short: "bxfg"},
	{Full: "box-lines", Short: "bxl"},
	{Full: "box-ordinal-group", Short: "bxog"},
	{Full: "box-orient", Short: "bxo"},
	{Full: "box-pack", Short: "bxp"},
	{Full: "box-shadow", Short: "bxsh"},
	{Full: "box-sizing", Short: "bxs"},
	{Full: "break-after", Short: "ba"},
	{Full: "break-before", Short: "bb"},
	{Full: "break-inside", Short: "bi"},
	{Full: "caption-side", Short: "cs"},
	{Full: "caret", Short: "crt"},
	{Full: "caret-color", Short: "cc"},
	{Full: "caret-shape", Short: "cs"},
	{Full: "clear", Short: "clr"},
	{Full: "clip", Short: "clp"},
	{Full: "clip-path", Short: "clpp"},
	{Full: "color", Short: "c"},
	{Full: "color-scheme", Short: "csch"},
	{Full: "column-count", Short: "ccnt"},
	{Full: "column-fill", Short: "cf"},
	{Full: "column-gap", Short: "cg"},
	{Full: "column-rule", Short: "cr"},
	{Full: "column-rule-color", Short: "crc"},
	{Full: "column-rule-style", Short: "crs"},
	{Full: "column-rule-width", Short: "crw"},
	{Full: "column-span", Short: "csn"},
	{Full: "column-width", Short: "cw"},
	{Full: "columns", Short: "cols"},
	{Full: "computed", Short: "cmp"},
	{Full: "contain", Short: "cntn"},
	{Full: "contain-intrinsic-block-size", Short: "cibs"},
	{Full: "contain-intrinsic-height", Short: "cih"},
	{Full: "contain-intrinsic-inline-size", Short: "ciis"},
	{Full: "contain-intrinsic-size", Short: "cis"},
	{Full: "contain-intrinsic-width", Short: "ciw"},
	{Full: "container", Short: "ctr"},
	{Full: "container-name", Short: "ctrn"},
	{Full: "container-type", Short: "ctrt"},
	{Full: "content", Short: "cnt"},
	{Full: "content-visibility", Short: "cntv"},
	{Full: "counter-increment", Short: "cinc"},
	{Full: "counter-reset", Short: "crst"},
	{Full: "counter-set", Short: "cset"},
	{Full: "cursor", Short: "cur"},
	{Full: "direction", Short: "dir"},
	{Full: "display", Short: "d"},
	{Full: "empty-cells", Short: "ec"},
	{Full: "field-sizing", Short: "fsz"},
	{Full: "filter", Short: "flt"},
	{Full: "flex", Short: "flx"},
	{Full: "flex-basis", Short: "flxb"},
	{Full: "flex-direction", Short: "flex-dir"},
	{Full: "flex-flow", Short: "flex-fl"},
	{Full: "flex-grow", Short: "flex-gr"},
	{Full: "flex-shrink", Short: "flex-sh"},
	{Full: "flex-wrap", Short: "flex-wr"},
	{Full: "float", Short: "flt"},
	{Full: "font", Short: "fnt"},
	{Full: "font-family", Short: "ff"},
	{Full: "font-feature-settings", Short: "ffs"},
	{Full: "font-kerning", Short: "fk"},
	{Full: "font-language-override", Short: "flo"},
	{Full: "font-optical-sizing", Short: "fos"},
	{Full: "font-palette", Short: "fp"},
	{Full: "font-size", Short: "fs"},
	{Full: "font-size-adjust", Short: "fsa"},
	{Full: "font-smooth", Short: "fsm"},
	{Full: "font-stretch", Short: "fstr"},
	{Full: "font-style", Short: "fsty"},
	{Full: "font-synthesis", Short: "fsyn"},
	{Full: "font-synthesis-position", Short: "fsynp"},
	{Full: "font-synthesis-small-caps", Short: "fssc"},
	{Full: "font-synthesis-style", Short: "fss"},
	{Full: "font-synthesis-weight", Short: "fsw"},
	{Full: "font-variant", Short: "fv"},
	{Full: "font-variant-alternates", Short: "fva"},
	{Full: "font-variant-caps", Short: "fvc"},
	{Full: "font-variant-east-asian", Short: "fvea"},
	{Full: "font-variant-emoji", Short: "fve"},
	{Full: "font-variant-ligatures", Short: "fvl"},
	{Full: "font-variant-numeric", Short: "fvn"},
	{Full: "font-variant-position", Short: "fvp"},
	{Full: "font-variation-settings", Short: "fvs"},
	{Full: "font-weight", Short: "fw"},
	{Full: "forced-color-adjust", Short: "fca"},
	{Full: "gap", Short: "g"},
	{Full: "grid", Short: "gr"},
	{Full: "grid-area", Short: "gra"},
	{Full: "grid-auto-columns", Short: "grac"},
	{Full: "grid-auto-flow", Short: "graf"},
	{Full: "grid-auto-rows", Short: "grar"},
	{Full: "grid-column", Short: "gc"},
	{Full: "grid-column-end", Short: "gce"},
	{Full: "grid-column-gap", Short: "gcg"},
	{Full: "grid-column-start", Short: "gcs"},
	{Full: "grid-gap", Short: "gg"},
	{Full: "grid-row", Short: "gr"},
	{Full: "grid-row-end", Short: "gre"},
	{Full: "grid-row-gap", Short: "grg"},
	{Full: "grid-row-start", Short: "grs"},
	{Full: "grid-template", Short: "gt"},
	{Full: "grid-template-areas", Short: "gta"},
	{Full: "grid-template-columns", Short: "gtc"},
	{Full: "grid-template-rows", Short: "gtr"},
	{Full: "groups", Short: "grps"},
	{Full: "hanging-punctuation", Short: "hp"},
	{Full: "height", Short: "h"},
	{Full: "hyphenate-character", Short: "hc"},
	{Full: "hyphenate-limit-chars", Short: "hlc"},
	{Full: "hyphens", Short: "hy"},
	{Full: "image-orientation", Short: "io"},
	{Full: "image-rendering", Short: "imgr"},
	{Full: "image-resolution", Short: "imgres"},
	{Full: "ime-mode", Short: "im"},
	{Full: "inherited", Short: "inh"},
	{Full: "initial", Short: "init"},
	{Full: "initial-letter", Short: "initl"},
	{Full: "initial-letter-align", Short: "initla"},
	{Full: "inline-size", Short: "insz"},
	{Full: "input-security", Short: "inps"},
	{Full: "inset", Short: "in"},
	{Full: "inset-area", Short: "ina"},
	{Full: "inset-block", Short: "inb"},
	{Full: "inset-block-end", Short: "inbe"},
	{Full: "inset-block-start", Short: "inbs"},
	{Full: "inset-inline", Short: "ini"},
	{Full: "inset-inline-end", Short: "inie"},
	{Full: "inset-inline-start", Short: "inis"},
	{Full: "isolation", Short: "iso"},
	{Full: "justify-content", Short: "jc"},
	{Full: "justify-items", Short: "ji"},
	{Full: "justify-self", Short: "js"},
	{Full: "justify-tracks", Short: "jt"},
	{Full: "left", Short: "l"},
	{Full: "letter-spacing", Short: "ls"},
	{Full: "line-break", Short: "lb"},
	{Full: "line-clamp", Short: "lc"},
	{Full: "line-height", Short: "lh"},
	{Full: "line-height-step", Short: "lhs"},
	{Full: "list-style", Short: "ls"},
	{Full: "list-style-image", Short: "lsi"},
	{Full: "list-style-position", Short: "lsp"},
	{Full: "list-style-type", Short: "lst"},
	{Full: "margin", Short: "m"},
	{Full: "margin-block", Short: "mb"},
	{Full: "margin-block-end", Short: "mbe"},
	{Full: "margin-block-start", Short: "mbs"},
	{Full: "margin-bottom", Short: "mb"},
	{Full: "margin-inline", Short: "mi"},
	{Full: "margin-inline-end", Short: "mie"},
	{Full: "margin-inline-start", Short: "mis"},
	{Full: "margin-left", Short: "ml"},
	{Full: "margin-right", Short: "mr"},
	{Full: "margin-top", Short: "mt"},
	{Full: "margin-trim", Short: "mtrim"},
	{Full: "mask", Short: "mask"},
	{Full: "mask-border", Short: "mask-b"},
	{Full: "mask-border-mode", Short: "mask-bm"},
	{Full: "mask-border-outset", Short: "mask-bo"},
	{Full: "mask-border-repeat", Short: "mask-br"},
	{Full: "mask-border-slice", Short: "mask-bs"},
	{Full: "mask-border-source", Short: "mask-bsou"},
	{Full: "mask-border-width", Short: "mask-bw"},
	{Full: "mask-clip", Short: "mask-c"},
	{Full: "mask-composite", Short: "mask-comp"},
	{Full: "mask-image", Short: "mask-i"},
	{Full: "mask-mode", Short: "mask-m"},
	{Full: "mask-origin", Short: "mask-o"},
	{Full: "mask-position", Short: "mask-pos"},
	{Full: "mask-repeat", Short: "mask-r"},
	{Full: "mask-size", Short: "mask-sz"},
	{Full: "mask-type", Short: "mask-t"},
	{Full: "masonry-auto-flow", Short: "mas-af"},
	{Full: "math-depth", Short: "math-d"},
	{Full: "math-shift", Short: "math-s"},
	{Full: "math-style", Short: "math-st"},
	{Full: "max-block-size", Short: "max-bs"},
	{Full: "max-height", Short: "max-h"},
	{Full: "max-inline-size", Short: "max-is"},
	{Full: "max-lines", Short: "max-l"},
	{Full: "max-width", Short: "max-w"},
	{Full: "mdn_url", Short: "mdn-u"},
	{Full: "media", Short: "med"},
	{Full: "min-block-size", Short: "min-bs"},
	{Full: "min-height", Short: "min-h"},
	{Full: "min-inline-size", Short: "min-is"},
	{Full: "min-width", Short: "min-w"},
	{Full: "mix-blend-mode", Short: "mbm"},
	{Full: "object-fit", Short: "obj-fit"},
	{Full: "object-position", Short: "obj-pos"},
	{Full: "offset", Short: "off"},
	{Full: "offset-anchor", Short: "ofa"},
	{Full: "offset-distance", Short: "ofd"},
	{Full: "offset-path", Short: "ofp"},
	{Full: "offset-position", Short: "ofpos"},
	{Full: "offset-rotate", Short: "ofr"},
	{Full: "opacity", Short: "op"},
	{Full: "order", Short: "ord"},
	{Full: "orphans", Short: "orphan"},
	{Full: "outline", Short: "out"},
	{Full: "outline-color", Short: "outc"},
	{Full: "outline-offset", Short: "outo"},
	{Full: "outline-style", Short: "outs"},
	{Full: "outline-width", Short: "outw"},
	{Full: "overflow", Short: "ov"},
	{Full: "overflow-anchor", Short: "ova"},
	{Full: "overflow-block", Short: "ovb"},
	{Full: "overflow-clip-box", Short: "ovcb"},
	{Full: "overflow-clip-margin", Short: "ovcm"},
	{Full: "overflow-inline", Short: "ovi"},
	{Full: "overflow-wrap", Short: "ovw"},
	{Full: "overflow-x", Short: "ovx"},
	{Full: "overflow-y", Short: "ovy"},
	{Full: "overlay", Short: "overlay"},
	{Full: "overscroll-behavior", Short: "ovsb"},
	{Full: "overscroll-behavior-block", Short: "ovsb-b"},
	{Full: "overscroll-behavior-inline", Short: "ovsb-i"},
	{Full: "overscroll-behavior-x", Short: "ovsbx"},
	{Full: "overscroll-behavior-y", Short: "ovsby"},
	{Full: "padding", Short: "p"},
	{Full: "padding-block", Short: "pb"},
	{Full: "padding-block-end", Short: "pbe"},
	{Full: "padding-block-start", Short: "pbs"},
	{Full: "padding-bottom", Short: "pb"},
	{Full: "padding-inline", Short: "pi"},
	{Full: "padding-inline-end", Short: "pie"},
	{Full: "padding-inline-start", Short: "pis"},
	{Full: "padding-left", Short: "pl"},
	{Full: "padding-right", Short: "pr"},
	{Full: "padding-top", Short: "pt"},
	{Full: "page", Short: "page"},
	{Full: "page-break-after", Short: "pba"},
	{Full: "page-break-before", Short: "pbb"},
	{Full: "page-break-inside", Short: "pbi"},
	{Full: "paint-order", Short: "po"},
	{Full: "percentages", Short: "pct"},
	{Full: "perspective", Short: "pers"},
	{Full: "perspective-origin", Short: "pers-or"},
	{Full: "place-content", Short: "pc"},
	{Full: "place-items", Short: "pi"},
	{Full: "place-self", Short: "ps"},
	{Full: "pointer-events", Short: "pe"},
	{Full: "position", Short: "pos"},
	{Full: "position-anchor", Short: "pos-anch"},
	{Full: "position-try", Short: "pos-try"},
	{Full: "position-try-options", Short: "pos-try-opt"},
	{Full: "position-try-order", Short: "pos-try-ord"},
	{Full: "position-visibility", Short: "pos-vis"},
	{Full: "print-color-adjust", Short: "pca"},
	{Full: "quotes", Short: "q"},
	{Full: "resize", Short: "rsz"},
	{Full: "right", Short: "r"},
	{Full: "rotate", Short: "rot"},
	{Full: "row-gap", Short: "rg"},
	{Full: "ruby-align", Short: "ra"},
	{Full: "ruby-merge", Short: "rm"},
	{Full: "ruby-position", Short: "rp"},
	{Full: "scale", Short: "sc"},
	{Full: "scroll-behavior", Short: "sb"},
	{Full: "scroll-margin", Short: "sm"},
	{Full: "scroll-margin-block", Short: "smb"},
	{Full: "scroll-margin-block-end", Short: "smbe"},
	{Full: "scroll-margin-block-start", Short: "smbs"},
	{Full: "scroll-margin-bottom", Short: "smbt"},
	{Full: "scroll-margin-inline", Short: "smi"},
	{Full: "scroll-margin-inline-end", Short: "smie"},
	{Full: "scroll-margin-inline-start", Short: "smis"},
	{Full: "scroll-margin-left", Short: "sml"},
	{Full: "scroll-margin-right", Short: "smr"},
	{Full: "scroll-margin-top", Short: "smt"},
	{Full: "scroll-padding", Short: "sp"},
	{Full: "scroll-padding-block", Short: "spb"},
	{Full: "scroll-padding-block-end", Short: "spbe"},
	{Full: "scroll-padding-block-start", Short: "spbs"},
	{Full: "scroll-padding-bottom", Short: "spbot"},
	{Full: "scroll-padding-inline", Short: "spi"},
	{Full: "scroll-padding-inline-end", Short: "spie"},
	{Full: "scroll-padding-inline-start", Short: "spis"},
	{Full: "scroll-padding-left", Short: "spl"},
	{Full: "scroll-padding-right", Short: "spr"},
	{Full: "scroll-padding-top", Short: "spt"},
	{Full: "scroll-snap-align", Short: "ssa"},
	{Full: "scroll-snap-coordinate", Short: "ssc"},
	{Full: "scroll-snap-destination", Short: "ssd"},
	{Full: "scroll-snap-points-x", Short: "sspx"},
	{Full: "scroll-snap-points-y", Short: "sspy"},
	{Full: "scroll-snap-stop", Short: "sss"},
	{Full: "scroll-snap-type", Short: "sst"},
	{Full: "scroll-snap-type-x", Short: "sstx"},
	{Full: "scroll-snap-type-y", Short: "ssty"},
	{Full: "scroll-timeline", Short: "stl"},
	{Full: "scroll-timeline-axis", Short: "sta"},
	{Full: "scroll-timeline-name", Short: "stn"},
	{Full: "scrollbar-color", Short: "sc"},
	{Full: "scrollbar-gutter", Short: "sg"},
	{Full: "scrollbar-width", Short: "sw"},
	{Full: "shape-image-threshold", Short: "sit"},
	{Full: "shape-margin", Short: "sm"},
	{Full: "shape-outside", Short: "so"},
	{Full: "stacking", Short: "stk"},
	{Full: "status", Short: "sts"},
	{Full: "syntax", Short: "syn"},
	{Full: "tab-size", Short: "ts"},
	{Full: "table-layout", Short: "tl"},
	{Full: "text-align", Short: "ta"},
	{Full: "text-align-last", Short: "tal"},
	{Full: "text-combine-upright", Short: "tcu"},
	{Full: "text-decoration", Short: "td"},
	{Full: "text-decoration-color", Short: "tdc"},
	{Full: "text-decoration-line", Short: "tdl"},
	{Full: "text-decoration-skip", Short: "tds"},
	{Full: "text-decoration-skip-ink", Short: "tdsi"},
	{Full: "text-decoration-style", Short: "tdst"},
	{Full: "text-decoration-thickness", Short: "tdth"},
	{Full: "text-emphasis", Short: "te"},
	{Full: "text-emphasis-color", Short: "tec"},
	{Full: "text-emphasis-position", Short: "tep"},
	{Full: "text-emphasis-style", Short: "tes"},
	{Full: "text-indent", Short: "ti"},
	{Full: "text-justify", Short: "tj"},
	{Full: "text-orientation", Short: "to"},
	{Full: "text-overflow", Short: "tov"},
	{Full: "text-rendering", Short: "tr"},
	{Full: "text-shadow", Short: "tsh"},
	{Full: "text-size-adjust", Short: "tsa"},
	{Full: "text-spacing-trim", Short: "tst"},
	{Full: "text-transform", Short: "tt"},
	{Full: "text-underline-offset", Short: "tuo"},
	{Full: "text-underline-position", Short: "tup"},
	{Full: "text-wrap", Short: "tw"},
	{Full: "text-wrap-mode", Short: "twm"},
	{Full: "text-wrap-style", Short: "tws"},
	{Full: "timeline-scope", Short: "tls"},
	{Full: "top", Short: "t"},
	{Full: "touch-action", Short: "ta"},
	{Full: "transform", Short: "tf"},
	{Full: "transform-box", Short: "tfb"},
	{Full: "transform-origin", Short: "tfo"},
	{Full: "transform-style", Short: "tfs"},
	{Full: "transition", Short: "tr"},
	{Full: "transition-behavior", Short: "trb"},
	{Full: "transition-delay", Short: "trd"},
	{Full: "transition-duration", Short: "trdu"},
	{Full: "transition-property", Short: "trp"},
	{Full: "transition-timing-function", Short: "trtf"},
	{Full: "translate", Short: "tl"},
	{Full: "unicode-bidi", Short: "ub"},
	{Full: "user-select", Short: "us"},
	{Full: "vertical-align", Short: "va"},
	{Full: "view-timeline", Short: "vt"},
	{Full: "view-timeline-axis", Short: "vta"},
	{Full: "view-timeline-inset", Short: "vti"},
	{Full: "view-timeline-name", Short: "vtn"},
	{Full: "view-transition-name", Short: "vtrn"},
	{Full: "visibility", Short: "vis"},
	{Full: "white-space", Short: "ws"},
	{Full: "white-space-collapse", Short: "wsc"},
	{Full: "widows", Short: "wdw"},
	{Full: "width", Short: "w"},
	{Full: "will-change", Short: "wc"},
	{Full: "word-break", Short: "wb"},
	{Full: "word-spacing", Short: "wsp"},
	{Full: "word-wrap", Short: "ww"},
	{Full: "writing-mode", Short: "wm"},
	{Full: "z-index", Short: "z"},
	{Full: "zoom", Short: "zm"},
	{Full: "g-anim", Short: "g-anim"},
}

// Dictionary is an immutable, total, bidirectional mapping between CSS
// property names and shorthand aliases. Safe for concurrent use without
// synchronization once built (spec.md §5).
type Dictionary struct {
	toFull  map[string]string // full name or alias -> canonical full name
	toShort map[string]string // full name -> shortest alias
	all     []string
}

// New builds the Dictionary from the built-in component table. Later
// entries win on colliding aliases, matching the reference table's
// insertion-order semantics.
func New() *Dictionary {
	d := &Dictionary{
		toFull:  make(map[string]string, len(componentTable)*2),
		toShort: make(map[string]string, len(componentTable)),
	}
	for _, e := range componentTable {
		d.toFull[e.Full] = e.Full
		d.toFull[e.Short] = e.Full
		d.toShort[e.Full] = e.Short
		d.all = append(d.all, e.Full)
		if e.Short != e.Full {
			d.all = append(d.all, e.Short)
		}
	}
	return d
}

// Canonicalize returns the canonical CSS property name for a full name or
// alias. Unknown names pass through unchanged: permissiveness here lets new
// or vendor-specific CSS properties flow through without engine updates
// (spec.md §7).
func (d *Dictionary) Canonicalize(name string) string {
	if full, ok := d.toFull[name]; ok {
		return full
	}
	return name
}

// Known reports whether name (full or alias) is a recognized component.
func (d *Dictionary) Known(name string) bool {
	_, ok := d.toFull[name]
	return ok
}

// Shortest returns the shorthand alias for a canonical (or aliased) full
// name. Unknown names pass through unchanged.
func (d *Dictionary) Shortest(name string) string {
	full := d.Canonicalize(name)
	if short, ok := d.toShort[full]; ok {
		return short
	}
	return name
}

// All returns every recognized full name and alias, for near-miss
// suggestion (spec.md §7 "did you mean bgc?").
func (d *Dictionary) All() []string {
	return d.all
}

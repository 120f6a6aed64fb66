// Package config implements the Grimoire configuration loader (spec.md
// §4.1): parsing the primary JSON config, validating it, and merging in
// external scroll/variable fragments.
package config

// KV is an ordered name/value pair, used wherever the data model calls for
// an "ordered list" rather than a map (spec.md §3, §5's determinism rule).
type KV struct {
	Name  string
	Value string
}

// Config is the immutable, fully-merged configuration snapshot the builder
// consumes (spec.md §3).
type Config struct {
	Schema    string
	Variables []KV
	Scrolls   []Scroll
	Projects  []Project
	Shared    []SharedUnit
	Critical  []CriticalUnit
	Lock      bool

	// Browserslist is the target-browser query list handed to the
	// post-processor (spec.md §3, §4.11). Populated from the config file's
	// "browserslist" field or synthesized to postprocess.DefaultBrowserslist
	// by the loader when absent; a GRIMOIRE_BROWSERSLIST_PATH environment
	// hint overrides either (spec.md §5).
	Browserslist []string

	// Workers is the opt-in project-level parallelism degree from the
	// GRIMOIRE_WORKERS environment hint (spec.md §5's scheduling model).
	// Zero or one means projects build sequentially.
	Workers int

	// Root is the directory config paths are resolved against in
	// filesystem mode; empty in in-memory mode.
	Root string
}

// Scroll is a named, parameterized macro (spec.md §3).
type Scroll struct {
	Name        string
	Spells      []string
	Extends     []string
	SpellByArgs map[string][]string
}

// Project describes one compilation unit (spec.md §3).
type Project struct {
	ProjectName          string
	InputPaths           []string
	OutputDirPath        string
	SingleOutputFileName string
}

// CSSCustomProperty binds a set of CSS custom properties to a DOM selector
// (spec.md §3).
type CSSCustomProperty struct {
	Element      string
	DataParam    string
	DataValue    string
	CSSVariables []KV
}

// SharedUnit is CSS produced once and reused across projects (spec.md §3).
type SharedUnit struct {
	OutputPath          string
	Styles              []string
	CSSCustomProperties []CSSCustomProperty
}

// CriticalUnit is CSS inlined into matching HTML files (spec.md §3).
type CriticalUnit struct {
	FileToInlinePaths   []string
	Styles              []string
	CSSCustomProperties []CSSCustomProperty
}

// VariableMap returns Variables as a lookup map for the variable resolver.
func (c *Config) VariableMap() map[string]string {
	m := make(map[string]string, len(c.Variables))
	for _, kv := range c.Variables {
		m[kv.Name] = kv.Value
	}
	return m
}

// ScrollMap returns Scrolls indexed by name.
func (c *Config) ScrollMap() map[string]*Scroll {
	m := make(map[string]*Scroll, len(c.Scrolls))
	for i := range c.Scrolls {
		m[c.Scrolls[i].Name] = &c.Scrolls[i]
	}
	return m
}

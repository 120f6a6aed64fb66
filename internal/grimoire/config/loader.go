package config

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
	"github.com/grimoire-css/grimoire/internal/grimoire/postprocess"
)

// EnvPrefix is the prefix koanf strips from environment variables it folds
// into the loaded config (e.g. GRIMOIRE_LOCK=true sets "lock").
const EnvPrefix = "GRIMOIRE_"

// CanonicalConfigPath is where `grimoire init` writes and `grimoire build`
// looks by default (spec.md §6).
const CanonicalConfigPath = "grimoire/config/grimoire.config.json"

// DefaultConfigJSON is the starter document `grimoire init` writes,
// mirroring the teacher CLI's own `defaultConfig` template in shape
// (one representative project, no scrolls/shared/critical yet) but in
// spec.md §6's JSON schema instead of the teacher's YAML.
const DefaultConfigJSON = `{
  "$schema": "https://grimoirecss.com/schema.json",
  "variables": {},
  "scrolls": [],
  "projects": [
    {
      "projectName": "default",
      "inputPaths": ["src/**/*.html"],
      "outputDirPath": "dist/css"
    }
  ],
  "shared": [],
  "critical": [],
  "lock": false
}
`

var projectNameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Load reads the primary config file at path, discovers and merges any
// grimoire.*.scrolls.json / grimoire.*.variables.json fragments that live
// alongside it, layers in GRIMOIRE_-prefixed environment overrides, and
// returns a validated, normalized Config (spec.md §4.1).
//
// This mirrors the teacher CLI's koanf-based loadConfigFromPath, swapping
// its YAML parser for JSON and its CSSGEN_ env prefix for GRIMOIRE_.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return nil, diag.New(diag.KindConfig, "failed to read config %s: %v", path, err).WithSource(path)
	}

	var w wireConfig
	if err := k.UnmarshalWithConf("", &w, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, diag.New(diag.KindConfig, "failed to parse config %s: %v", path, err)
	}

	root := filepath.Dir(path)
	fragScrolls, fragVars, err := loadFragments(root)
	if err != nil {
		return nil, err
	}

	cfg := normalize(&w, root)

	// Fragments extend the primary config; the primary config wins on name
	// collisions for scrolls and key collisions for variables (spec.md
	// §4.1's merge policy).
	seenScroll := make(map[string]bool, len(cfg.Scrolls))
	for _, s := range cfg.Scrolls {
		seenScroll[s.Name] = true
	}
	for _, s := range fragScrolls {
		if seenScroll[s.Name] {
			continue
		}
		seenScroll[s.Name] = true
		cfg.Scrolls = append(cfg.Scrolls, s)
	}

	seenVar := make(map[string]bool, len(cfg.Variables))
	for _, kv := range cfg.Variables {
		seenVar[kv.Name] = true
	}
	for _, kv := range fragVars {
		if seenVar[kv.Name] {
			continue
		}
		seenVar[kv.Name] = true
		cfg.Variables = append(cfg.Variables, kv)
	}

	if err := applyEnvOverrides(cfg, EnvPrefix); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFragments globs the config's directory for external scroll and
// variable fragments and loads them in lexicographic filename order, so
// merge results are deterministic (spec.md §5).
func loadFragments(root string) (scrolls []Scroll, vars []KV, err error) {
	scrollPaths, err := doublestar.FilepathGlob(filepath.Join(root, "grimoire.*.scrolls.json"))
	if err != nil {
		return nil, nil, diag.New(diag.KindConfig, "failed to glob scroll fragments: %v", err)
	}
	varPaths, err := doublestar.FilepathGlob(filepath.Join(root, "grimoire.*.variables.json"))
	if err != nil {
		return nil, nil, diag.New(diag.KindConfig, "failed to glob variable fragments: %v", err)
	}
	sort.Strings(scrollPaths)
	sort.Strings(varPaths)

	for _, p := range scrollPaths {
		frag, ferr := loadFragment(p)
		if ferr != nil {
			return nil, nil, ferr
		}
		for _, s := range frag.Scrolls {
			scrolls = append(scrolls, normalizeScroll(s))
		}
	}
	for _, p := range varPaths {
		frag, ferr := loadFragment(p)
		if ferr != nil {
			return nil, nil, ferr
		}
		vars = append(vars, sortedKVs(frag.Variables)...)
	}
	return scrolls, vars, nil
}

func loadFragment(path string) (*wireFragment, error) {
	fk := koanf.New(".")
	if err := fk.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return nil, diag.New(diag.KindConfig, "failed to read fragment %s: %v", path, err).WithSource(path)
	}
	var frag wireFragment
	if err := fk.UnmarshalWithConf("", &frag, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, diag.New(diag.KindConfig, "failed to parse fragment %s: %v", path, err)
	}
	return &frag, nil
}

// applyEnvOverrides folds GRIMOIRE_-prefixed environment variables over the
// already-parsed config, the same way the teacher CLI's loadConfig folds
// env.Provider over koanf. GRIMOIRE_LOCK=true/1 sets cfg.Lock; koanf's typed
// Bool getter (backed by spf13/cast) coerces either form. GRIMOIRE_WORKERS
// sets cfg.Workers, the project-level parallelism hint spec.md §5's
// scheduling model reads once at startup. GRIMOIRE_BROWSERSLIST_PATH points
// at a .browserslistrc-style file (one query per line, "#" comments
// skipped) whose contents override cfg.Browserslist, the path-override hint
// spec.md §5 names alongside the worker count.
func applyEnvOverrides(cfg *Config, prefix string) error {
	k := koanf.New(".")
	if err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, prefix))
	}), nil); err != nil {
		return diag.New(diag.KindConfig, "failed to load %s* environment overrides: %v", prefix, err)
	}
	if k.Exists("lock") {
		cfg.Lock = k.Bool("lock")
	}
	if k.Exists("workers") {
		cfg.Workers = k.Int("workers")
	}
	if k.Exists("browserslist_path") {
		bl, err := loadBrowserslistFile(k.String("browserslist_path"))
		if err != nil {
			return err
		}
		if len(bl) > 0 {
			cfg.Browserslist = bl
		}
	}
	return nil
}

// loadBrowserslistFile parses a .browserslistrc-style file: one query per
// non-empty, non-"#"-comment line, matching the format the post-processor
// contract's ".browserslistrc" source (spec.md §4.11) uses upstream.
func loadBrowserslistFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.New(diag.KindConfig, "failed to read browserslist file %s: %v", path, err).WithSource(path)
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

func normalize(w *wireConfig, root string) *Config {
	cfg := &Config{
		Schema:    w.Schema,
		Variables: sortedKVs(w.Variables),
		Root:      root,
	}
	if w.Lock != nil {
		cfg.Lock = *w.Lock
	}
	// The loader synthesizes a default browserslist hint when none is
	// supplied (spec.md §4.1).
	if len(w.Browserslist) > 0 {
		cfg.Browserslist = w.Browserslist
	} else {
		cfg.Browserslist = postprocess.DefaultBrowserslist
	}
	for _, s := range w.Scrolls {
		cfg.Scrolls = append(cfg.Scrolls, normalizeScroll(s))
	}
	for _, p := range w.Projects {
		cfg.Projects = append(cfg.Projects, Project{
			ProjectName:          p.ProjectName,
			InputPaths:           p.InputPaths,
			OutputDirPath:        p.OutputDirPath,
			SingleOutputFileName: p.SingleOutputFileName,
		})
	}
	for _, s := range w.Shared {
		cfg.Shared = append(cfg.Shared, SharedUnit{
			OutputPath:          s.OutputPath,
			Styles:              s.Styles,
			CSSCustomProperties: normalizeProps(s.CSSCustomProperties),
		})
	}
	for _, c := range w.Critical {
		cfg.Critical = append(cfg.Critical, CriticalUnit{
			FileToInlinePaths:   c.FileToInlinePaths,
			Styles:              c.Styles,
			CSSCustomProperties: normalizeProps(c.CSSCustomProperties),
		})
	}
	return cfg
}

func normalizeScroll(s wireScroll) Scroll {
	return Scroll{
		Name:        s.Name,
		Spells:      s.Spells,
		Extends:     s.Extends,
		SpellByArgs: s.SpellByArgs,
	}
}

func normalizeProps(in []wireCSSCustomProperty) []CSSCustomProperty {
	out := make([]CSSCustomProperty, 0, len(in))
	for _, p := range in {
		out = append(out, CSSCustomProperty{
			Element:      p.Element,
			DataParam:    p.DataParam,
			DataValue:    p.DataValue,
			CSSVariables: sortedKVs(p.CSSVariables),
		})
	}
	return out
}

// sortedKVs turns a JSON object into a deterministically-ordered KV list.
// JSON object key order isn't guaranteed to survive decoding, so this
// re-sorts lexicographically rather than relying on incidental map
// iteration order (spec.md §5).
func sortedKVs(m map[string]string) []KV {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make([]KV, 0, len(names))
	for _, n := range names {
		out = append(out, KV{Name: n, Value: m[n]})
	}
	return out
}

// Validate checks the JSON schema-level invariants spec.md §4.1 states are
// ConfigError conditions rather than silently-tolerated defaults.
func Validate(cfg *Config) error {
	if len(cfg.Projects) == 0 {
		return diag.New(diag.KindConfig, "config must declare at least one project")
	}
	seen := make(map[string]bool, len(cfg.Projects))
	for _, p := range cfg.Projects {
		if p.ProjectName == "" {
			return diag.New(diag.KindConfig, "project name must not be empty")
		}
		if !projectNameRe.MatchString(p.ProjectName) {
			return diag.New(diag.KindConfig, "project name %q must match [A-Za-z0-9_-]+", p.ProjectName)
		}
		if seen[p.ProjectName] {
			return diag.New(diag.KindConfig, "duplicate project name %q", p.ProjectName)
		}
		seen[p.ProjectName] = true
		if len(p.InputPaths) == 0 {
			return diag.New(diag.KindConfig, "project %q must declare at least one input path", p.ProjectName)
		}
		if p.OutputDirPath == "" {
			return diag.New(diag.KindConfig, "project %q must declare an output directory", p.ProjectName)
		}
	}
	return nil
}

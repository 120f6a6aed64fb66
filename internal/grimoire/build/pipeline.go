package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/grimoire-css/grimoire/internal/grimoire/animate"
	"github.com/grimoire-css/grimoire/internal/grimoire/components"
	"github.com/grimoire-css/grimoire/internal/grimoire/config"
	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
	"github.com/grimoire-css/grimoire/internal/grimoire/extract"
	"github.com/grimoire-css/grimoire/internal/grimoire/postprocess"
	"github.com/grimoire-css/grimoire/internal/grimoire/rawcss"
	"github.com/grimoire-css/grimoire/internal/grimoire/tracker"
)

// State is the builder's per-run lifecycle (spec.md §4.9's state machine).
type State int

const (
	Idle State = iota
	Scanning
	Resolving
	Emitting
	Tracked
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Scanning:
		return "Scanning"
	case Resolving:
		return "Resolving"
	case Emitting:
		return "Emitting"
	case Tracked:
		return "Tracked"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Builder drives the full compile pipeline over one config: enumerate,
// extract, resolve, group, emit, track, postprocess (spec.md §4.9).
type Builder struct {
	Config     *config.Config
	Dict       *components.Dictionary
	Catalog    *animate.Catalog
	Processor  postprocess.Processor
	Browserlist []string

	state State
}

// New builds a Builder for cfg, wiring the animation catalog to cfg.Root
// and defaulting to the no-op post-processor. cfg.Browserslist (set by the
// config loader, spec.md §4.1) wins over the package default; callers that
// build a Config by hand without going through config.Load still get a
// sane fallback.
func New(cfg *config.Config) *Builder {
	browserslist := cfg.Browserslist
	if len(browserslist) == 0 {
		browserslist = postprocess.DefaultBrowserslist
	}
	return &Builder{
		Config:      cfg,
		Dict:        components.New(),
		Catalog:     animate.New(cfg.Root),
		Processor:   postprocess.Identity{},
		Browserlist: browserslist,
		state:       Idle,
	}
}

// State reports the builder's current lifecycle state.
func (b *Builder) State() State { return b.state }

// ProjectResult is one project's compiled output (spec.md §4.9's "one CSS
// file per input" or single-output mode).
type ProjectResult struct {
	ProjectName string
	// Files maps an absolute output path to its final CSS text.
	Files map[string]string
}

// projectOutcome is one project's build-and-write result, gathered by
// runProject so Build can fan work out across goroutines when
// cfg.Workers > 1 without racing on shared accumulators.
type projectOutcome struct {
	result  ProjectResult
	written []string
}

// Build compiles every project, shared unit, and critical unit in the
// config. Per spec.md §4.9/§7, user-input and resolution errors are
// "non-retryable and fatal for the affected artifact but do not abort
// other projects' builds" — so a failing project is recorded as a
// diagnostic and skipped rather than aborting the run; every diagnostic
// collected across every project, shared unit, and critical unit surfaces
// together as one *diag.BatchError once everything has been attempted.
//
// Projects build sequentially unless cfg.Workers > 1 opts into the
// project-level parallelism spec.md §5's scheduling model describes: the
// animation catalog's lazy load is mutex-guarded, the component
// dictionary and config snapshot are immutable, so concurrent
// buildProject calls are safe. The file tracker still runs exactly once,
// over every project's combined output, after all projects finish, so
// concurrent projects never race on the shared lock file.
func (b *Builder) Build() ([]ProjectResult, error) {
	b.state = Scanning

	diags := &diag.Accumulator{}
	var diagsMu sync.Mutex
	recordErr := func(err error, context string) {
		if err == nil {
			return
		}
		diagsMu.Lock()
		defer diagsMu.Unlock()
		addDiagnostics(diags, err, context)
	}

	sharedItems := b.resolveShared(func(err error) { recordErr(err, "shared") })
	criticalItems := b.resolveCritical(func(err error) { recordErr(err, "critical") })
	covered := coveredTuples(sharedItems, criticalItems)

	b.state = Resolving
	outcomes := make([]*projectOutcome, len(b.Config.Projects))
	workers := b.Config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(b.Config.Projects) {
		workers = len(b.Config.Projects)
	}

	if workers <= 1 {
		for i, proj := range b.Config.Projects {
			outcomes[i] = b.runProject(proj, covered, recordErr)
		}
	} else {
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		for i, proj := range b.Config.Projects {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, proj config.Project) {
				defer wg.Done()
				defer func() { <-sem }()
				outcomes[i] = b.runProject(proj, covered, recordErr)
			}(i, proj)
		}
		wg.Wait()
	}

	b.state = Emitting
	var results []ProjectResult
	var allWritten []string
	for _, oc := range outcomes {
		if oc == nil {
			continue
		}
		results = append(results, oc.result)
		allWritten = append(allWritten, oc.written...)
	}

	if b.Config.Lock {
		if err := tracker.Track(b.Config.Root, allWritten); err != nil {
			recordErr(err, "tracker")
		}
	}

	for _, sr := range sharedItems {
		if err := writeSharedOutput(b.Config.Root, sr); err != nil {
			recordErr(err, fmt.Sprintf("shared %q", sr.unit.OutputPath))
		}
	}
	for _, cr := range criticalItems {
		if err := writeCriticalOutput(b.Config.Root, cr); err != nil {
			recordErr(err, "critical")
		}
	}

	if err := diags.Err(); err != nil {
		b.state = Failed
		return results, err
	}

	b.state = Tracked
	return results, nil
}

// runProject builds and writes one project's output, reporting any error
// through record rather than returning it, so the caller can keep going.
func (b *Builder) runProject(proj config.Project, covered map[Tuple]bool, record func(err error, context string)) *projectOutcome {
	res, err := b.buildProject(proj, covered)
	if err != nil {
		record(err, fmt.Sprintf("project %q", proj.ProjectName))
		return nil
	}
	written, err := writeProjectFiles(b.Config.Root, res)
	if err != nil {
		record(err, fmt.Sprintf("project %q", proj.ProjectName))
		return nil
	}
	return &projectOutcome{result: res, written: written}
}

// addDiagnostics folds err into acc, unwrapping a *diag.BatchError into its
// constituent diagnostics and prefixing context onto each message, so a
// project/shared/critical failure keeps its original span/help/source
// while still identifying which artifact it came from.
func addDiagnostics(acc *diag.Accumulator, err error, context string) {
	var batch *diag.BatchError
	if errors.As(err, &batch) {
		for _, d := range batch.Diagnostics {
			d.Message = fmt.Sprintf("%s: %s", context, d.Message)
			acc.Add(d)
		}
		return
	}
	var d *diag.Diagnostic
	if errors.As(err, &d) {
		d.Message = fmt.Sprintf("%s: %s", context, d.Message)
		acc.Add(d)
		return
	}
	acc.Add(diag.New(diag.KindIO, "%s: %v", context, err))
}

// coveredTuples unions every shared and critical unit's resolved tuples
// into the set subtracted from per-project output (spec.md §4.9: "declar-
// ations already present in shared are still re-emitted in per-project
// outputs only if they differ by context, otherwise omitted"; critical's
// analogous rule is the same subtraction against inlined declarations).
func coveredTuples(sharedItems []sharedResolved, criticalItems []criticalResolved) map[Tuple]bool {
	covered := map[Tuple]bool{}
	for _, sr := range sharedItems {
		for _, t := range sr.tuples {
			covered[t] = true
		}
	}
	for _, cr := range criticalItems {
		for _, t := range cr.tuples {
			covered[t] = true
		}
	}
	return covered
}

// filterCovered drops any tuple already emitted by a shared or critical
// unit, so per-project output never repeats a declaration already inlined
// into HTML or written to a shared stylesheet (spec.md §4.9, §8's
// "Critical CSS dedup" boundary case).
func filterCovered(tuples []Tuple, covered map[Tuple]bool) []Tuple {
	if len(covered) == 0 {
		return tuples
	}
	out := make([]Tuple, 0, len(tuples))
	for _, t := range tuples {
		if covered[t] {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (b *Builder) buildProject(proj config.Project, covered map[Tuple]bool) (ProjectResult, error) {
	inputs, err := enumerateInputs(b.Config.Root, proj.InputPaths)
	if err != nil {
		return ProjectResult{}, err
	}

	resolver := NewResolver(b.Config, b.Dict, b.Catalog)
	diags := &diag.Accumulator{}

	type fileTuples struct {
		path    string
		tuples  []Tuple
		extra   []string
	}

	singleOutput := proj.SingleOutputFileName != ""
	var singleTracker *animate.Tracker
	if singleOutput {
		singleTracker = animate.NewTracker()
	}

	seenSingle := map[string]bool{}
	var perFile []fileTuples

	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			return ProjectResult{}, diag.New(diag.KindIO, "failed to read %s: %v", path, err)
		}
		tokens := extract.Extract(path, string(data))

		fileTracker := singleTracker
		if fileTracker == nil {
			fileTracker = animate.NewTracker()
		}

		var tuples []Tuple
		var extra []string
		for _, tok := range tokens {
			text := extract.NormalizeClassToken(tok.Text)
			if singleOutput {
				if seenSingle[text] {
					continue
				}
				seenSingle[text] = true
			}
			ts, blocks, err := resolver.ResolveToken(text, fileTracker)
			if err != nil {
				diags.Add(toDiagnostic(err, tok.Span))
				continue
			}
			tuples = append(tuples, ts...)
			extra = append(extra, blocks...)
		}
		perFile = append(perFile, fileTuples{path: path, tuples: tuples, extra: extra})
	}

	if err := diags.Err(); err != nil {
		return ProjectResult{}, err
	}

	files := make(map[string]string)

	if singleOutput {
		var allTuples []Tuple
		var allExtra []string
		for _, ft := range perFile {
			allTuples = append(allTuples, ft.tuples...)
			allExtra = append(allExtra, ft.extra...)
		}
		css, err := b.render(filterCovered(allTuples, covered), allExtra)
		if err != nil {
			return ProjectResult{}, err
		}
		outPath := filepath.Join(b.Config.Root, proj.OutputDirPath, proj.SingleOutputFileName)
		files[outPath] = css
	} else {
		for _, ft := range perFile {
			css, err := b.render(filterCovered(ft.tuples, covered), ft.extra)
			if err != nil {
				return ProjectResult{}, err
			}
			outPath := outputPathFor(b.Config.Root, proj.OutputDirPath, ft.path)
			files[outPath] = css
		}
	}

	return ProjectResult{ProjectName: proj.ProjectName, Files: files}, nil
}

// render groups tuples into rules and runs the configured post-processor
// over the assembled text (spec.md §4.9 steps 4-5, §4.11).
func (b *Builder) render(tuples []Tuple, extraCSS []string) (string, error) {
	rules := Group(tuples)
	raw := RenderCSS("", extraCSS, rules)
	out, err := b.Processor.Process(raw, b.Browserlist)
	if err != nil {
		return "", diag.New(diag.KindPostProcessor, "%v", err)
	}
	return out, nil
}

// writeProjectFiles writes one project's rendered files to disk, returning
// their paths relative to the config root for the tracker (spec.md §4.9).
// It no longer calls tracker.Track itself: Build calls it once with every
// project's combined output, so one project's lock update never treats a
// sibling project's freshly-written files as stale (a bug the previous
// per-project Track call had).
func writeProjectFiles(root string, res ProjectResult) ([]string, error) {
	var written []string
	for path, css := range res.Files {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, diag.New(diag.KindIO, "failed to create output dir for %s: %v", path, err)
		}
		if err := writeAtomic(path, []byte(css)); err != nil {
			return nil, diag.New(diag.KindIO, "failed to write %s: %v", path, err)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		written = append(written, rel)
	}
	return written, nil
}

// sharedResolved is one shared unit's resolved tuples and raw CSS blocks,
// held between resolution and write so Build can compute the builder-wide
// covered-tuple set before any output is written to disk.
type sharedResolved struct {
	unit   config.SharedUnit
	tuples []Tuple
	extra  []string
	custom string
}

// criticalResolved is criticalUnit's analogue of sharedResolved.
type criticalResolved struct {
	unit   config.CriticalUnit
	tuples []Tuple
	extra  []string
	custom string
}

// resolveShared resolves every shared unit's style list, reporting failures
// through report and skipping the unit rather than aborting the run, so one
// bad shared unit doesn't prevent the rest of the build (spec.md §4.9/§7).
func (b *Builder) resolveShared(report func(error)) []sharedResolved {
	resolver := NewResolver(b.Config, b.Dict, b.Catalog)
	var out []sharedResolved
	for _, unit := range b.Config.Shared {
		if unit.OutputPath == "" {
			continue
		}
		tuples, extra, err := b.resolveExtraTuples(resolver, unit.Styles)
		if err != nil {
			report(fmt.Errorf("shared %q: %w", unit.OutputPath, err))
			continue
		}
		out = append(out, sharedResolved{unit: unit, tuples: tuples, extra: extra, custom: formatCustomProperties(unit.CSSCustomProperties)})
	}
	return out
}

// resolveCritical is resolveShared's analogue for critical units.
func (b *Builder) resolveCritical(report func(error)) []criticalResolved {
	resolver := NewResolver(b.Config, b.Dict, b.Catalog)
	var out []criticalResolved
	for _, unit := range b.Config.Critical {
		if len(unit.FileToInlinePaths) == 0 {
			continue
		}
		tuples, extra, err := b.resolveExtraTuples(resolver, unit.Styles)
		if err != nil {
			report(fmt.Errorf("critical unit: %w", err))
			continue
		}
		out = append(out, criticalResolved{unit: unit, tuples: tuples, extra: extra, custom: formatCustomProperties(unit.CSSCustomProperties)})
	}
	return out
}

// writeSharedOutput renders and writes one already-resolved shared unit
// (spec.md §3's SharedUnit, grounded on original_source's
// compile_shared_css).
func writeSharedOutput(root string, sr sharedResolved) error {
	css := renderExtra(sr.custom, sr.extra, sr.tuples)
	outPath := filepath.Join(root, sr.unit.OutputPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return diag.New(diag.KindIO, "failed to create dir for shared unit %s: %v", sr.unit.OutputPath, err)
	}
	if err := writeAtomic(outPath, []byte(css)); err != nil {
		return diag.New(diag.KindIO, "failed to write shared unit %s: %v", sr.unit.OutputPath, err)
	}
	return nil
}

// writeCriticalOutput renders one already-resolved critical unit and
// inlines it into every one of its target HTML files (spec.md §3's
// CriticalUnit, grounded on original_source's
// compile_critical_css/embed_critical_css).
func writeCriticalOutput(root string, cr criticalResolved) error {
	css := renderExtra(cr.custom, cr.extra, cr.tuples)
	for _, htmlPath := range cr.unit.FileToInlinePaths {
		fullPath := filepath.Join(root, htmlPath)
		if err := embedCriticalCSS(fullPath, css); err != nil {
			return err
		}
	}
	return nil
}

// resolveExtraTuples resolves a shared/critical unit's style list — each
// entry is either a filesystem path to a raw .css blob or a spell/scroll
// token — into tuples and raw CSS blocks (spec.md §3, grounded on
// original_source's compose_extra_css).
func (b *Builder) resolveExtraTuples(resolver *Resolver, styles []string) ([]Tuple, []string, error) {
	tr := animate.NewTracker()
	var tuples []Tuple
	var extra []string
	seen := map[string]bool{}

	for _, item := range styles {
		if seen[item] {
			continue
		}
		seen[item] = true

		fullPath := filepath.Join(b.Config.Root, item)
		if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
			blob, err := rawcss.ReadBlob(fullPath)
			if err != nil {
				return nil, nil, err
			}
			extra = append(extra, blob)
			continue
		}

		ts, blocks, err := resolver.ResolveToken(item, tr)
		if err != nil {
			return nil, nil, err
		}
		tuples = append(tuples, ts...)
		extra = append(extra, blocks...)
	}
	return tuples, extra, nil
}

// renderExtra assembles a shared/critical unit's custom-property preamble,
// raw CSS blocks, and grouped tuples into final CSS text (spec.md §3's
// compose_extra_css tail).
func renderExtra(customCSS string, extra []string, tuples []Tuple) string {
	rules := Group(tuples)
	return RenderCSS(customCSS, extra, rules)
}

// formatCustomProperties renders every CSSCustomProperty binding in props
// (spec.md §3, grounded on original_source's
// compose_custom_css_properties).
func formatCustomProperties(props []config.CSSCustomProperty) string {
	var b strings.Builder
	for _, p := range props {
		b.WriteString(formatCustomProperty(p))
		b.WriteByte('\n')
	}
	return b.String()
}

// formatCustomProperty renders one CSSCustomProperty binding (spec.md §3,
// grounded on original_source's format_css_custom_properties_item).
func formatCustomProperty(p config.CSSCustomProperty) string {
	var vars strings.Builder
	for i, kv := range p.CSSVariables {
		if i > 0 {
			vars.WriteByte(' ')
		}
		vars.WriteString("--")
		vars.WriteString(kv.Name)
		vars.WriteString(": ")
		vars.WriteString(kv.Value)
		vars.WriteByte(';')
	}
	return fmt.Sprintf("%s[data-%s='%s'] {%s}", p.Element, p.DataParam, p.DataValue, vars.String())
}

// embedCriticalCSS inlines css into an HTML file's <head>, replacing any
// previously-embedded critical CSS block (grounded on original_source's
// embed_critical_css).
func embedCriticalCSS(path, css string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return diag.New(diag.KindIO, "failed to read HTML file %s: %v", path, err)
	}
	content := string(data)

	start := strings.Index(content, "<style data-grimoire-critical-css>")
	if start >= 0 {
		end := strings.Index(content[start:], "</style>")
		if end >= 0 {
			content = content[:start] + content[start+end+len("</style>"):]
		}
	}

	block := "<style data-grimoire-critical-css>" + css + "</style>"
	if idx := strings.Index(content, "</head>"); idx >= 0 {
		content = content[:idx] + block + content[idx:]
	} else {
		content += block
	}

	return writeAtomic(path, []byte(content))
}

// enumerateInputs expands a project's glob patterns against root, sorted
// and deduplicated (spec.md §4.9 step 1).
func enumerateInputs(root string, patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, pat := range patterns {
		full := pat
		if !filepath.IsAbs(pat) {
			full = filepath.Join(root, pat)
		}
		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, diag.New(diag.KindIO, "invalid input glob %q: %v", pat, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return extract.FilterIgnored(root, out), nil
}

// outputPathFor mirrors an input file's base name into the project's
// output directory with a .css extension (spec.md §4.9's "one CSS file
// per input" mode).
func outputPathFor(root, outputDir, inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(root, outputDir, base+".css")
}

// writeAtomic writes data to path via a temp-file-then-rename, avoiding a
// half-written artifact on failure (tracker.writeLockAtomic's approach,
// applied here to CSS output files too).
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// toDiagnostic wraps a resolution/evaluation error with the token's byte
// span so batched diagnostics point at their source (spec.md §4.9's
// per-project diagnostic batching).
func toDiagnostic(err error, span diag.Span) *diag.Diagnostic {
	if d, ok := err.(*diag.Diagnostic); ok {
		d.Labels = append(d.Labels, diag.Label{Span: span, Message: "in this token"})
		return d
	}
	return diag.New(diag.KindResolution, "%v", err).WithLabel(span, "in this token")
}

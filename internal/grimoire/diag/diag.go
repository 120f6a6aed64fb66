package diag

import "fmt"

// Kind is the coarse taxonomy of fatal conditions the core can raise.
type Kind string

const (
	KindConfig        Kind = "ConfigError"
	KindParse         Kind = "ParseError"
	KindResolution    Kind = "ResolutionError"
	KindEvaluation    Kind = "EvaluationError"
	KindIO            Kind = "IOError"
	KindPostProcessor Kind = "PostProcessorError"
)

// Span locates a byte range inside a named source. File may be a real path,
// a synthetic name (e.g. "<config>"), or empty when no source is available.
type Span struct {
	File  string
	Start int
	Len   int
}

// Label is a span with an explanatory caption, following the reference
// project's Issue/IssuePos split between location and message.
type Label struct {
	Span    Span
	Message string
}

// Diagnostic is a single structured fatal condition.
type Diagnostic struct {
	Kind    Kind
	Message string
	Labels  []Label
	Help    string
	// Source is the full text of the primary label's file, retained so a
	// renderer can slice out a snippet without re-reading the file.
	Source string
}

func (d *Diagnostic) Error() string {
	if len(d.Labels) == 0 {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	l := d.Labels[0]
	if l.Span.File == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Message, l.Span.File)
}

// New builds a Diagnostic with no labels attached.
func New(kind Kind, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithLabel attaches a labeled span and returns the same diagnostic for
// chaining at the call site.
func (d *Diagnostic) WithLabel(span Span, message string) *Diagnostic {
	d.Labels = append(d.Labels, Label{Span: span, Message: message})
	return d
}

// WithHelp attaches a suggested-fix string.
func (d *Diagnostic) WithHelp(format string, args ...any) *Diagnostic {
	d.Help = fmt.Sprintf(format, args...)
	return d
}

// WithSource attaches the originating file's full text for snippet
// rendering.
func (d *Diagnostic) WithSource(src string) *Diagnostic {
	d.Source = src
	return d
}

// Accumulator collects diagnostics through the pipeline instead of relying
// on a global mutable buffer (spec.md §9's "no implicit globals" rule).
type Accumulator struct {
	items []*Diagnostic
}

func (a *Accumulator) Add(d *Diagnostic) {
	a.items = append(a.items, d)
}

func (a *Accumulator) Empty() bool { return len(a.items) == 0 }

func (a *Accumulator) Items() []*Diagnostic { return a.items }

// Err returns a combined error when the accumulator is non-empty, nil
// otherwise, so callers can use the ordinary `if err != nil` idiom while
// still exposing the full structured list via Items.
func (a *Accumulator) Err() error {
	if a.Empty() {
		return nil
	}
	return &BatchError{Diagnostics: a.items}
}

// BatchError wraps every diagnostic collected for one resolve phase so a
// caller sees all fixable issues in a single pass (spec.md §7).
type BatchError struct {
	Diagnostics []*Diagnostic
}

func (b *BatchError) Error() string {
	if len(b.Diagnostics) == 1 {
		return b.Diagnostics[0].Error()
	}
	return fmt.Sprintf("%d diagnostics (first: %s)", len(b.Diagnostics), b.Diagnostics[0].Error())
}

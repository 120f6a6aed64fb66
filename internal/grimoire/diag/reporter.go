package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Reporter renders a batch of diagnostics to a writer, with snippet+caret
// output when source text is available.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter builds a Reporter. useColors, when nil, is auto-detected from
// the environment and the writer's TTY-ness.
func NewReporter(w io.Writer, useColors *bool) *Reporter {
	uc := false
	if useColors != nil {
		uc = *useColors
	} else {
		uc = shouldUseColors(w)
	}
	return &Reporter{w: w, useColors: uc}
}

func shouldUseColors(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if f, ok := w.(*os.File); ok {
		if fi, err := f.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) != 0 {
			return true
		}
	}
	return false
}

// Print renders every diagnostic in order.
func (r *Reporter) Print(diags []*Diagnostic) {
	for _, d := range diags {
		r.printOne(d)
	}
}

func (r *Reporter) printOne(d *Diagnostic) {
	header := fmt.Sprintf("%s: %s", d.Kind, d.Message)
	fmt.Fprintln(r.w, RenderStyle(StyleRed, header, r.useColors))

	for _, l := range d.Labels {
		if l.Span.File != "" {
			line, col := lineCol(d.Source, l.Span.Start)
			loc := fmt.Sprintf("  --> %s:%d:%d", l.Span.File, line, col)
			fmt.Fprintln(r.w, RenderStyle(StyleCyan, loc, r.useColors))
			if d.Source != "" {
				srcLine := sourceLine(d.Source, line)
				fmt.Fprintf(r.w, "   | %s\n", srcLine)
				fmt.Fprintf(r.w, "   | %s\n", RenderStyle(StyleYellow, buildCaretIndicator(srcLine, col, max(l.Span.Len, 1)), r.useColors))
			}
		}
		if l.Message != "" {
			fmt.Fprintf(r.w, "   %s\n", l.Message)
		}
	}

	if d.Help != "" {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "help: "+d.Help, r.useColors))
	}
	fmt.Fprintln(r.w)
}

// buildCaretIndicator draws a run of "^" aligned with the labeled span,
// preserving tabs vs. spaces in the prefix so alignment survives mixed
// whitespace source files.
func buildCaretIndicator(sourceLine string, column, length int) string {
	if column <= 0 {
		return "^"
	}
	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}
	prefix := sourceLine[:prefixLen]

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + strings.Repeat("^", length)
}

// lineCol converts a byte offset into 1-based line/column within src.
func lineCol(src string, offset int) (line, col int) {
	line = 1
	lastNL := -1
	if offset > len(src) {
		offset = len(src)
	}
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lastNL = i
		}
	}
	col = offset - lastNL
	return
}

func sourceLine(src string, lineNo int) string {
	lines := strings.Split(src, "\n")
	if lineNo < 1 || lineNo > len(lines) {
		return ""
	}
	return lines[lineNo-1]
}

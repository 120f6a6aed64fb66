package functions

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/grimoire-css/grimoire/internal/grimoire/diag"
)

// Default viewport bounds for mrs() when omitted. spec.md §4.6 states these
// explicitly; the original Rust implementation this was distilled from used
// 480px/1280px — kept here only as a documented historical note, not used.
const (
	DefaultMinViewport = 320.0
	DefaultMaxViewport = 1280.0
)

var unitRegex = regexp.MustCompile(`[a-zA-Z%]+$`)
var numRegex = regexp.MustCompile(`^-?[0-9]*\.?[0-9]+`)

// stripUnit splits a CSS length like "36px" into its numeric part and unit.
func stripUnit(value string) (num float64, unit string, err error) {
	m := numRegex.FindString(value)
	if m == "" {
		return 0, "", diag.New(diag.KindEvaluation, "no numeric value found in %q", value)
	}
	f, perr := strconv.ParseFloat(m, 64)
	if perr != nil {
		return 0, "", diag.New(diag.KindEvaluation, "failed to parse numeric value from %q", value)
	}
	unit = unitRegex.FindString(strings.TrimPrefix(value, m))
	return f, unit, nil
}

// clampExpr builds "clamp(min, slope*100vw + intercept<unit>, max)" per
// spec.md §4.6's linear-interpolation formula.
func clampExpr(minSize, maxSize string, minVWValue, maxVWValue float64) (string, error) {
	minVal, minUnit, err := stripUnit(minSize)
	if err != nil {
		return "", err
	}
	maxVal, maxUnit, err := stripUnit(maxSize)
	if err != nil {
		return "", err
	}
	if minUnit != maxUnit {
		return "", diag.New(diag.KindEvaluation, "mrs/mfs: min and max sizes must share a unit, got %q and %q", minUnit, maxUnit)
	}
	if minVWValue == maxVWValue {
		return "", diag.New(diag.KindEvaluation, "mrs/mfs: viewport widths must differ")
	}

	vwDiff := maxVWValue - minVWValue
	sizeDiff := maxVal - minVal
	slope := sizeDiff / vwDiff
	intercept := minVal - slope*minVWValue

	preferred := fmt.Sprintf("%svw + %s%s", trimNum(slope*100), trimNum(intercept), minUnit)
	return fmt.Sprintf("clamp(%s, %s, %s)", minSize, preferred, maxSize), nil
}

func trimNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MRS implements mrs(min_size, max_size, min_vw?, max_vw?) — spec.md §4.6.
func MRS(args []string) (string, error) {
	if len(args) < 2 || len(args) > 4 {
		return "", diag.New(diag.KindEvaluation, "mrs expects 2 to 4 arguments, got %d", len(args))
	}
	minSize, maxSize := args[0], args[1]
	minVW, maxVW := DefaultMinViewport, DefaultMaxViewport
	if len(args) > 2 {
		v, _, err := stripUnit(args[2])
		if err != nil {
			return "", err
		}
		minVW = v
	}
	if len(args) > 3 {
		v, _, err := stripUnit(args[3])
		if err != nil {
			return "", err
		}
		maxVW = v
	}
	return clampExpr(minSize, maxSize, minVW, maxVW)
}

// MFS implements mfs(min_size, max_size) — a clamp spanning the full
// viewport width with no media queries (spec.md §4.6).
func MFS(args []string) (string, error) {
	if len(args) != 2 {
		return "", diag.New(diag.KindEvaluation, "mfs expects exactly 2 arguments, got %d", len(args))
	}
	return clampExpr(args[0], args[1], 0, 100)
}

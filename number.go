package shorts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnknownViews is the view text used when a document carries no view count.
const UnknownViews = "Unknown views"

// viewsSuffix is the unit suffix stripped by ParseLooseInt and appended by BuildViewText.
const viewsSuffix = " views"

// ViewValue is a raw view count as found in an item document.
// The zero value means the document carried no view count.
type ViewValue struct {
	kind viewKind
	text string
	n    int64
}

type viewKind int

const (
	viewAbsent viewKind = iota
	viewText
	viewNumber
)

// NoViews returns an absent ViewValue.
func NoViews() ViewValue {
	return ViewValue{}
}

// ViewsText returns a ViewValue holding text captured from a document.
func ViewsText(s string) ViewValue {
	return ViewValue{kind: viewText, text: s}
}

// ViewsCount returns a ViewValue holding an already numeric count.
func ViewsCount(n int64) ViewValue {
	return ViewValue{kind: viewNumber, n: n}
}

// ViewsFromMatch converts a cascade match into a ViewValue.
func ViewsFromMatch(m Match) ViewValue {
	if !m.OK {
		return NoViews()
	}
	return ViewsText(m.Value)
}

// IsAbsent reports whether no view count was found.
func (v ViewValue) IsAbsent() bool {
	return v.kind == viewAbsent
}

// String returns the raw value as text. Absent values render as "".
func (v ViewValue) String() string {
	switch v.kind {
	case viewText:
		return v.text
	case viewNumber:
		return strconv.FormatInt(v.n, 10)
	default:
		return ""
	}
}

// ParseLooseInt parses loosely formatted numeric text such as "1,234",
// "1.2" or "7,123 views" into an integer. Decimal values are truncated
// toward zero. The bool result is false when the text is not a number.
func ParseLooseInt(raw string) (int64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if before, ok := strings.CutSuffix(s, viewsSuffix); ok {
		s = strings.TrimSpace(before)
	}
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// parseViewValue resolves a ViewValue to an integer where possible.
func parseViewValue(v ViewValue) (int64, bool) {
	switch v.kind {
	case viewNumber:
		return v.n, true
	case viewText:
		return ParseLooseInt(v.text)
	default:
		return 0, false
	}
}

// CompactNumber renders n with a K/M/B suffix and one decimal place,
// e.g. 1234 → "1.2K". Values below 1000 in magnitude render as plain integers.
func CompactNumber(n int64) string {
	f := float64(n)
	abs := math.Abs(f)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.1fB", f/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.1fM", f/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.1fK", f/1e3)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// BuildViewText turns a raw view value into a human-readable phrase.
//
// Text already mentioning "view" (any case) is returned trimmed, as it is
// typically an accessibility label like "1,234 views". Numeric values are
// compacted ("1.2K views"). Anything else is passed through trimmed. The
// result is never empty.
func BuildViewText(v ViewValue) string {
	if v.IsAbsent() {
		return UnknownViews
	}

	if v.kind == viewText && strings.Contains(strings.ToLower(v.text), "view") {
		return strings.TrimSpace(v.text)
	}

	if n, ok := parseViewValue(v); ok {
		return CompactNumber(n) + viewsSuffix
	}

	if s := strings.TrimSpace(v.String()); s != "" {
		return s
	}
	return UnknownViews
}

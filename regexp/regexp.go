// Package regexp implements shorts extraction strategies that read the
// JSON blobs embedded in listing and item pages using regular expressions.
package regexp

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/fwojciec/shorts"
)

// Strategy names.
const (
	NameTitleRuns          = "title-runs"
	NameViewCountRenderer  = "view-count-renderer"
	NameViewCountText      = "view-count-text"
	NameAccessibilityLabel = "accessibility-label"
)

// shortRefRe matches quoted path references to a short, e.g. "/shorts/abcDEF12_-x".
var shortRefRe = regexp.MustCompile(`"/shorts/([a-zA-Z0-9_-]{11})"`)

var (
	// The text capture stops at the first unescaped quote, so multi-run
	// titles never match.
	titleRunsRe = regexp.MustCompile(`(?is)"title"\s*:\s*\{"runs":\s*\[\s*\{"text"\s*:\s*"((?:[^"\\]|\\.)*)"\}\s*\]\}`)

	viewCountRendererRe  = regexp.MustCompile(`(?is)"viewCount"\s*:\s*\{\s*"videoViewCountRenderer"\s*:\s*\{.*?"simpleText"\s*:\s*"(.*?)"`)
	viewCountTextRe      = regexp.MustCompile(`(?is)"viewCountText"\s*:\s*\{\s*"simpleText"\s*:\s*"(.*?)"`)
	accessibilityLabelRe = regexp.MustCompile(`(?is)"accessibilityData"\s*:\s*\{\s*"label"\s*:\s*"(.*?)"`)
)

// Ensure IDExtractor implements shorts.IDExtractor at compile time.
var _ shorts.IDExtractor = (*IDExtractor)(nil)

// IDExtractor finds short identifiers referenced by a listing page.
type IDExtractor struct{}

// NewIDExtractor returns a new IDExtractor.
func NewIDExtractor() *IDExtractor {
	return &IDExtractor{}
}

// ExtractIDs returns the distinct identifiers in document order.
// Later references to an already seen identifier are dropped.
func (e *IDExtractor) ExtractIDs(doc string) []string {
	var set shorts.IDSet
	for _, m := range shortRefRe.FindAllStringSubmatch(doc, -1) {
		set.Add(m[1])
	}
	return set.IDs()
}

// TitleRuns reads a title stored as a single text run:
// "title":{"runs":[{"text":"..."}]}. JSON escapes in the text are decoded.
// Titles split across several runs are not matched.
func TitleRuns() shorts.Strategy {
	return shorts.StrategyFunc(NameTitleRuns, func(doc string) (string, bool) {
		raw, ok := submatch(titleRunsRe, doc)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(unescape(raw)), true
	})
}

// ViewCountRenderer reads the simpleText of a videoViewCountRenderer.
func ViewCountRenderer() shorts.Strategy {
	return regexStrategy(NameViewCountRenderer, viewCountRendererRe)
}

// ViewCountText reads a compact "viewCountText" simpleText field.
func ViewCountText() shorts.Strategy {
	return regexStrategy(NameViewCountText, viewCountTextRe)
}

// AccessibilityLabel reads an accessibility label, typically a full
// phrase like "1,234,567 views".
func AccessibilityLabel() shorts.Strategy {
	return regexStrategy(NameAccessibilityLabel, accessibilityLabelRe)
}

func regexStrategy(name string, re *regexp.Regexp) shorts.Strategy {
	return shorts.StrategyFunc(name, func(doc string) (string, bool) {
		return submatch(re, doc)
	})
}

// submatch returns the first capture group of the first match.
func submatch(re *regexp.Regexp, doc string) (string, bool) {
	m := re.FindStringSubmatch(doc)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// unescape decodes JSON string escapes such as \u00e9 or \". Text that is
// not a valid JSON string body is returned unchanged.
func unescape(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var s string
	if err := json.Unmarshal([]byte(`"`+raw+`"`), &s); err != nil {
		return raw
	}
	return s
}

package shorts

import (
	"regexp"
	"strings"
)

// escapedTagRe matches markup embedded in JSON strings as <...>.
var escapedTagRe = regexp.MustCompile(`\\u003c.*?\\u003e`)

// CleanViewText removes escaped markup fragments, turns newlines into
// spaces and trims the result.
func CleanViewText(s string) string {
	s = escapedTagRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// CleanTitle trims a title.
func CleanTitle(s string) string {
	return strings.TrimSpace(s)
}

// NewCascadeExtractor returns a CascadeExtractor whose view strategies are
// post-processed with CleanViewText and title strategies with CleanTitle.
func NewCascadeExtractor(title, views Cascade) *CascadeExtractor {
	e := &CascadeExtractor{
		Title: make(Cascade, len(title)),
		Views: make(Cascade, len(views)),
	}
	for i, s := range title {
		e.Title[i] = PostProcess(s, CleanTitle)
	}
	for i, s := range views {
		e.Views[i] = PostProcess(s, CleanViewText)
	}
	return e
}

package shorts

// IDExtractor discovers item identifiers on a listing document.
type IDExtractor interface {
	// ExtractIDs returns the distinct identifiers referenced by the
	// document in first-seen order. Returns an empty slice if none are found.
	ExtractIDs(doc string) []string
}

// ExtractResult holds the fields extracted from an item document.
type ExtractResult struct {
	// Title is the display title; not OK when no strategy found one.
	Title Match

	// Views is the raw view-count text; not OK when the document has none.
	Views Match
}

// Extractor extracts title and view count from an item document.
type Extractor interface {
	// Extract runs the title and view-count cascades against the document.
	// Soft misses are reported through the matches, never as errors.
	Extract(doc string) (*ExtractResult, error)
}

// CascadeExtractor implements Extractor with one cascade per field.
type CascadeExtractor struct {
	Title Cascade
	Views Cascade
}

// Ensure CascadeExtractor implements Extractor at compile time.
var _ Extractor = (*CascadeExtractor)(nil)

// Extract runs both cascades. It never returns an error.
func (e *CascadeExtractor) Extract(doc string) (*ExtractResult, error) {
	return &ExtractResult{
		Title: e.Title.Extract(doc),
		Views: e.Views.Extract(doc),
	}, nil
}

package shorts

import (
	"context"
	"io"
	"strings"
	"time"
)

// Output formats.
const (
	FormatJSON   = "json"
	FormatCSV    = "csv"
	FormatXML    = "xml"
	FormatSQLite = "sqlite"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatJSON, FormatCSV, FormatXML, FormatSQLite}
}

// ParseFormat normalizes a format name.
// Returns EINVALID if the format is not supported.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", Errorf(EINVALID, "unsupported output format %q (supported: %s)", s, strings.Join(Formats(), ", "))
}

// Run describes a single pipeline run.
type Run struct {
	ID          string    `json:"id"`
	Hashtag     string    `json:"hashtag"`
	ListingURL  string    `json:"listingUrl"`
	ListingHash string    `json:"listingHash"`
	Discovered  int       `json:"discovered"`
	Failed      int       `json:"failed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Encoder serializes records to a stream.
type Encoder interface {
	Encode(w io.Writer, records []*Record) error
}

// Exporter persists the records of a run.
type Exporter interface {
	// Export writes all records. An empty slice still produces output
	// (an empty file or an archived run with no records).
	Export(ctx context.Context, run *Run, records []*Record) error
}

// RunFilter filters archived runs. Nil fields match everything.
type RunFilter struct {
	ID      *string
	Hashtag *string

	Limit  int
	Offset int
}

// RunService reads archived runs and their records.
type RunService interface {
	// FindRunByID returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns returns runs newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// FindRecords returns the records of a run in sequence order.
	FindRecords(ctx context.Context, runID string) ([]*Record, error)

	// DeleteRun removes a run and its records.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

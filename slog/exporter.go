package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shorts"
)

// Ensure LoggingExporter implements shorts.Exporter.
var _ shorts.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter with logging.
type LoggingExporter struct {
	next   shorts.Exporter
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter.
func NewLoggingExporter(next shorts.Exporter, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, logger: logger}
}

// Export delegates to the wrapped exporter.
func (e *LoggingExporter) Export(ctx context.Context, run *shorts.Run, records []*shorts.Record) (err error) {
	defer func(begin time.Time) {
		var hashtag string
		if run != nil {
			hashtag = run.Hashtag
		}
		e.logger.Info("export",
			"hashtag", hashtag,
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Export(ctx, run, records)
}

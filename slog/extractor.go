package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/shorts"
)

// Ensure LoggingExtractor implements shorts.Extractor.
var _ shorts.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs which strategy produced
// each field.
type LoggingExtractor struct {
	next   shorts.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next shorts.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(doc string) (result *shorts.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title, views string
		if result != nil {
			title = strategyName(result.Title)
			views = strategyName(result.Views)
		}
		e.logger.Debug("extract",
			"title_strategy", title,
			"views_strategy", views,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(doc)
}

func strategyName(m shorts.Match) string {
	if !m.OK {
		return "(none)"
	}
	return m.Strategy
}

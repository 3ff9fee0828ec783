package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/htmldoc"
)

// Ensure LoggingExtractor implements htmldoc.Extractor.
var _ htmldoc.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   htmldoc.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next htmldoc.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *htmldoc.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var bytes int
		if result != nil {
			title = result.Title
			bytes = len(result.ContentHTML)
		}
		e.logger.Info("extract",
			"in_bytes", len(html),
			"out_bytes", bytes,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}

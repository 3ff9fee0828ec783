// Package slog provides logging decorators for htmldoc service interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/htmldoc"
)

// Ensure LoggingConverter implements htmldoc.Converter.
var _ htmldoc.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with logging.
type LoggingConverter struct {
	next   htmldoc.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next htmldoc.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(html string) (markdown string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("convert",
			"in_bytes", len(html),
			"out_bytes", len(markdown),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(html)
}

// Package slog provides logging decorators for eadindex services.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/eadindex"
)

// Ensure LoggingExtractor implements eadindex.Extractor.
var _ eadindex.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   eadindex.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next eadindex.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, r io.Reader) (ext *eadindex.Extraction, err error) {
	defer func(begin time.Time) {
		var eadid string
		var count int
		if ext != nil {
			eadid = ext.DocumentID
			count = len(ext.Records)
		}
		e.logger.Info("extract",
			"eadid", eadid,
			"records", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, r)
}

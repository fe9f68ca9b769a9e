package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/eadindex"
)

// Ensure LoggingRecordIndex implements eadindex.RecordIndex.
var _ eadindex.RecordIndex = (*LoggingRecordIndex)(nil)

// LoggingRecordIndex wraps a RecordIndex with logging.
type LoggingRecordIndex struct {
	next   eadindex.RecordIndex
	logger *slog.Logger
}

// NewLoggingRecordIndex creates a new LoggingRecordIndex.
func NewLoggingRecordIndex(next eadindex.RecordIndex, logger *slog.Logger) *LoggingRecordIndex {
	return &LoggingRecordIndex{next: next, logger: logger}
}

// IndexRecords delegates to the wrapped index and logs the batch size.
func (i *LoggingRecordIndex) IndexRecords(ctx context.Context, records []*eadindex.Record) (err error) {
	defer func(begin time.Time) {
		i.logger.Info("index records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.IndexRecords(ctx, records)
}

// Search delegates to the wrapped index and logs the query.
func (i *LoggingRecordIndex) Search(ctx context.Context, query string, limit int) (hits []*eadindex.SearchHit, err error) {
	defer func(begin time.Time) {
		i.logger.Info("search",
			"query", query,
			"hits", len(hits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Search(ctx, query, limit)
}

// DeleteDocument delegates to the wrapped index.
func (i *LoggingRecordIndex) DeleteDocument(ctx context.Context, documentID string) (err error) {
	defer func(begin time.Time) {
		i.logger.Info("delete document",
			"eadid", documentID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.DeleteDocument(ctx, documentID)
}

package mock

import (
	"context"

	"github.com/fwojciec/eadindex"
)

var _ eadindex.RecordIndex = (*RecordIndex)(nil)

// RecordIndex is a mock implementation of eadindex.RecordIndex.
type RecordIndex struct {
	IndexRecordsFn   func(ctx context.Context, records []*eadindex.Record) error
	SearchFn         func(ctx context.Context, query string, limit int) ([]*eadindex.SearchHit, error)
	DeleteDocumentFn func(ctx context.Context, documentID string) error
}

func (i *RecordIndex) IndexRecords(ctx context.Context, records []*eadindex.Record) error {
	return i.IndexRecordsFn(ctx, records)
}

func (i *RecordIndex) Search(ctx context.Context, query string, limit int) ([]*eadindex.SearchHit, error) {
	return i.SearchFn(ctx, query, limit)
}

func (i *RecordIndex) DeleteDocument(ctx context.Context, documentID string) error {
	return i.DeleteDocumentFn(ctx, documentID)
}

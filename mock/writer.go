package mock

import (
	"context"

	"github.com/fwojciec/eadindex"
)

var _ eadindex.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of eadindex.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, record *eadindex.Record) error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, record *eadindex.Record) error {
	return w.WriteRecordFn(ctx, record)
}

package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/eadindex"
	"github.com/fwojciec/eadindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ eadindex.RecordWriter = &mock.RecordWriter{}
}

func TestRecordWriter_WriteRecord(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteRecordFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *eadindex.Record
		w := &mock.RecordWriter{
			WriteRecordFn: func(_ context.Context, record *eadindex.Record) error {
				calledWith = record
				return nil
			},
		}

		record := &eadindex.Record{ID: "abc123:i1", DocumentID: "abc123", Ref: "i1"}

		err := w.WriteRecord(context.Background(), record)

		require.NoError(t, err)
		assert.Equal(t, record, calledWith)
	})
}

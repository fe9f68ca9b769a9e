package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/eadindex"
	main "github.com/fwojciec/eadindex/cmd/eadindex"
	"github.com/fwojciec/eadindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ead.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func stubExtractor(records ...*eadindex.Record) *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(_ context.Context, _ io.Reader) (*eadindex.Extraction, error) {
			return &eadindex.Extraction{DocumentID: "abc123", Title: "Harbor Company Records", Records: records}, nil
		},
	}
}

func TestIndexCmd_Run(t *testing.T) {
	t.Parallel()

	record := &eadindex.Record{ID: "abc123:s1", DocumentID: "abc123", Ref: "s1"}

	t.Run("stores finding aid and records then indexes them", func(t *testing.T) {
		t.Parallel()

		var created *eadindex.FindingAid
		var stored, indexed []*eadindex.Record
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: stubExtractor(record),
			FindingAids: &mock.FindingAidService{
				FindFindingAidsFn: func(_ context.Context, _ eadindex.FindingAidFilter) ([]*eadindex.FindingAid, error) {
					return nil, nil
				},
				CreateFindingAidFn: func(_ context.Context, aid *eadindex.FindingAid) error {
					aid.ID = "fa-1"
					created = aid
					return nil
				},
			},
			Records: &mock.RecordService{
				CreateRecordsFn: func(_ context.Context, records []*eadindex.Record) error {
					stored = records
					return nil
				},
			},
			Index: &mock.RecordIndex{
				IndexRecordsFn: func(_ context.Context, records []*eadindex.Record) error {
					indexed = records
					return nil
				},
			},
		}

		err := (&main.IndexCmd{Path: writeTempFile(t, "<ead/>")}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "abc123", created.EADID)
		assert.Equal(t, "Harbor Company Records", created.Title)
		assert.Equal(t, 1, created.RecordCount)
		assert.True(t, filepath.IsAbs(created.SourcePath))
		assert.Equal(t, []*eadindex.Record{record}, stored)
		assert.Equal(t, []*eadindex.Record{record}, indexed)
		assert.Contains(t, stdout.String(), `Indexed "abc123" (1 records)`)
	})

	t.Run("refuses to replace an indexed finding aid without --force", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Extractor: stubExtractor(record),
			FindingAids: &mock.FindingAidService{
				FindFindingAidsFn: func(_ context.Context, _ eadindex.FindingAidFilter) ([]*eadindex.FindingAid, error) {
					return []*eadindex.FindingAid{{ID: "fa-1", EADID: "abc123"}}, nil
				},
			},
		}

		err := (&main.IndexCmd{Path: writeTempFile(t, "<ead/>")}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, eadindex.ECONFLICT, eadindex.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("removes the finding aid when storing records fails", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("disk full")
		var deletedID string
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Extractor: stubExtractor(record),
			FindingAids: &mock.FindingAidService{
				FindFindingAidsFn: func(_ context.Context, _ eadindex.FindingAidFilter) ([]*eadindex.FindingAid, error) {
					return nil, nil
				},
				CreateFindingAidFn: func(_ context.Context, aid *eadindex.FindingAid) error {
					aid.ID = "fa-1"
					return nil
				},
				DeleteFindingAidFn: func(_ context.Context, id string) error {
					deletedID = id
					return nil
				},
			},
			Records: &mock.RecordService{
				CreateRecordsFn: func(_ context.Context, _ []*eadindex.Record) error {
					return storeErr
				},
			},
		}

		err := (&main.IndexCmd{Path: writeTempFile(t, "<ead/>")}).Run(deps)

		require.ErrorIs(t, err, storeErr)
		assert.Equal(t, "fa-1", deletedID)
	})

	t.Run("keeps the indexed finding aid when --force input is invalid", func(t *testing.T) {
		t.Parallel()

		invalid := &eadindex.Record{ID: "abc123:", DocumentID: "abc123"}
		deleted := false
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Extractor: stubExtractor(record, invalid),
			FindingAids: &mock.FindingAidService{
				FindFindingAidsFn: func(_ context.Context, _ eadindex.FindingAidFilter) ([]*eadindex.FindingAid, error) {
					return []*eadindex.FindingAid{{ID: "fa-1", EADID: "abc123"}}, nil
				},
				DeleteFindingAidFn: func(_ context.Context, _ string) error {
					deleted = true
					return nil
				},
			},
		}

		err := (&main.IndexCmd{Path: writeTempFile(t, "<ead/>"), Force: true}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, eadindex.EINVALID, eadindex.ErrorCode(err))
		assert.False(t, deleted)
	})

	t.Run("rejects a document without eadid before touching storage", func(t *testing.T) {
		t.Parallel()

		looked := false
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ context.Context, _ io.Reader) (*eadindex.Extraction, error) {
					return &eadindex.Extraction{}, nil
				},
			},
			FindingAids: &mock.FindingAidService{
				FindFindingAidsFn: func(_ context.Context, _ eadindex.FindingAidFilter) ([]*eadindex.FindingAid, error) {
					looked = true
					return nil, nil
				},
			},
		}

		err := (&main.IndexCmd{Path: writeTempFile(t, "<ead/>")}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, eadindex.EINVALID, eadindex.ErrorCode(err))
		assert.False(t, looked)
	})
}

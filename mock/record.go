package mock

import (
	"context"

	"github.com/fwojciec/eadindex"
)

var _ eadindex.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of eadindex.RecordService.
type RecordService struct {
	CreateRecordsFn           func(ctx context.Context, records []*eadindex.Record) error
	FindRecordByIDFn          func(ctx context.Context, id string) (*eadindex.Record, error)
	FindRecordsFn             func(ctx context.Context, filter eadindex.RecordFilter) ([]*eadindex.Record, error)
	DeleteRecordsByDocumentFn func(ctx context.Context, documentID string) error
}

func (s *RecordService) CreateRecords(ctx context.Context, records []*eadindex.Record) error {
	return s.CreateRecordsFn(ctx, records)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*eadindex.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter eadindex.RecordFilter) ([]*eadindex.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecordsByDocument(ctx context.Context, documentID string) error {
	return s.DeleteRecordsByDocumentFn(ctx, documentID)
}

var _ eadindex.FindingAidService = (*FindingAidService)(nil)

// FindingAidService is a mock implementation of eadindex.FindingAidService.
type FindingAidService struct {
	CreateFindingAidFn   func(ctx context.Context, aid *eadindex.FindingAid) error
	FindFindingAidByIDFn func(ctx context.Context, id string) (*eadindex.FindingAid, error)
	FindFindingAidsFn    func(ctx context.Context, filter eadindex.FindingAidFilter) ([]*eadindex.FindingAid, error)
	DeleteFindingAidFn   func(ctx context.Context, id string) error
}

func (s *FindingAidService) CreateFindingAid(ctx context.Context, aid *eadindex.FindingAid) error {
	return s.CreateFindingAidFn(ctx, aid)
}

func (s *FindingAidService) FindFindingAidByID(ctx context.Context, id string) (*eadindex.FindingAid, error) {
	return s.FindFindingAidByIDFn(ctx, id)
}

func (s *FindingAidService) FindFindingAids(ctx context.Context, filter eadindex.FindingAidFilter) ([]*eadindex.FindingAid, error) {
	return s.FindFindingAidsFn(ctx, filter)
}

func (s *FindingAidService) DeleteFindingAid(ctx context.Context, id string) error {
	return s.DeleteFindingAidFn(ctx, id)
}

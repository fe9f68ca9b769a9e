package eadindex

import (
	"context"
	"time"
)

// FindingAid represents one indexed EAD document.
type FindingAid struct {
	ID          string    `json:"id"`
	EADID       string    `json:"eadid"`
	Title       string    `json:"title"`
	SourcePath  string    `json:"sourcePath"`
	RecordCount int       `json:"recordCount"`
	IndexedAt   time.Time `json:"indexedAt"`
}

// Validate returns an error if the finding aid contains invalid fields.
func (f *FindingAid) Validate() error {
	if f.EADID == "" {
		return Errorf(EINVALID, "finding aid EADID required")
	}
	return nil
}

// FindingAidService represents a service for managing indexed finding aids.
type FindingAidService interface {
	// CreateFindingAid creates a new finding aid.
	// Returns ECONFLICT if the EADID is already indexed.
	CreateFindingAid(ctx context.Context, aid *FindingAid) error

	// FindFindingAidByID retrieves a finding aid by ID.
	// Returns ENOTFOUND if finding aid does not exist.
	FindFindingAidByID(ctx context.Context, id string) (*FindingAid, error)

	// FindFindingAids retrieves finding aids matching the filter.
	FindFindingAids(ctx context.Context, filter FindingAidFilter) ([]*FindingAid, error)

	// DeleteFindingAid permanently removes a finding aid and all its records.
	// Returns ENOTFOUND if finding aid does not exist.
	DeleteFindingAid(ctx context.Context, id string) error
}

// FindingAidFilter represents a filter for FindFindingAids.
type FindingAidFilter struct {
	ID    *string `json:"id"`
	EADID *string `json:"eadid"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/eadindex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ eadindex.FindingAidService = (*FindingAidService)(nil)

// FindingAidService implements eadindex.FindingAidService using SQLite.
type FindingAidService struct {
	db *DB
}

// NewFindingAidService creates a new FindingAidService.
func NewFindingAidService(db *DB) *FindingAidService {
	return &FindingAidService{db: db}
}

// CreateFindingAid creates a new finding aid.
func (s *FindingAidService) CreateFindingAid(ctx context.Context, aid *eadindex.FindingAid) error {
	if err := aid.Validate(); err != nil {
		return err
	}

	existing, err := s.FindFindingAids(ctx, eadindex.FindingAidFilter{EADID: &aid.EADID, Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return eadindex.Errorf(eadindex.ECONFLICT, "finding aid %q already indexed", aid.EADID)
	}

	aid.ID = uuid.New().String()
	aid.IndexedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO finding_aids (id, eadid, title, source_path, record_count, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, aid.ID, aid.EADID, aid.Title, aid.SourcePath, aid.RecordCount, aid.IndexedAt.Format(time.RFC3339))

	return err
}

// FindFindingAidByID retrieves a finding aid by ID.
func (s *FindingAidService) FindFindingAidByID(ctx context.Context, id string) (*eadindex.FindingAid, error) {
	var aid eadindex.FindingAid
	var indexedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, eadid, title, source_path, record_count, indexed_at
		FROM finding_aids
		WHERE id = ?
	`, id).Scan(&aid.ID, &aid.EADID, &aid.Title, &aid.SourcePath, &aid.RecordCount, &indexedAt)

	if err == sql.ErrNoRows {
		return nil, eadindex.Errorf(eadindex.ENOTFOUND, "finding aid not found")
	}
	if err != nil {
		return nil, err
	}

	if aid.IndexedAt, err = parseRFC3339(indexedAt, "indexed_at"); err != nil {
		return nil, err
	}

	return &aid, nil
}

// FindFindingAids retrieves finding aids matching the filter.
func (s *FindingAidService) FindFindingAids(ctx context.Context, filter eadindex.FindingAidFilter) ([]*eadindex.FindingAid, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, eadid, title, source_path, record_count, indexed_at FROM finding_aids WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.EADID != nil {
		query.WriteString(" AND eadid = ?")
		args = append(args, *filter.EADID)
	}

	query.WriteString(" ORDER BY eadid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aids []*eadindex.FindingAid
	for rows.Next() {
		var aid eadindex.FindingAid
		var indexedAt string

		if err := rows.Scan(&aid.ID, &aid.EADID, &aid.Title, &aid.SourcePath, &aid.RecordCount, &indexedAt); err != nil {
			return nil, err
		}

		if aid.IndexedAt, err = parseRFC3339(indexedAt, "indexed_at"); err != nil {
			return nil, err
		}

		aids = append(aids, &aid)
	}

	return aids, rows.Err()
}

// DeleteFindingAid permanently removes a finding aid. Its records are
// removed by the foreign key cascade.
func (s *FindingAidService) DeleteFindingAid(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM finding_aids WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return eadindex.Errorf(eadindex.ENOTFOUND, "finding aid not found")
	}

	return nil
}

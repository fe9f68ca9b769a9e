package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/eadindex"
)

// Compile-time interface verification.
var _ eadindex.RecordService = (*RecordService)(nil)

// RecordService implements eadindex.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

const recordColumns = `id, document_id, ref, parent_id, parent_ids, parent_titles, title, date, level,
	has_children, heading, content, text, content_hash, position`

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateRecords stores records in a single transaction. Either every record
// is stored or none is.
func (s *RecordService) CreateRecords(ctx context.Context, records []*eadindex.Record) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range records {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM records WHERE id = ?", r.ID).Scan(&exists)
		if err != nil {
			return err
		}
		if exists > 0 {
			return eadindex.Errorf(eadindex.ECONFLICT, "record %q already exists", r.ID)
		}

		parentIDs, err := json.Marshal(nonNil(r.ParentIDs))
		if err != nil {
			return fmt.Errorf("failed to encode parent_ids: %w", err)
		}
		parentTitles, err := json.Marshal(nonNil(r.ParentTitles))
		if err != nil {
			return fmt.Errorf("failed to encode parent_titles: %w", err)
		}

		r.ContentHash = hashContent(r.Content)

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO records (`+recordColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, r.ID, r.DocumentID, r.Ref, r.ParentID, string(parentIDs), string(parentTitles),
			r.Title, r.Date, r.Level, r.HasChildren, r.Heading, r.Content, r.Text,
			r.ContentHash, r.Position); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRecordByID retrieves a record by composite ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*eadindex.Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM records WHERE id = ?", id)

	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, eadindex.Errorf(eadindex.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// FindRecords retrieves records matching the filter, ordered by document
// and position.
func (s *RecordService) FindRecords(ctx context.Context, filter eadindex.RecordFilter) ([]*eadindex.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}
	if filter.ParentID != nil {
		query.WriteString(" AND parent_id = ?")
		args = append(args, *filter.ParentID)
	}

	query.WriteString(" ORDER BY document_id ASC, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*eadindex.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// DeleteRecordsByDocument removes all records of a finding aid.
func (s *RecordService) DeleteRecordsByDocument(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE document_id = ?", documentID)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*eadindex.Record, error) {
	var r eadindex.Record
	var parentIDs, parentTitles string

	if err := row.Scan(&r.ID, &r.DocumentID, &r.Ref, &r.ParentID, &parentIDs, &parentTitles,
		&r.Title, &r.Date, &r.Level, &r.HasChildren, &r.Heading, &r.Content, &r.Text,
		&r.ContentHash, &r.Position); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(parentIDs), &r.ParentIDs); err != nil {
		return nil, fmt.Errorf("failed to parse parent_ids: %w", err)
	}
	if err := json.Unmarshal([]byte(parentTitles), &r.ParentTitles); err != nil {
		return nil, fmt.Errorf("failed to parse parent_titles: %w", err)
	}

	return &r, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package eadindex

import "context"

// SearchHit is a single full-text search result.
type SearchHit struct {
	ID    string
	Score float64
}

// RecordIndex is a full-text index over component records.
type RecordIndex interface {
	// IndexRecords adds or replaces records in the index.
	IndexRecords(ctx context.Context, records []*Record) error

	// Search returns up to limit hits ordered by descending score.
	Search(ctx context.Context, query string, limit int) ([]*SearchHit, error)

	// DeleteDocument removes every record of the given finding aid.
	DeleteDocument(ctx context.Context, documentID string) error
}

// Package bleve provides a full-text index over component records using
// github.com/blevesearch/bleve/v2.
package bleve

import (
	"context"
	"fmt"
	"os"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/fwojciec/eadindex"
)

// Ensure Index implements eadindex.RecordIndex at compile time.
var _ eadindex.RecordIndex = (*Index)(nil)

// document is the shape stored in the index for each record.
type document struct {
	DocumentID   string   `json:"document_id"`
	Ref          string   `json:"ref"`
	ParentIDs    []string `json:"parent_ids"`
	ParentTitles []string `json:"parent_titles"`
	Title        string   `json:"title"`
	Heading      string   `json:"heading"`
	Text         string   `json:"text"`
	Level        string   `json:"level"`
}

// Index is a bleve-backed record index.
type Index struct {
	index bleve.Index
}

// Open creates or opens a bleve index at path. An empty path creates an
// in-memory index.
func Open(path string) (*Index, error) {
	if path == "" {
		index, err := bleve.NewMemOnly(newMapping())
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory index: %w", err)
		}
		return &Index{index: index}, nil
	}

	if _, err := os.Stat(path); err == nil {
		index, err := bleve.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open index: %w", err)
		}
		return &Index{index: index}, nil
	}

	index, err := bleve.New(path, newMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}
	return &Index{index: index}, nil
}

func newMapping() *mapping.IndexMappingImpl {
	im := bleve.NewIndexMapping()

	docMapping := bleve.NewDocumentMapping()

	text := bleve.NewTextFieldMapping()
	text.Analyzer = standard.Name
	for _, field := range []string{"title", "heading", "text", "parent_titles"} {
		docMapping.AddFieldMappingsAt(field, text)
	}

	keyword := bleve.NewKeywordFieldMapping()
	for _, field := range []string{"document_id", "ref", "parent_ids", "level"} {
		docMapping.AddFieldMappingsAt(field, keyword)
	}

	im.AddDocumentMapping("record", docMapping)
	im.DefaultType = "record"
	im.DefaultMapping = docMapping
	return im
}

// IndexRecords adds or replaces records in a single batch.
func (i *Index) IndexRecords(ctx context.Context, records []*eadindex.Record) error {
	batch := i.index.NewBatch()
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := batch.Index(r.ID, toDocument(r)); err != nil {
			return fmt.Errorf("failed to index record %q: %w", r.ID, err)
		}
	}
	if err := i.index.Batch(batch); err != nil {
		return fmt.Errorf("failed to write batch: %w", err)
	}
	return nil
}

func toDocument(r *eadindex.Record) document {
	return document{
		DocumentID:   r.DocumentID,
		Ref:          r.Ref,
		ParentIDs:    r.ParentIDs,
		ParentTitles: r.ParentTitles,
		Title:        r.Title,
		Heading:      r.Heading,
		Text:         r.Text,
		Level:        r.Level,
	}
}

// Search runs a match query over titles, headings and text.
func (i *Index) Search(ctx context.Context, query string, limit int) ([]*eadindex.SearchHit, error) {
	if query == "" {
		return nil, eadindex.Errorf(eadindex.EINVALID, "search query required")
	}
	if limit <= 0 {
		limit = 10
	}

	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = limit

	results, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]*eadindex.SearchHit, len(results.Hits))
	for n, hit := range results.Hits {
		hits[n] = &eadindex.SearchHit{ID: hit.ID, Score: hit.Score}
	}
	return hits, nil
}

// DeleteDocument removes every record whose document_id matches.
func (i *Index) DeleteDocument(ctx context.Context, documentID string) error {
	q := bleve.NewTermQuery(documentID)
	q.SetField("document_id")

	for {
		req := bleve.NewSearchRequest(q)
		req.Size = 1000
		results, err := i.index.SearchInContext(ctx, req)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if len(results.Hits) == 0 {
			return nil
		}

		batch := i.index.NewBatch()
		for _, hit := range results.Hits {
			batch.Delete(hit.ID)
		}
		if err := i.index.Batch(batch); err != nil {
			return fmt.Errorf("failed to delete records: %w", err)
		}
	}
}

// DocCount returns the number of indexed records.
func (i *Index) DocCount() (uint64, error) {
	return i.index.DocCount()
}

// Close closes the index.
func (i *Index) Close() error {
	return i.index.Close()
}

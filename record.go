package eadindex

import (
	"context"
	"io"
	"strings"
)

// IDSeparator joins a document identifier and a component ref into a
// composite record ID.
const IDSeparator = ":"

// HeadingSeparator joins ancestor titles and the component's own title.
const HeadingSeparator = " >> "

// Field names produced by Record.Fields.
const (
	FieldID           = "id"
	FieldDocumentID   = "ead_ssi"
	FieldRef          = "ref_ssi"
	FieldParentID     = "parent_ssi"
	FieldParentIDs    = "parent_ssm"
	FieldParentTitles = "parent_unittitles_ssm"
	FieldTitle        = "normalized_title_ssm"
	FieldDate         = "normalized_date_ssm"
	FieldLevel        = "level_ssm"
	FieldHasChildren  = "component_children_bsi"
	FieldHeading      = "heading_ssm"
	FieldText         = "text"
)

// Record is a single component extracted from a finding aid, decorated
// with its position in the original hierarchy.
type Record struct {
	ID         string `json:"id"`
	DocumentID string `json:"documentId"`
	Ref        string `json:"ref"`

	// ParentID is the id of the immediate parent component. Empty for
	// top-level components and when the parent has no id.
	ParentID string `json:"parentId,omitempty"`

	// ParentIDs and ParentTitles are ordered from the outermost ancestor to
	// the immediate parent. They are indexed independently: ancestors
	// without an identifier contribute a title but no ID.
	ParentIDs    []string `json:"parentIds"`
	ParentTitles []string `json:"parentTitles"`

	Title       string `json:"title"`
	Date        string `json:"date,omitempty"`
	Level       string `json:"level,omitempty"`
	HasChildren bool   `json:"hasChildren"`
	Heading     string `json:"heading"`

	// Content is the serialized component with nested components removed.
	Content     string `json:"content"`
	Text        string `json:"text"`
	ContentHash string `json:"contentHash,omitempty"`
	Position    int    `json:"position"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.DocumentID == "" {
		return Errorf(EINVALID, "record document ID required")
	}
	if r.Ref == "" {
		return Errorf(EINVALID, "record ref required")
	}
	if r.ID == "" {
		return Errorf(EINVALID, "record ID required")
	}
	return nil
}

// Fields returns the named-field mapping handed to a search index.
// Values are strings, bools or string slices. Absent optional values are
// omitted rather than emitted empty.
func (r *Record) Fields() map[string]any {
	fields := map[string]any{
		FieldID:           r.ID,
		FieldDocumentID:   r.DocumentID,
		FieldRef:          r.Ref,
		FieldParentIDs:    nonNil(r.ParentIDs),
		FieldParentTitles: nonNil(r.ParentTitles),
		FieldTitle:        r.Title,
		FieldHasChildren:  r.HasChildren,
		FieldHeading:      r.Heading,
	}
	if r.ParentID != "" {
		fields[FieldParentID] = r.ParentID
	}
	if r.Date != "" {
		fields[FieldDate] = r.Date
	}
	if r.Level != "" {
		fields[FieldLevel] = r.Level
	}
	if r.Text != "" {
		fields[FieldText] = r.Text
	}
	return fields
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Lineage holds the ancestor chain of a component, ordered from the
// outermost ancestor to the immediate parent. IDs may be shorter than
// Titles.
type Lineage struct {
	// ParentID is the id of the immediate parent component. Empty when the
	// parent has no id or the component is top level.
	ParentID string

	IDs    []string
	Titles []string
}

// RecordInput collects everything the field assembler needs for one
// component. Title is the component's own display title, already derived
// and cleaned by the caller.
type RecordInput struct {
	DocumentID  string
	Ref         string
	Lineage     Lineage
	HasChildren bool
	Title       string
	Date        string
	Level       string
	Content     string
	Text        string
	Position    int
}

// AssembleRecord builds the final record for one component. The returned
// record owns copies of the lineage slices.
func AssembleRecord(in RecordInput) *Record {
	ids := append([]string{}, in.Lineage.IDs...)
	titles := append([]string{}, in.Lineage.Titles...)
	return &Record{
		ID:           CompositeID(in.DocumentID, in.Ref),
		DocumentID:   in.DocumentID,
		Ref:          in.Ref,
		ParentID:     in.Lineage.ParentID,
		ParentIDs:    ids,
		ParentTitles: titles,
		Title:        in.Title,
		Date:         in.Date,
		Level:        in.Level,
		HasChildren:  in.HasChildren,
		Heading:      Heading(titles, in.Title),
		Content:      in.Content,
		Text:         in.Text,
		Position:     in.Position,
	}
}

// CompositeID joins a document identifier and a component ref.
func CompositeID(documentID, ref string) string {
	return documentID + IDSeparator + ref
}

// Heading joins ancestor titles and the component title with
// HeadingSeparator.
func Heading(ancestorTitles []string, title string) string {
	parts := make([]string, 0, len(ancestorTitles)+1)
	parts = append(parts, ancestorTitles...)
	parts = append(parts, title)
	return strings.Join(parts, HeadingSeparator)
}

// HasComponentChildren reports whether a component at the given level may
// contain child components. Levels containing "file" or "item" are leaves;
// everything else, including a missing level, may have children.
func HasComponentChildren(level string) bool {
	return !strings.Contains(level, "file") && !strings.Contains(level, "item")
}

// Extractor turns one finding aid into component records.
type Extractor interface {
	// Extract parses the document read from r and returns one record per
	// component in document order. Returns EPARSE if the document is not
	// well-formed. A document without components yields no records.
	Extract(ctx context.Context, r io.Reader) (*Extraction, error)
}

// Extraction is the result of extracting a single finding aid.
type Extraction struct {
	DocumentID string
	Title      string
	Records    []*Record
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID         *string `json:"id"`
	DocumentID *string `json:"documentId"`
	ParentID   *string `json:"parentId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordService represents a service for managing stored records.
type RecordService interface {
	// CreateRecords stores records atomically.
	// Returns ECONFLICT if a record ID already exists.
	CreateRecords(ctx context.Context, records []*Record) error

	// FindRecordByID retrieves a record by composite ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter in document order.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecordsByDocument removes all records of a finding aid.
	DeleteRecordsByDocument(ctx context.Context, documentID string) error
}

// RecordWriter writes records to an export destination.
type RecordWriter interface {
	WriteRecord(ctx context.Context, record *Record) error
}

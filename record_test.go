package eadindex_test

import (
	"testing"

	"github.com/fwojciec/eadindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleRecord(t *testing.T) {
	t.Parallel()

	t.Run("builds composite ID and heading", func(t *testing.T) {
		t.Parallel()

		r := eadindex.AssembleRecord(eadindex.RecordInput{
			DocumentID:  "abc123",
			Ref:         "i1",
			Lineage:     eadindex.Lineage{ParentID: "s1", IDs: []string{"s1"}, Titles: []string{"Series One"}},
			HasChildren: false,
			Title:       "Item One",
			Level:       "item",
		})

		assert.Equal(t, "abc123:i1", r.ID)
		assert.Equal(t, "abc123", r.DocumentID)
		assert.Equal(t, "i1", r.Ref)
		assert.Equal(t, "s1", r.ParentID)
		assert.Equal(t, []string{"s1"}, r.ParentIDs)
		assert.Equal(t, []string{"Series One"}, r.ParentTitles)
		assert.Equal(t, "Series One >> Item One", r.Heading)
		assert.False(t, r.HasChildren)
	})

	t.Run("top-level component has only its own title in heading", func(t *testing.T) {
		t.Parallel()

		r := eadindex.AssembleRecord(eadindex.RecordInput{
			DocumentID:  "abc123",
			Ref:         "s1",
			HasChildren: true,
			Title:       "Series One",
		})

		assert.Empty(t, r.ParentID)
		assert.Empty(t, r.ParentIDs)
		assert.NotNil(t, r.ParentIDs)
		assert.Equal(t, "Series One", r.Heading)
	})

	t.Run("parent ID is absent when the immediate parent has no id", func(t *testing.T) {
		t.Parallel()

		r := eadindex.AssembleRecord(eadindex.RecordInput{
			DocumentID: "d",
			Ref:        "x",
			Lineage: eadindex.Lineage{
				IDs:    []string{"a", "b"},
				Titles: []string{"A", "unnamed", "B"},
			},
			Title: "X",
		})

		assert.Empty(t, r.ParentID)
		assert.Equal(t, []string{"a", "b"}, r.ParentIDs)
		assert.Equal(t, "A >> unnamed >> B >> X", r.Heading)
	})

	t.Run("does not share lineage slices with the input", func(t *testing.T) {
		t.Parallel()

		lineage := eadindex.Lineage{IDs: []string{"a"}, Titles: []string{"A"}}
		r := eadindex.AssembleRecord(eadindex.RecordInput{DocumentID: "d", Ref: "x", Lineage: lineage, Title: "X"})

		lineage.IDs[0] = "changed"
		lineage.Titles[0] = "changed"

		assert.Equal(t, []string{"a"}, r.ParentIDs)
		assert.Equal(t, []string{"A"}, r.ParentTitles)
	})
}

func TestRecord_Fields(t *testing.T) {
	t.Parallel()

	t.Run("maps record to named fields", func(t *testing.T) {
		t.Parallel()

		r := eadindex.AssembleRecord(eadindex.RecordInput{
			DocumentID: "abc123",
			Ref:        "i1",
			Lineage:    eadindex.Lineage{ParentID: "s1", IDs: []string{"s1"}, Titles: []string{"Series One"}},
			Title:      "Item One",
			Date:       "1901",
			Level:      "item",
			Text:       "Item One 1901",
		})

		fields := r.Fields()

		assert.Equal(t, "abc123:i1", fields[eadindex.FieldID])
		assert.Equal(t, "abc123", fields[eadindex.FieldDocumentID])
		assert.Equal(t, "i1", fields[eadindex.FieldRef])
		assert.Equal(t, "s1", fields[eadindex.FieldParentID])
		assert.Equal(t, []string{"s1"}, fields[eadindex.FieldParentIDs])
		assert.Equal(t, []string{"Series One"}, fields[eadindex.FieldParentTitles])
		assert.Equal(t, "Item One", fields[eadindex.FieldTitle])
		assert.Equal(t, "1901", fields[eadindex.FieldDate])
		assert.Equal(t, "item", fields[eadindex.FieldLevel])
		assert.Equal(t, false, fields[eadindex.FieldHasChildren])
		assert.Equal(t, "Series One >> Item One", fields[eadindex.FieldHeading])
		assert.Equal(t, "Item One 1901", fields[eadindex.FieldText])
	})

	t.Run("omits absent optional fields", func(t *testing.T) {
		t.Parallel()

		r := eadindex.AssembleRecord(eadindex.RecordInput{
			DocumentID:  "abc123",
			Ref:         "s1",
			HasChildren: true,
			Title:       "Series One",
		})

		fields := r.Fields()

		assert.NotContains(t, fields, eadindex.FieldParentID)
		assert.NotContains(t, fields, eadindex.FieldDate)
		assert.NotContains(t, fields, eadindex.FieldLevel)
		assert.NotContains(t, fields, eadindex.FieldText)
		assert.Equal(t, []string{}, fields[eadindex.FieldParentIDs])
		assert.Equal(t, true, fields[eadindex.FieldHasChildren])
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record eadindex.Record
	}{
		{"missing document ID", eadindex.Record{ID: "x", Ref: "x"}},
		{"missing ref", eadindex.Record{ID: "x", DocumentID: "d"}},
		{"missing ID", eadindex.Record{DocumentID: "d", Ref: "x"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.record.Validate()

			require.Error(t, err)
			assert.Equal(t, eadindex.EINVALID, eadindex.ErrorCode(err))
		})
	}

	t.Run("valid record", func(t *testing.T) {
		t.Parallel()

		r := eadindex.Record{ID: "d:x", DocumentID: "d", Ref: "x"}

		assert.NoError(t, r.Validate())
	})
}

func TestHasComponentChildren(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  bool
	}{
		{"series", true},
		{"subseries", true},
		{"collection", true},
		{"file", false},
		{"item", false},
		{"subfile", false},
		{"itemgroup", false},
		{"", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, eadindex.HasComponentChildren(tt.level))
		})
	}
}

func TestCompositeID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc123:i1", eadindex.CompositeID("abc123", "i1"))
}

package etree_test

import (
	"testing"

	"github.com/fwojciec/eadindex/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolate(t *testing.T) {
	t.Parallel()

	t.Run("removes nested components and keeps own content", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, nestedEAD)
		s1 := findComponent(t, doc, "s1")

		isolated := etree.Isolate(s1)
		root := isolated.Root()

		require.NotNil(t, root)
		assert.Equal(t, "s1", root.SelectAttrValue("id", ""))
		assert.Nil(t, root.FindElement(".//c"))
		assert.Equal(t, "Series One", etree.NodeTitle(root))
		assert.Equal(t, "1900-1910", etree.NodeDate(root))
		assert.NotNil(t, root.FindElement("scopecontent/p"))
	})

	t.Run("produces a standalone document", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, nestedEAD)
		i1 := findComponent(t, doc, "i1")

		isolated := etree.Isolate(i1)

		s, err := isolated.WriteToString()
		require.NoError(t, err)
		assert.NotContains(t, s, "Series One")
		assert.Contains(t, s, "Item One")
	})

	t.Run("leaves the source tree untouched", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, nestedEAD)
		s1 := findComponent(t, doc, "s1")

		etree.Isolate(s1)

		assert.Len(t, etree.Components(doc), 4)
		assert.NotNil(t, s1.FindElement(".//c"))
	})
}

func TestNodeTitle(t *testing.T) {
	t.Parallel()

	t.Run("keeps inline markup", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<c><did><unittitle>Letters, <title render="italic">Daily News</title></unittitle></did></c>`)

		assert.Equal(t, `Letters, <title render="italic">Daily News</title>`, etree.NodeTitle(doc.Root()))
	})

	t.Run("returns empty for missing title", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<c><did><unitdate>1901</unitdate></did></c>`)

		assert.Empty(t, etree.NodeTitle(doc.Root()))
		assert.Equal(t, "1901", etree.NodeDate(doc.Root()))
	})

	t.Run("returns empty for self-closing title", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<c><did><unittitle/></did></c>`)

		assert.Empty(t, etree.NodeTitle(doc.Root()))
	})
}

func TestLevel(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<ead>
  <c id="a" level="series"/>
  <c id="b" level="otherlevel" otherlevel="accession"/>
  <c id="c" level="otherlevel"/>
  <c id="d"/>
</ead>`)

	assert.Equal(t, "series", etree.Level(findComponent(t, doc, "a")))
	assert.Equal(t, "accession", etree.Level(findComponent(t, doc, "b")))
	assert.Equal(t, "otherlevel", etree.Level(findComponent(t, doc, "c")))
	assert.Equal(t, "", etree.Level(findComponent(t, doc, "d")))
}

func TestHasChildren(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<ead>
  <c id="item" level="item"/>
  <c id="file" level="file"/>
  <c id="series" level="series"/>
  <c id="none"/>
</ead>`)

	assert.False(t, etree.HasChildren(findComponent(t, doc, "item")))
	assert.False(t, etree.HasChildren(findComponent(t, doc, "file")))
	assert.True(t, etree.HasChildren(findComponent(t, doc, "series")))
	assert.True(t, etree.HasChildren(findComponent(t, doc, "none")))
}

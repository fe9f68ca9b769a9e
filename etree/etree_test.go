package etree_test

import (
	"testing"

	beevik "github.com/beevik/etree"
	"github.com/fwojciec/eadindex/etree"
	"github.com/stretchr/testify/require"
)

// nestedEAD has four components: s1 > (subseries without id) > i1, and s2.
const nestedEAD = `<?xml version="1.0" encoding="UTF-8"?>
<ead xmlns="urn:isbn:1-931666-22-9" xmlns:xlink="http://www.w3.org/1999/xlink">
  <eadheader><eadid>abc123</eadid></eadheader>
  <archdesc level="collection">
    <did><unittitle>Papers of <emph render="italic">Jane</emph> Doe</unittitle></did>
    <dsc>
      <c01 id="s1" level="series">
        <did><unittitle>Series One</unittitle><unitdate>1900-1910</unitdate></did>
        <scopecontent><p>Correspondence.</p></scopecontent>
        <c02 level="subseries">
          <did><unitdate>1901</unitdate></did>
          <c03 id="i1" level="item">
            <did><unittitle>Item One</unittitle></did>
          </c03>
        </c02>
      </c01>
      <c01 id="s2" level="series">
        <did/>
      </c01>
    </dsc>
  </archdesc>
</ead>`

func mustParse(t *testing.T, s string) *beevik.Document {
	t.Helper()
	doc, err := etree.ParseString(s)
	require.NoError(t, err)
	return doc
}

// findComponent returns the component with the given id attribute.
func findComponent(t *testing.T, doc *beevik.Document, id string) *beevik.Element {
	t.Helper()
	for _, c := range etree.Components(doc) {
		if c.SelectAttrValue("id", "") == id {
			return c
		}
	}
	t.Fatalf("component %q not found", id)
	return nil
}

func refs(components []*beevik.Element) []string {
	ids := make([]string, len(components))
	for i, c := range components {
		ids[i] = c.SelectAttrValue("id", "")
	}
	return ids
}

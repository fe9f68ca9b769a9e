package etree

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/eadindex"
)

// Ensure Extractor implements eadindex.Extractor at compile time.
var _ eadindex.Extractor = (*Extractor)(nil)

// Extractor extracts component records from EAD documents.
type Extractor struct {
	cleaner eadindex.TextCleaner
}

// NewExtractor creates a new Extractor. Titles and dates are passed
// through cleaner before they reach a record.
func NewExtractor(cleaner eadindex.TextCleaner) *Extractor {
	return &Extractor{cleaner: cleaner}
}

// Extract parses the document and returns one record per component in
// document order.
//
// Components without an id attribute, and components repeating an id
// already seen, get a ref derived from their position in the document, so
// composite IDs stay unique. A document without components yields an empty
// extraction. Returns EINVALID if components exist but the document has no
// <eadid>.
func (e *Extractor) Extract(ctx context.Context, r io.Reader) (*eadindex.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}

	documentID := DocumentID(doc)
	components := Components(doc)
	if len(components) == 0 {
		return &eadindex.Extraction{
			DocumentID: documentID,
			Title:      clean(e.cleaner, CollectionTitle(doc)),
			Records:    []*eadindex.Record{},
		}, nil
	}
	if documentID == "" {
		return nil, eadindex.Errorf(eadindex.EINVALID, "document has no eadid")
	}

	// Ancestor titles are shared by every descendant, so derive each once.
	// The tree is read-only from here on.
	display := DisplayTitle(e.cleaner)
	titles := make(map[*etree.Element]string)
	title := func(el *etree.Element) string {
		if t, ok := titles[el]; ok {
			return t
		}
		t := display(el)
		titles[el] = t
		return t
	}

	records := make([]*eadindex.Record, 0, len(components))
	seen := make(map[string]bool, len(components))

	for i, c := range components {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ref := c.SelectAttrValue("id", "")
		if ref == "" || seen[ref] {
			ref = syntheticRef(documentID, c)
		}
		seen[ref] = true

		record, err := e.extractRecord(documentID, ref, c, i, title)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return &eadindex.Extraction{
		DocumentID: documentID,
		Title:      clean(e.cleaner, CollectionTitle(doc)),
		Records:    records,
	}, nil
}

func (e *Extractor) extractRecord(documentID, ref string, c *etree.Element, position int, title TitleFunc) (*eadindex.Record, error) {
	isolated := Isolate(c)
	content, err := isolated.WriteToString()
	if err != nil {
		return nil, eadindex.Errorf(eadindex.EINTERNAL, "failed to serialize component: %v", err)
	}
	root := isolated.Root()

	return eadindex.AssembleRecord(eadindex.RecordInput{
		DocumentID:  documentID,
		Ref:         ref,
		Lineage:     ResolveLineage(c, title),
		HasChildren: HasChildren(c),
		Title:       title(c),
		Date:        clean(e.cleaner, NodeDate(root)),
		Level:       Level(c),
		Content:     content,
		Text:        TextContent(root),
		Position:    position,
	}), nil
}

// syntheticRef derives a stable ref for a component without a usable id
// from the token indexes on its path to the document root.
func syntheticRef(documentID string, el *etree.Element) string {
	var path []string
	for e := el; e != nil; e = e.Parent() {
		path = append(path, strconv.Itoa(e.Index()))
	}
	h := xxhash.Sum64String(documentID + "/" + strings.Join(path, "/"))
	return "c" + strconv.FormatUint(h, 16)
}

func clean(cleaner eadindex.TextCleaner, s string) string {
	if cleaner == nil {
		return strings.TrimSpace(s)
	}
	return cleaner.Clean(s)
}

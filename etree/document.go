// Package etree provides component extraction from EAD finding aids using
// github.com/beevik/etree.
package etree

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/eadindex"
)

// ComponentTag is the canonical tag every numbered component variant
// (<c01> ... <c12>) is collapsed to.
const ComponentTag = "c"

// Parse reads an EAD document and normalizes it: namespace declarations on
// the root are removed and numbered component tags are collapsed to
// ComponentTag. Returns EPARSE if the markup is malformed.
func Parse(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, eadindex.Errorf(eadindex.EPARSE, "failed to parse XML: %v", err)
	}
	if doc.Root() == nil {
		return nil, eadindex.Errorf(eadindex.EPARSE, "document has no root element")
	}
	Normalize(doc)
	return doc, nil
}

// ParseString is like Parse but reads from a string.
func ParseString(s string) (*etree.Document, error) {
	return Parse(strings.NewReader(s))
}

// Normalize strips namespace declarations from the root element and renames
// component elements to ComponentTag. Normalizing an already normalized
// document is a no-op.
func Normalize(doc *etree.Document) {
	root := doc.Root()
	if root == nil {
		return
	}

	// Prefixes declared on the root lose their declaration, so elements
	// using them are unprefixed as well.
	removed := make(map[string]bool)
	attrs := root.Attr[:0]
	for _, a := range root.Attr {
		switch {
		case a.Space == "" && a.Key == "xmlns":
			continue
		case a.Space == "xmlns":
			removed[a.Key] = true
			continue
		}
		attrs = append(attrs, a)
	}
	root.Attr = attrs

	walk(root, func(el *etree.Element) {
		if removed[el.Space] {
			el.Space = ""
		}
		if IsComponent(el) {
			el.Tag = ComponentTag
		}
	})
}

// IsComponent reports whether el is a component: <c> or <c> followed by a
// two-digit level number.
func IsComponent(el *etree.Element) bool {
	return isComponentTag(el.Tag)
}

func isComponentTag(tag string) bool {
	if tag == ComponentTag {
		return true
	}
	if len(tag) != 3 || tag[0] != 'c' {
		return false
	}
	return isDigit(tag[1]) && isDigit(tag[2])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Components returns every component element in document order.
func Components(doc *etree.Document) []*etree.Element {
	root := doc.Root()
	if root == nil {
		return nil
	}
	var components []*etree.Element
	walk(root, func(el *etree.Element) {
		if IsComponent(el) {
			components = append(components, el)
		}
	})
	return components
}

// DocumentID returns the text of the document's <eadid>, or "" if absent.
func DocumentID(doc *etree.Document) string {
	el := doc.FindElement("//eadid")
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// CollectionTitle returns the raw inner markup of the collection-level
// <unittitle>, or "" if absent.
func CollectionTitle(doc *etree.Document) string {
	el := doc.FindElement("//archdesc/did/unittitle")
	if el == nil {
		return ""
	}
	return InnerXML(el)
}

// walk calls fn for el and each of its descendant elements in document
// order.
func walk(el *etree.Element, fn func(*etree.Element)) {
	fn(el)
	for _, child := range el.ChildElements() {
		walk(child, fn)
	}
}

// InnerXML serializes the child content of el without the element's own
// tags. Inline markup such as <emph> is kept.
func InnerXML(el *etree.Element) string {
	wrap := etree.NewElement("x")
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			wrap.AddChild(t.Copy())
		case *etree.CharData:
			wrap.CreateText(t.Data)
		}
	}

	doc := etree.NewDocument()
	doc.SetRoot(wrap)
	s, err := doc.WriteToString()
	if err != nil || s == "<x/>" {
		return ""
	}
	s = strings.TrimPrefix(s, "<x>")
	return strings.TrimSuffix(s, "</x>")
}

// inlineTags are elements whose text runs on with the surrounding text.
var inlineTags = map[string]bool{
	"emph":   true,
	"title":  true,
	"ref":    true,
	"extref": true,
}

// TextContent returns all character data below el in document order with
// whitespace runs collapsed to single spaces. Text of block elements is
// separated by a space.
func TextContent(el *etree.Element) string {
	var b strings.Builder
	writeText(&b, el)
	return strings.Join(strings.Fields(b.String()), " ")
}

func writeText(b *strings.Builder, el *etree.Element) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			if inlineTags[t.Tag] {
				writeText(b, t)
				continue
			}
			b.WriteByte(' ')
			writeText(b, t)
			b.WriteByte(' ')
		}
	}
}

package etree

import (
	"slices"

	"github.com/beevik/etree"
	"github.com/fwojciec/eadindex"
)

// TitleFunc derives the display title of a component.
type TitleFunc func(el *etree.Element) string

// DisplayTitle returns a TitleFunc that isolates a component and derives
// its title from its own unittitle or unitdate, cleaned by cleaner.
func DisplayTitle(cleaner eadindex.TextCleaner) TitleFunc {
	return func(el *etree.Element) string {
		root := Isolate(el).Root()
		return eadindex.DeriveTitle(NodeTitle(root), NodeDate(root), cleaner)
	}
}

// ResolveLineage walks upward from el through its ancestor components and
// returns their identifiers and titles ordered from the outermost ancestor
// to the immediate parent. The walk stops at the first ancestor that is
// not a component. Ancestors without an id attribute are skipped in IDs
// but still contribute to Titles. ParentID is set only from the immediate
// parent.
func ResolveLineage(el *etree.Element, title TitleFunc) eadindex.Lineage {
	var parentID string
	if parent := el.Parent(); parent != nil && IsComponent(parent) {
		parentID = parent.SelectAttrValue("id", "")
	}

	var ids, titles []string
	for parent := el.Parent(); parent != nil && IsComponent(parent); parent = parent.Parent() {
		if id := parent.SelectAttrValue("id", ""); id != "" {
			ids = append(ids, id)
		}
		titles = append(titles, title(parent))
	}
	slices.Reverse(ids)
	slices.Reverse(titles)
	return eadindex.Lineage{ParentID: parentID, IDs: ids, Titles: titles}
}

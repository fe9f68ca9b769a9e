package etree

import (
	"github.com/beevik/etree"
	"github.com/fwojciec/eadindex"
)

// Isolate returns a standalone document whose root is a copy of el with
// every descendant component removed. Titles, dates and other descriptive
// content of el itself are preserved. el and its tree are not modified.
func Isolate(el *etree.Element) *etree.Document {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	removeComponents(doc.Root())
	return doc
}

func removeComponents(el *etree.Element) {
	for _, child := range el.ChildElements() {
		if IsComponent(child) {
			el.RemoveChild(child)
			continue
		}
		removeComponents(child)
	}
}

// NodeTitle returns the raw title markup of an isolated component: its
// did/unittitle, falling back to any unittitle below it.
func NodeTitle(el *etree.Element) string {
	return firstInnerXML(el, "did/unittitle", ".//unittitle")
}

// NodeDate returns the raw date markup of an isolated component.
func NodeDate(el *etree.Element) string {
	return firstInnerXML(el, "did/unitdate", ".//unitdate")
}

func firstInnerXML(el *etree.Element, paths ...string) string {
	for _, path := range paths {
		if found := el.FindElement(path); found != nil {
			return InnerXML(found)
		}
	}
	return ""
}

// Level returns the level classifier of a component. A level of
// "otherlevel" is replaced by the otherlevel attribute when present.
func Level(el *etree.Element) string {
	level := el.SelectAttrValue("level", "")
	if level == "otherlevel" {
		if other := el.SelectAttrValue("otherlevel", ""); other != "" {
			return other
		}
	}
	return level
}

// HasChildren reports whether a component may contain child components,
// judged by its level classifier.
func HasChildren(el *etree.Element) bool {
	return eadindex.HasComponentChildren(el.SelectAttrValue("level", ""))
}

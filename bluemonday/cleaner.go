// Package bluemonday provides display-text cleanup for finding aid markup
// using github.com/microcosm-cc/bluemonday.
package bluemonday

import (
	"regexp"
	"strings"

	"github.com/fwojciec/eadindex"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Cleaner implements eadindex.TextCleaner at compile time.
var _ eadindex.TextCleaner = (*Cleaner)(nil)

var (
	// formattingTagRe matches opening and closing EAD inline formatting
	// tags, which are rewritten to <span>.
	formattingTagRe = regexp.MustCompile(`<(/?)(?:emph|title)([\s/>])`)
	tagRe           = regexp.MustCompile(`<[^<>]*>`)
	renderAttrRe    = regexp.MustCompile(`(\s)render=`)
	whitespaceRe    = regexp.MustCompile(`\s+`)

	// The sanitizer escapes quotes in text nodes. Titles are display text,
	// so the quotes are restored.
	unescaper = strings.NewReplacer("&#39;", "'", "&#34;", `"`)
)

// Cleaner rewrites EAD inline formatting to <span class="...">, strips all
// other markup and normalizes whitespace.
type Cleaner struct {
	policy *bluemonday.Policy
}

// NewCleaner creates a new Cleaner that keeps only <span> with a class
// attribute.
func NewCleaner() *Cleaner {
	p := bluemonday.NewPolicy()
	p.AllowAttrs("class").OnElements("span")
	p.AllowElements("span")
	return &Cleaner{policy: p}
}

// Clean returns s as single-line display text.
func (c *Cleaner) Clean(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	s = formattingTagRe.ReplaceAllString(s, "<${1}span${2}")
	s = tagRe.ReplaceAllStringFunc(s, func(tag string) string {
		return renderAttrRe.ReplaceAllString(tag, "${1}class=")
	})
	s = c.policy.Sanitize(s)
	s = unescaper.Replace(s)
	s = strings.ReplaceAll(s, "\n", " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

package eadindex

import "strings"

// NoTitle is the display title used when a component has neither a title
// nor a date.
const NoTitle = "[No title available]"

// TextCleaner turns raw inline markup from a finding aid into display text.
type TextCleaner interface {
	Clean(s string) string
}

// DeriveTitle returns the display title of a component: its title if
// non-empty, else its date, else NoTitle. Title and date are passed through
// cleaner before the emptiness check.
func DeriveTitle(title, date string, cleaner TextCleaner) string {
	if t := clean(title, cleaner); t != "" {
		return t
	}
	if d := clean(date, cleaner); d != "" {
		return d
	}
	return NoTitle
}

func clean(s string, cleaner TextCleaner) string {
	if cleaner == nil {
		return strings.TrimSpace(s)
	}
	return cleaner.Clean(s)
}

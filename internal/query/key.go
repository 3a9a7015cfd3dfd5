package query

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Key identifies one search request: trimmed query text and 1-based page.
type Key struct {
	Query string
	Page  int
}

// NewKey trims the query and clamps the page to at least 1.
func NewKey(query string, page int) Key {
	return Key{Query: strings.TrimSpace(query), Page: max(page, 1)}
}

// Enabled reports whether the key is long enough to be fetched.
func (k Key) Enabled(minLength int) bool {
	return utf8.RuneCountInString(k.Query) >= minLength
}

func (k Key) String() string {
	return "movies\x00" + k.Query + "\x00" + strconv.Itoa(k.Page)
}

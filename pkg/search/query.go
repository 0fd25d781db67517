package search

import (
	"strings"
)

// Query is a parsed search input: lowercased whitespace-separated terms.
// An empty Query (blank or whitespace-only input) matches nothing.
type Query struct {
	Terms []string
}

// ParseQuery trims and lowercases the raw input and splits it on
// whitespace. "Hello  World" and " hello world " parse identically.
func ParseQuery(raw string) Query {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Query{}
	}
	return Query{Terms: strings.Fields(strings.ToLower(trimmed))}
}

func (q Query) IsEmpty() bool {
	return len(q.Terms) == 0
}

// Match reports whether every term occurs as a substring of the
// lowercased haystack. Terms are ANDed; an empty query never matches.
func (q Query) Match(haystack string) bool {
	if q.IsEmpty() {
		return false
	}
	lower := strings.ToLower(haystack)
	for _, term := range q.Terms {
		if !strings.Contains(lower, term) {
			return false
		}
	}
	return true
}

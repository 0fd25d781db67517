package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantTerms int
		wantEmpty bool
	}{
		{
			name:      "plain term",
			raw:       "hello",
			wantTerms: 1,
			wantEmpty: false,
		},
		{
			name:      "two terms",
			raw:       "hello world",
			wantTerms: 2,
			wantEmpty: false,
		},
		{
			name:      "extra whitespace collapses",
			raw:       "  hello   world  ",
			wantTerms: 2,
			wantEmpty: false,
		},
		{
			name:      "empty input",
			raw:       "",
			wantTerms: 0,
			wantEmpty: true,
		},
		{
			name:      "whitespace only",
			raw:       "   \t ",
			wantTerms: 0,
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ParseQuery(tt.raw)
			assert.Len(t, q.Terms, tt.wantTerms)
			assert.Equal(t, tt.wantEmpty, q.IsEmpty())
		})
	}
}

func TestQueryMatch(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		haystack string
		want     bool
	}{
		{
			name:     "case insensitive substring",
			raw:      "HELLO",
			haystack: "Say hello to the world",
			want:     true,
		},
		{
			name:     "all terms must match",
			raw:      "hello world",
			haystack: "hello there, wide world",
			want:     true,
		},
		{
			name:     "one missing term fails",
			raw:      "hello mars",
			haystack: "hello there, wide world",
			want:     false,
		},
		{
			name:     "substring inside a word",
			raw:      "ell",
			haystack: "Hello",
			want:     true,
		},
		{
			name:     "empty query matches nothing",
			raw:      "   ",
			haystack: "anything at all",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuery(tt.raw).Match(tt.haystack))
		})
	}
}

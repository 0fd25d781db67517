package render

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("# Heading\n\nSome *emphasis* and a [link](https://example.com).")
	assert.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<em>emphasis</em>")
	assert.Contains(t, html, `href="https://example.com"`)
}

func TestRenderGFMTable(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	assert.NoError(t, err)
	assert.Contains(t, html, "<table>")
}

func TestRenderCodeHighlighting(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("```go\nfunc main() {}\n```")
	assert.NoError(t, err)
	// chroma emits inline-styled spans for the highlighted block
	assert.True(t, strings.Contains(html, "<pre") || strings.Contains(html, "<code"))
}

func TestPreviewCacheRoundTrip(t *testing.T) {
	c := NewPreviewCache()
	noteID := uuid.New()

	_, found := c.Get(noteID)
	assert.False(t, found)

	c.Put(&Preview{NoteID: noteID, HTML: "<p>hi</p>", Width: 800, Height: 600})
	p, found := c.Get(noteID)
	assert.True(t, found)
	assert.Equal(t, "<p>hi</p>", p.HTML)

	c.Invalidate(noteID)
	_, found = c.Get(noteID)
	assert.False(t, found)
}

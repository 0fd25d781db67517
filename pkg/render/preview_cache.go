package render

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Preview is a rendered snapshot of a note, measured for export.
type Preview struct {
	NoteID     uuid.UUID
	HTML       string
	Width      float64
	Height     float64
	RenderedAt time.Time
}

// PreviewCache keeps the latest rendered preview per note. Export reads
// from here; a note that has never been rendered has no exportable
// surface.
type PreviewCache struct {
	cache *cache.Cache
}

func NewPreviewCache() *PreviewCache {
	return &PreviewCache{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (c *PreviewCache) Put(p *Preview) {
	c.cache.Set(p.NoteID.String(), p, cache.DefaultExpiration)
}

func (c *PreviewCache) Get(noteID uuid.UUID) (*Preview, bool) {
	if x, found := c.cache.Get(noteID.String()); found {
		return x.(*Preview), true
	}
	return nil, false
}

func (c *PreviewCache) Invalidate(noteID uuid.UUID) {
	c.cache.Delete(noteID.String())
}

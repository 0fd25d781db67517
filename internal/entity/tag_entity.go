package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag is global: one tag can be attached to many notes.
type Tag struct {
	Id        uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
}

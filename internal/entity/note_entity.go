package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note belongs to exactly one Project. Tags and tasks live in their own
// collections; the note row itself carries neither.
type Note struct {
	Id        uuid.UUID
	Title     string
	Content   string
	ProjectId uuid.UUID
	IsPinned  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Id        uuid.UUID
	Title     string
	Completed bool
	DueDate   *time.Time
	NoteId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}

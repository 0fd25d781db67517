package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title   string     `json:"title" validate:"required"`
	DueDate *time.Time `json:"due_date"`
	NoteId  uuid.UUID  `json:"note_id" validate:"required"`
}

type UpdateTaskRequest struct {
	Id        uuid.UUID
	Title     string     `json:"title" validate:"required"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"due_date"`
}

type TaskResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"due_date"`
	NoteId    uuid.UUID  `json:"note_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content"`
	ProjectId uuid.UUID `json:"project_id" validate:"required"`
}

type CreateNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowNoteResponse struct {
	Id        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	ProjectId uuid.UUID      `json:"project_id"`
	IsPinned  bool           `json:"is_pinned"`
	Tags      []TagResponse  `json:"tags"`
	Tasks     []TaskResponse `json:"tasks"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt *time.Time     `json:"updated_at"`
}

type NoteListItemResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ProjectId uuid.UUID  `json:"project_id"`
	IsPinned  bool       `json:"is_pinned"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type UpdateNoteContentRequest struct {
	Id      uuid.UUID
	Content string `json:"content"`
}

type UpdateNoteTitleRequest struct {
	Id    uuid.UUID
	Title string `json:"title" validate:"required"`
}

type SetNotePinnedRequest struct {
	Id       uuid.UUID
	IsPinned bool `json:"is_pinned"`
}

type MoveNoteRequest struct {
	Id        uuid.UUID
	ProjectId uuid.UUID `json:"project_id" validate:"required"`
}

type SetCurrentNoteRequest struct {
	Id uuid.UUID `json:"id" validate:"required"`
}

type AttachTagRequest struct {
	NoteId uuid.UUID
	TagId  uuid.UUID `json:"tag_id" validate:"required"`
}

type ExportNoteResponse struct {
	Path string `json:"path"`
}

// PublishRenderMessage is the queue payload asking the render consumer
// to rebuild a note's preview.
type PublishRenderMessage struct {
	NoteId uuid.UUID `json:"note_id"`
}

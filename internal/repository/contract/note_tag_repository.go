package contract

import (
	"context"

	"notedesk/internal/entity"

	"github.com/google/uuid"
)

// NoteTagRepository manages the many-to-many join between notes and tags.
// AddTagToNote is idempotent: attaching an already-attached tag is a no-op.
type NoteTagRepository interface {
	AddTagToNote(ctx context.Context, noteId, tagId uuid.UUID) error
	RemoveTagFromNote(ctx context.Context, noteId, tagId uuid.UUID) error
	GetNoteTags(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error)
	GetTagIds(ctx context.Context, noteId uuid.UUID) ([]uuid.UUID, error)
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
	DeleteByTagId(ctx context.Context, tagId uuid.UUID) error
}

package localstore

import (
	"context"

	"notedesk/internal/entity"
	"notedesk/internal/repository/contract"

	"github.com/google/uuid"
)

type NoteTagRepository struct {
	store *Store
}

func NewNoteTagRepository(store *Store) contract.NoteTagRepository {
	return &NoteTagRepository{store: store}
}

func (r *NoteTagRepository) AddTagToNote(ctx context.Context, noteId, tagId uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.data.NoteTags {
		if rec.NoteId == noteId && rec.TagId == tagId {
			return nil
		}
	}
	s.data.NoteTags = append(s.data.NoteTags, noteTagRecord{NoteId: noteId, TagId: tagId})
	return s.flush(keyNoteTags, s.data.NoteTags)
}

func (r *NoteTagRepository) RemoveTagFromNote(ctx context.Context, noteId, tagId uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.NoteTags[:0]
	for _, rec := range s.data.NoteTags {
		if rec.NoteId != noteId || rec.TagId != tagId {
			kept = append(kept, rec)
		}
	}
	s.data.NoteTags = kept
	return s.flush(keyNoteTags, s.data.NoteTags)
}

// GetNoteTags resolves the tags attached to a note, in attach order.
func (r *NoteTagRepository) GetNoteTags(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var tags []*entity.Tag
	for _, join := range s.data.NoteTags {
		if join.NoteId != noteId {
			continue
		}
		for _, rec := range s.data.Tags {
			if rec.Id == join.TagId {
				tags = append(tags, tagToEntity(rec))
				break
			}
		}
	}
	return tags, nil
}

func (r *NoteTagRepository) GetTagIds(ctx context.Context, noteId uuid.UUID) ([]uuid.UUID, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uuid.UUID
	for _, join := range s.data.NoteTags {
		if join.NoteId == noteId {
			ids = append(ids, join.TagId)
		}
	}
	return ids, nil
}

func (r *NoteTagRepository) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.NoteTags[:0]
	for _, rec := range s.data.NoteTags {
		if rec.NoteId != noteId {
			kept = append(kept, rec)
		}
	}
	s.data.NoteTags = kept
	return s.flush(keyNoteTags, s.data.NoteTags)
}

func (r *NoteTagRepository) DeleteByTagId(ctx context.Context, tagId uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.NoteTags[:0]
	for _, rec := range s.data.NoteTags {
		if rec.TagId != tagId {
			kept = append(kept, rec)
		}
	}
	s.data.NoteTags = kept
	return s.flush(keyNoteTags, s.data.NoteTags)
}

package localstore

import (
	"context"

	"notedesk/internal/entity"
	"notedesk/internal/repository/contract"
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository struct {
	store *Store
}

func NewNoteRepository(store *Store) contract.NoteRepository {
	return &NoteRepository{store: store}
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Notes = append(s.data.Notes, noteToRecord(note))
	return s.flush(keyNotes, s.data.Notes)
}

func (r *NoteRepository) Update(ctx context.Context, note *entity.Note) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.data.Notes {
		if rec.Id == note.Id {
			s.data.Notes[i] = noteToRecord(note)
			return s.flush(keyNotes, s.data.Notes)
		}
	}
	s.data.Notes = append(s.data.Notes, noteToRecord(note))
	return s.flush(keyNotes, s.data.Notes)
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Notes[:0]
	for _, rec := range s.data.Notes {
		if rec.Id != id {
			kept = append(kept, rec)
		}
	}
	s.data.Notes = kept
	return s.flush(keyNotes, s.data.Notes)
}

func (r *NoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.data.Notes {
		if matches(filterable{id: rec.Id, projectId: rec.ProjectId, title: rec.Title}, specs) {
			return noteToEntity(rec), nil
		}
	}
	return nil, nil
}

func (r *NoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var notes []*entity.Note
	for _, rec := range s.data.Notes {
		if matches(filterable{id: rec.Id, projectId: rec.ProjectId, title: rec.Title}, specs) {
			notes = append(notes, noteToEntity(rec))
		}
	}
	return notes, nil
}

func (r *NoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	notes, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(notes)), nil
}

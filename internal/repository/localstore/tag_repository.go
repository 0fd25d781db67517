package localstore

import (
	"context"

	"notedesk/internal/entity"
	"notedesk/internal/repository/contract"
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
)

type TagRepository struct {
	store *Store
}

func NewTagRepository(store *Store) contract.TagRepository {
	return &TagRepository{store: store}
}

func (r *TagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Tags = append(s.data.Tags, tagToRecord(tag))
	return s.flush(keyTags, s.data.Tags)
}

func (r *TagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.data.Tags {
		if rec.Id == tag.Id {
			s.data.Tags[i] = tagToRecord(tag)
			return s.flush(keyTags, s.data.Tags)
		}
	}
	s.data.Tags = append(s.data.Tags, tagToRecord(tag))
	return s.flush(keyTags, s.data.Tags)
}

func (r *TagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Tags[:0]
	for _, rec := range s.data.Tags {
		if rec.Id != id {
			kept = append(kept, rec)
		}
	}
	s.data.Tags = kept
	return s.flush(keyTags, s.data.Tags)
}

func (r *TagRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.data.Tags {
		if matches(filterable{id: rec.Id, title: rec.Name}, specs) {
			return tagToEntity(rec), nil
		}
	}
	return nil, nil
}

func (r *TagRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var tags []*entity.Tag
	for _, rec := range s.data.Tags {
		if matches(filterable{id: rec.Id, title: rec.Name}, specs) {
			tags = append(tags, tagToEntity(rec))
		}
	}
	return tags, nil
}

func (r *TagRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	tags, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(tags)), nil
}

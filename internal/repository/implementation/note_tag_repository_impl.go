package implementation

import (
	"context"

	"notedesk/internal/entity"
	"notedesk/internal/mapper"
	"notedesk/internal/model"
	"notedesk/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteTagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TagMapper
}

func NewNoteTagRepository(db *gorm.DB) contract.NoteTagRepository {
	return &NoteTagRepositoryImpl{
		db:     db,
		mapper: mapper.NewTagMapper(),
	}
}

func (r *NoteTagRepositoryImpl) AddTagToNote(ctx context.Context, noteId, tagId uuid.UUID) error {
	// ON CONFLICT DO NOTHING keeps the attach idempotent.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.NoteTag{NoteId: noteId, TagId: tagId}).Error
}

func (r *NoteTagRepositoryImpl) RemoveTagFromNote(ctx context.Context, noteId, tagId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("note_id = ? AND tag_id = ?", noteId, tagId).
		Delete(&model.NoteTag{}).Error
}

func (r *NoteTagRepositoryImpl) GetNoteTags(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error) {
	var models []*model.Tag
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN note_tags nt ON nt.tag_id = tags.id").
		Where("nt.note_id = ?", noteId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteTagRepositoryImpl) GetTagIds(ctx context.Context, noteId uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.NoteTag{}).
		Where("note_id = ?", noteId).
		Pluck("tag_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *NoteTagRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteTag{}).Error
}

func (r *NoteTagRepositoryImpl) DeleteByTagId(ctx context.Context, tagId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("tag_id = ?", tagId).Delete(&model.NoteTag{}).Error
}

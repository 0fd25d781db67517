package implementation

import (
	"context"
	"errors"

	"notedesk/internal/entity"
	"notedesk/internal/mapper"
	"notedesk/internal/model"
	"notedesk/internal/repository/contract"
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TabRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TabMapper
}

func NewTabRepository(db *gorm.DB) contract.TabRepository {
	return &TabRepositoryImpl{
		db:     db,
		mapper: mapper.NewTabMapper(),
	}
}

func (r *TabRepositoryImpl) Create(ctx context.Context, tab *entity.Tab) error {
	m := r.mapper.ToModel(tab)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tab = *r.mapper.ToEntity(m)
	return nil
}

func (r *TabRepositoryImpl) Update(ctx context.Context, tab *entity.Tab) error {
	m := r.mapper.ToModel(tab)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tab = *r.mapper.ToEntity(m)
	return nil
}

func (r *TabRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Tab{}, id).Error
}

func (r *TabRepositoryImpl) DeleteByWorkspaceId(ctx context.Context, workspaceId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("workspace_id = ?", workspaceId).Delete(&model.Tab{}).Error
}

func (r *TabRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tab, error) {
	var m model.Tab
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TabRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tab, error) {
	var models []*model.Tab
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

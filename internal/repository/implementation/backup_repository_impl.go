package implementation

import (
	"context"

	"notedesk/internal/entity"
	"notedesk/internal/mapper"
	"notedesk/internal/model"
	"notedesk/internal/repository/contract"
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BackupRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BackupMapper
}

func NewBackupRepository(db *gorm.DB) contract.BackupRepository {
	return &BackupRepositoryImpl{
		db:     db,
		mapper: mapper.NewBackupMapper(),
	}
}

func (r *BackupRepositoryImpl) Create(ctx context.Context, backup *entity.Backup) error {
	m := r.mapper.ToModel(backup)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*backup = *r.mapper.ToEntity(m)
	return nil
}

func (r *BackupRepositoryImpl) DeleteByWorkspaceId(ctx context.Context, workspaceId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("workspace_id = ?", workspaceId).Delete(&model.Backup{}).Error
}

func (r *BackupRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Backup, error) {
	var models []*model.Backup
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

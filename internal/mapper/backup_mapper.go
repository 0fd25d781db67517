package mapper

import (
	"notedesk/internal/entity"
	"notedesk/internal/model"

	"gorm.io/datatypes"
)

type BackupMapper struct{}

func NewBackupMapper() *BackupMapper {
	return &BackupMapper{}
}

func (m *BackupMapper) ToEntity(b *model.Backup) *entity.Backup {
	if b == nil {
		return nil
	}

	return &entity.Backup{
		Id:          b.Id,
		WorkspaceId: b.WorkspaceId,
		Data:        string(b.Data),
		CreatedAt:   b.CreatedAt,
	}
}

func (m *BackupMapper) ToModel(b *entity.Backup) *model.Backup {
	if b == nil {
		return nil
	}

	return &model.Backup{
		Id:          b.Id,
		WorkspaceId: b.WorkspaceId,
		Data:        datatypes.JSON(b.Data),
		CreatedAt:   b.CreatedAt,
	}
}

func (m *BackupMapper) ToEntities(backups []*model.Backup) []*entity.Backup {
	entities := make([]*entity.Backup, len(backups))
	for i, b := range backups {
		entities[i] = m.ToEntity(b)
	}
	return entities
}

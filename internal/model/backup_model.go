package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Backup struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Data        datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (Backup) TableName() string {
	return "backups"
}

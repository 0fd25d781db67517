package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Workspace stores the ordered profile list as a JSON column. The profile
// bundle is small and always read/written as a whole, same as the
// local-storage backend does.
type Workspace struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string         `gorm:"type:varchar(255);not null"`
	Path             string         `gorm:"type:text"`
	CurrentProfileId uuid.UUID      `gorm:"type:uuid;not null"`
	Profiles         datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

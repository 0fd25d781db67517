package model

import (
	"time"

	"github.com/google/uuid"
)

type Tab struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Content     string    `gorm:"type:text"`
	Type        string    `gorm:"type:varchar(32);not null"`
	Position    int       `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Tab) TableName() string {
	return "tabs"
}

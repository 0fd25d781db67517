package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Completed bool       `gorm:"not null;default:false"`
	DueDate   *time.Time `gorm:"type:timestamptz"`
	NoteId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (Task) TableName() string {
	return "tasks"
}

package model

import "github.com/google/uuid"

// NoteTag is the join row between notes and tags.
type NoteTag struct {
	NoteId uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagId  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (NoteTag) TableName() string {
	return "note_tags"
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTabRequest struct {
	WorkspaceId uuid.UUID
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	Position    *int   `json:"position"`
	IsActive    bool   `json:"is_active"`
}

type SetTabActiveRequest struct {
	Id       uuid.UUID
	IsActive bool `json:"is_active"`
}

type TabResponse struct {
	Id          uuid.UUID `json:"id"`
	WorkspaceId uuid.UUID `json:"workspace_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Type        string    `json:"type"`
	Position    int       `json:"position"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tab is an open editor pane inside a workspace, ordered by Position.
type Tab struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	Title       string
	Content     string
	Type        string
	Position    int
	IsActive    bool
	CreatedAt   time.Time
}

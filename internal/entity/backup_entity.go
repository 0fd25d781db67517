package entity

import (
	"time"

	"github.com/google/uuid"
)

// Backup is a point-in-time JSON snapshot of one workspace's state.
type Backup struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	Data        string
	CreatedAt   time.Time
}

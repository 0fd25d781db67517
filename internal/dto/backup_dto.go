package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CreateBackupRequest optionally carries the snapshot payload. When Data
// is absent the server snapshots the workspace itself.
type CreateBackupRequest struct {
	WorkspaceId uuid.UUID
	Data        json.RawMessage `json:"data"`
}

type BackupResponse struct {
	Id          uuid.UUID `json:"id"`
	WorkspaceId uuid.UUID `json:"workspace_id"`
	CreatedAt   time.Time `json:"created_at"`
}

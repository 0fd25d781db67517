package contract

import (
	"context"

	"notedesk/internal/entity"
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
)

type BackupRepository interface {
	Create(ctx context.Context, backup *entity.Backup) error
	DeleteByWorkspaceId(ctx context.Context, workspaceId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Backup, error)
}

package contract

import (
	"context"

	"notedesk/internal/entity"
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
)

type TabRepository interface {
	Create(ctx context.Context, tab *entity.Tab) error
	Update(ctx context.Context, tab *entity.Tab) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByWorkspaceId(ctx context.Context, workspaceId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tab, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tab, error)
}

package localstore

import (
	"context"

	"notedesk/internal/entity"
	"notedesk/internal/repository/contract"
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
)

type WorkspaceRepository struct {
	store *Store
}

func NewWorkspaceRepository(store *Store) contract.WorkspaceRepository {
	return &WorkspaceRepository{store: store}
}

func (r *WorkspaceRepository) Create(ctx context.Context, workspace *entity.Workspace) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Workspaces = append(s.data.Workspaces, workspaceToRecord(workspace))
	return s.flush(keyWorkspaces, s.data.Workspaces)
}

func (r *WorkspaceRepository) Update(ctx context.Context, workspace *entity.Workspace) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.data.Workspaces {
		if rec.Id == workspace.Id {
			s.data.Workspaces[i] = workspaceToRecord(workspace)
			return s.flush(keyWorkspaces, s.data.Workspaces)
		}
	}
	s.data.Workspaces = append(s.data.Workspaces, workspaceToRecord(workspace))
	return s.flush(keyWorkspaces, s.data.Workspaces)
}

func (r *WorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Workspaces[:0]
	for _, rec := range s.data.Workspaces {
		if rec.Id != id {
			kept = append(kept, rec)
		}
	}
	s.data.Workspaces = kept
	return s.flush(keyWorkspaces, s.data.Workspaces)
}

func (r *WorkspaceRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workspace, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.data.Workspaces {
		if matches(filterable{id: rec.Id, title: rec.Name}, specs) {
			return workspaceToEntity(rec), nil
		}
	}
	return nil, nil
}

func (r *WorkspaceRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Workspace, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var workspaces []*entity.Workspace
	for _, rec := range s.data.Workspaces {
		if matches(filterable{id: rec.Id, title: rec.Name}, specs) {
			workspaces = append(workspaces, workspaceToEntity(rec))
		}
	}
	return workspaces, nil
}

package localstore

import (
	"context"

	"notedesk/internal/entity"
	"notedesk/internal/repository/contract"
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
)

type BackupRepository struct {
	store *Store
}

func NewBackupRepository(store *Store) contract.BackupRepository {
	return &BackupRepository{store: store}
}

func (r *BackupRepository) Create(ctx context.Context, backup *entity.Backup) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Backups = append(s.data.Backups, backupToRecord(backup))
	return s.flush(keyBackups, s.data.Backups)
}

func (r *BackupRepository) DeleteByWorkspaceId(ctx context.Context, workspaceId uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Backups[:0]
	for _, rec := range s.data.Backups {
		if rec.WorkspaceId != workspaceId {
			kept = append(kept, rec)
		}
	}
	s.data.Backups = kept
	return s.flush(keyBackups, s.data.Backups)
}

func (r *BackupRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Backup, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var backups []*entity.Backup
	for _, rec := range s.data.Backups {
		if matches(filterable{id: rec.Id, workspaceId: rec.WorkspaceId}, specs) {
			backups = append(backups, backupToEntity(rec))
		}
	}
	return backups, nil
}

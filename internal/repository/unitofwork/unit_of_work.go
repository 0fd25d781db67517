package unitofwork

import (
	"context"

	"notedesk/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProjectRepository() contract.ProjectRepository
	NoteRepository() contract.NoteRepository
	TagRepository() contract.TagRepository
	TaskRepository() contract.TaskRepository
	NoteTagRepository() contract.NoteTagRepository
	WorkspaceRepository() contract.WorkspaceRepository
	TabRepository() contract.TabRepository
	BackupRepository() contract.BackupRepository
}

package unitofwork

import (
	"context"

	"notedesk/internal/repository/contract"
	"notedesk/internal/repository/localstore"
)

// LocalUnitOfWork runs repository operations against the JSON file store.
// Begin snapshots the in-memory collections; Rollback restores the snapshot
// and rewrites the files so a failed cascade leaves no partial state behind.
type LocalUnitOfWork struct {
	store *localstore.Store
}

func NewLocalUnitOfWork(store *localstore.Store) UnitOfWork {
	return &LocalUnitOfWork{store: store}
}

func (u *LocalUnitOfWork) Begin(ctx context.Context) error {
	return u.store.BeginTx()
}

func (u *LocalUnitOfWork) Commit() error {
	return u.store.CommitTx()
}

func (u *LocalUnitOfWork) Rollback() error {
	return u.store.RollbackTx()
}

func (u *LocalUnitOfWork) ProjectRepository() contract.ProjectRepository {
	return localstore.NewProjectRepository(u.store)
}

func (u *LocalUnitOfWork) NoteRepository() contract.NoteRepository {
	return localstore.NewNoteRepository(u.store)
}

func (u *LocalUnitOfWork) TagRepository() contract.TagRepository {
	return localstore.NewTagRepository(u.store)
}

func (u *LocalUnitOfWork) TaskRepository() contract.TaskRepository {
	return localstore.NewTaskRepository(u.store)
}

func (u *LocalUnitOfWork) NoteTagRepository() contract.NoteTagRepository {
	return localstore.NewNoteTagRepository(u.store)
}

func (u *LocalUnitOfWork) WorkspaceRepository() contract.WorkspaceRepository {
	return localstore.NewWorkspaceRepository(u.store)
}

func (u *LocalUnitOfWork) TabRepository() contract.TabRepository {
	return localstore.NewTabRepository(u.store)
}

func (u *LocalUnitOfWork) BackupRepository() contract.BackupRepository {
	return localstore.NewBackupRepository(u.store)
}

type LocalRepositoryFactory struct {
	store *localstore.Store
}

func NewLocalRepositoryFactory(store *localstore.Store) RepositoryFactory {
	return &LocalRepositoryFactory{store: store}
}

func (f *LocalRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return NewLocalUnitOfWork(f.store)
}
